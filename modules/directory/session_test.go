package directory_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/employee-directory/internal/platform/eventbus"
	"github.com/rai/employee-directory/modules/directory"
	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/directory/infrastructure/persistence"
	"github.com/rai/employee-directory/modules/directory/infrastructure/remote"
	"github.com/rai/employee-directory/modules/notifications"
)

// stubLoader feeds a session without a network round trip.
type stubLoader struct {
	records []domain.Record
	err     error
}

func (l *stubLoader) Load(ctx context.Context) ([]domain.Record, error) {
	return l.records, l.err
}

func newTestSession(t *testing.T, loader directory.Loader, pageSize int) (*directory.Session, *notifications.MemoryToaster) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelError}))

	bus := eventbus.New(logger)
	toaster := notifications.NewMemoryToaster(0)
	notifications.New(notifications.Config{
		EventSubscriber: bus,
		Toaster:         toaster,
		Logger:          logger,
	})

	session := directory.NewSession(directory.Config{
		Store:          persistence.NewInMemoryStore(),
		Loader:         loader,
		EventPublisher: bus,
		PageSize:       pageSize,
		Logger:         logger,
	})
	return session, toaster
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestSession_EndToEnd(t *testing.T) {
	// Remote source with one employee, fetched through the real loader so
	// normalization is part of the scenario.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 7, "name": "Ann Lee", "email": "ann@x.com"}]`))
	}))
	defer server.Close()

	loader := remote.NewLoader(remote.Config{
		Endpoint: server.URL,
		Timeout:  2 * time.Second,
	}, nil)
	session, toaster := newTestSession(t, loader, 3)

	assert.Equal(t, directory.PhaseIdle, session.Status().Phase)
	require.NoError(t, session.Load(context.Background()))
	assert.Equal(t, directory.PhaseReady, session.Status().Phase)

	window := session.Window()
	require.Len(t, window, 1)
	assert.Equal(t, domain.Record{
		ID: 7, FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Department: "General",
	}, window[0])

	// Add form allocates one past the remote id.
	state := session.OpenAddForm()
	assert.Equal(t, 8, state.RecordID)
	assert.Equal(t, domain.DepartmentGeneral, state.Values.Department)

	require.NoError(t, session.SubmitForm(context.Background(), domain.FormValues{
		FirstName:  "Bo",
		LastName:   "Ray",
		Email:      "bo@x.com",
		Department: domain.DepartmentData,
	}))

	window = session.Window()
	require.Len(t, window, 2)
	assert.Equal(t, 8, window[1].ID)
	assert.Equal(t, "Bo", window[1].FirstName)

	// Edit, then delete, collecting the toasts along the way.
	_, err := session.OpenEditForm(8)
	require.NoError(t, err)
	require.NoError(t, session.SubmitForm(context.Background(), domain.FormValues{
		FirstName:  "Bo",
		LastName:   "Ray",
		Email:      "bo@x.com",
		Department: domain.DepartmentCyber,
	}))
	require.NoError(t, session.DeleteRecord(context.Background(), 7))

	assert.Equal(t, []string{
		"User added successfully!",
		"User updated successfully!",
		"User deleted successfully!",
	}, toaster.Drain())
}

func TestSession_LoadFailure(t *testing.T) {
	loadErr := errors.New("connection refused")
	session, _ := newTestSession(t, &stubLoader{err: loadErr}, 3)

	err := session.Load(context.Background())

	require.Error(t, err)
	status := session.Status()
	assert.Equal(t, directory.PhaseFailed, status.Phase)
	assert.Equal(t, "Failed to fetch users", status.ErrorMessage)
	assert.Empty(t, session.Window(), "a failed load leaves the collection empty")
}

func TestSession_LoadIsOneShot(t *testing.T) {
	loader := &stubLoader{records: []domain.Record{{ID: 1}}}
	session, _ := newTestSession(t, loader, 3)

	require.NoError(t, session.Load(context.Background()))

	loader.records = []domain.Record{{ID: 1}, {ID: 2}}
	require.NoError(t, session.Load(context.Background()))

	assert.Len(t, session.Window(), 1, "ready is terminal; no refetch")
}

func TestSession_PaginationGuards(t *testing.T) {
	records := make([]domain.Record, 7)
	for i := range records {
		records[i] = domain.Record{ID: i + 1}
	}
	session, _ := newTestSession(t, &stubLoader{records: records}, 3)
	require.NoError(t, session.Load(context.Background()))

	assert.Equal(t, 1, session.Page())
	assert.False(t, session.CanGoPrevious())
	assert.True(t, session.CanGoNext())
	assert.False(t, session.GoToPreviousPage(), "guard blocks moving before page 1")

	assert.True(t, session.GoToNextPage())
	assert.True(t, session.GoToNextPage())
	assert.Equal(t, 3, session.Page())
	assert.Len(t, session.Window(), 1, "last page holds the remainder")
	assert.False(t, session.GoToNextPage(), "guard blocks moving past the end")

	// The page persists across mutations, even when the window empties.
	require.NoError(t, session.DeleteRecord(context.Background(), 7))
	assert.Equal(t, 3, session.Page())
	assert.Empty(t, session.Window())
	assert.True(t, session.GoToPreviousPage())
	assert.Len(t, session.Window(), 3)
}

func TestSession_OpenEditFormMissingID(t *testing.T) {
	session, _ := newTestSession(t, &stubLoader{}, 3)
	require.NoError(t, session.Load(context.Background()))

	_, err := session.OpenEditForm(999)

	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestSession_DeleteMissingIsNoOp(t *testing.T) {
	session, _ := newTestSession(t, &stubLoader{records: []domain.Record{{ID: 1}, {ID: 2}, {ID: 3}}}, 3)
	require.NoError(t, session.Load(context.Background()))

	require.NoError(t, session.DeleteRecord(context.Background(), 999))

	assert.Len(t, session.Window(), 3, "collection unchanged")
}
