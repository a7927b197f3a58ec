package directory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rai/employee-directory/modules/directory/application/commands"
	"github.com/rai/employee-directory/modules/directory/application/form"
	"github.com/rai/employee-directory/modules/directory/application/queries"
	"github.com/rai/employee-directory/modules/directory/domain"
)

// Loader is the port for the startup fetch. Implemented by remote.Loader.
type Loader interface {
	Load(ctx context.Context) ([]domain.Record, error)
}

// LoadPhase is the loading state of the collection.
type LoadPhase string

const (
	PhaseIdle    LoadPhase = "idle"
	PhaseLoading LoadPhase = "loading"
	// PhaseReady and PhaseFailed are terminal for the session; there is no
	// automatic refresh, only a full restart.
	PhaseReady  LoadPhase = "ready"
	PhaseFailed LoadPhase = "failed"
)

// Status is the collection-wide loading/error state.
type Status struct {
	Phase LoadPhase `json:"phase"`
	// ErrorMessage is set only in PhaseFailed. It is the single fixed
	// fetch-failure message, overwritten never accumulated.
	ErrorMessage string `json:"error_message,omitempty"`
}

// Session owns one directory lifetime: populated once by the loader, then
// mutated only through the intents below until the session is discarded.
// A mutex serializes the intents, so a Session may be shared between
// goroutines (an HTTP adapter runs each request in its own); the modeled
// flow is still one interleaved stream of user intents, and the embedded
// form session is only touched under this lock.
type Session struct {
	store  domain.CollectionStore
	loader Loader
	logger *slog.Logger

	mu       sync.Mutex
	pageSize int
	page     int

	status Status

	form       *form.Session
	deleteUser *commands.DeleteUserHandler
	listPage   *queries.ListPageHandler
}

// Load performs the startup fetch and seeds the collection, driving the
// idle → loading → ready|failed machine. A second call is a no-op: loading
// is entered once per session and ready/failed are terminal.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Phase != PhaseIdle {
		return nil
	}
	s.status = Status{Phase: PhaseLoading}

	records, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error("initial load failed", slog.Any("error", err))
		s.status = Status{
			Phase:        PhaseFailed,
			ErrorMessage: domain.ErrFetchFailed.Error(),
		}
		return err
	}

	s.store.ReplaceAll(records)
	s.status = Status{Phase: PhaseReady}
	s.logger.Info("collection loaded", slog.Int("count", len(records)))
	return nil
}

// Status returns the collection loading/error state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Window returns the records visible on the current page, derived from the
// current snapshot at the moment of the call.
func (s *Session) Window() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return queries.Window(s.store.Snapshot(), s.page, s.pageSize)
}

// Page returns the 1-based current page. The page persists across
// mutations; there is no reset.
func (s *Session) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// PageSize returns the configured window size.
func (s *Session) PageSize() int {
	return s.pageSize
}

// CanGoPrevious reports whether a previous page exists.
func (s *Session) CanGoPrevious() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canGoPreviousLocked()
}

// CanGoNext reports whether records remain beyond the current page.
func (s *Session) CanGoNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canGoNextLocked()
}

// GoToNextPage advances the page when the guard allows it and reports
// whether the page moved.
func (s *Session) GoToNextPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canGoNextLocked() {
		return false
	}
	s.page++
	return true
}

// GoToPreviousPage moves one page back when the guard allows it and reports
// whether the page moved.
func (s *Session) GoToPreviousPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canGoPreviousLocked() {
		return false
	}
	s.page--
	return true
}

// PageInfo returns the current page number and both guard flags as one
// consistent reading.
func (s *Session) PageInfo() (page int, canGoPrevious, canGoNext bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page, s.canGoPreviousLocked(), s.canGoNextLocked()
}

func (s *Session) canGoPreviousLocked() bool {
	return queries.CanGoPrevious(s.page)
}

func (s *Session) canGoNextLocked() bool {
	return queries.CanGoNext(s.store.Snapshot(), s.page, s.pageSize)
}

// ListPage returns the full read model for the given page, or for the
// session's current page when page is zero.
func (s *Session) ListPage(ctx context.Context, page int) (*queries.PageDTO, error) {
	s.mu.Lock()
	if page < 1 {
		page = s.page
	}
	s.mu.Unlock()
	return s.listPage.Handle(ctx, queries.ListPageQuery{Page: page, PageSize: s.pageSize})
}

// OpenAddForm opens the modal in add mode with a freshly allocated id.
func (s *Session) OpenAddForm() form.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.OpenAdd()
}

// OpenEditForm opens the modal in edit mode for the record with the given
// id, seeded with a copy of its current values.
func (s *Session) OpenEditForm(id int) (form.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.store.Snapshot() {
		if record.ID == id {
			return s.form.OpenEdit(record), nil
		}
	}
	return form.State{}, domain.ErrRecordNotFound
}

// SetFormField updates one field of the open form, dismissing any displayed
// validation error.
func (s *Session) SetFormField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.SetField(name, value)
}

// SubmitForm replaces the open form's values and submits them. On
// validation failure the form stays open with its error message set.
func (s *Session) SubmitForm(ctx context.Context, values domain.FormValues) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.form.SetValues(values); err != nil {
		return err
	}
	return s.form.Submit(ctx)
}

// CancelForm closes the modal, discarding all edits.
func (s *Session) CancelForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Cancel()
}

// FormState returns the observable state of the form session.
func (s *Session) FormState() form.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.State()
}

// DeleteRecord removes the record with the given id. A missing id is a
// silent no-op.
func (s *Session) DeleteRecord(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteUser.Handle(ctx, commands.DeleteUserCommand{ID: id})
}
