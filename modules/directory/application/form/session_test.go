package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/employee-directory/modules/directory/application/commands"
	"github.com/rai/employee-directory/modules/directory/application/form"
	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/directory/infrastructure/persistence"
)

func newSession(t *testing.T, seed []domain.Record) (*form.Session, *persistence.InMemoryStore) {
	t.Helper()
	store := persistence.NewInMemoryStore()
	if seed != nil {
		store.ReplaceAll(seed)
	}
	add := commands.NewAddUserHandler(store, nil)
	update := commands.NewUpdateUserHandler(store, nil)
	return form.NewSession(store, add, update), store
}

func TestSession_OpenAdd(t *testing.T) {
	session, _ := newSession(t, []domain.Record{{ID: 1}, {ID: 3}})

	state := session.OpenAdd()

	assert.True(t, state.Open)
	assert.Equal(t, form.ModeAdd, state.Mode)
	assert.Equal(t, 4, state.RecordID, "id is one past the current maximum")
	assert.Equal(t, domain.DepartmentGeneral, state.Values.Department)
	assert.Empty(t, state.ErrorMessage)
}

func TestSession_OpenAdd_RecomputesIDAfterDelete(t *testing.T) {
	session, store := newSession(t, []domain.Record{{ID: 1}, {ID: 2}, {ID: 3}})

	session.OpenAdd()
	session.Cancel()

	store.Remove(2)
	state := session.OpenAdd()

	assert.Equal(t, 4, state.RecordID, "freed ids are never reused")
}

func TestSession_SubmitAdd(t *testing.T) {
	session, store := newSession(t, []domain.Record{{ID: 7}})

	session.OpenAdd()
	err := session.SetValues(domain.FormValues{
		FirstName:  "Bo",
		LastName:   "Ray",
		Email:      "bo@x.com",
		Department: domain.DepartmentData,
	})
	require.NoError(t, err)
	require.NoError(t, session.Submit(context.Background()))

	assert.False(t, session.State().Open, "commit closes the session")

	records := store.Snapshot()
	require.Len(t, records, 2)
	assert.Equal(t, 8, records[1].ID)
	assert.Equal(t, "Bo", records[1].FirstName)
}

func TestSession_SubmitInvalidStaysOpen(t *testing.T) {
	session, store := newSession(t, nil)

	session.OpenAdd()
	err := session.Submit(context.Background())

	require.Error(t, err)
	state := session.State()
	assert.True(t, state.Open, "validation failure keeps the form open")
	assert.Equal(t, "First Name is required.", state.ErrorMessage)
	assert.Empty(t, store.Snapshot(), "nothing committed")
}

func TestSession_SetFieldClearsError(t *testing.T) {
	session, _ := newSession(t, nil)

	session.OpenAdd()
	_ = session.Submit(context.Background())
	require.NotEmpty(t, session.State().ErrorMessage)

	require.NoError(t, session.SetField(form.FieldFirstName, "Bo"))

	state := session.State()
	assert.Empty(t, state.ErrorMessage, "editing a field dismisses the error")
	assert.Equal(t, "Bo", state.Values.FirstName)
}

func TestSession_EditFlow(t *testing.T) {
	seed := []domain.Record{{
		ID: 1, FirstName: "A", LastName: "One", Email: "a@x.com", Department: domain.DepartmentGeneral,
	}}
	session, store := newSession(t, seed)

	state := session.OpenEdit(seed[0])
	assert.Equal(t, form.ModeEdit, state.Mode)
	assert.Equal(t, 1, state.RecordID)
	assert.Equal(t, "A", state.Values.FirstName, "edit opens with a copy of the record")

	require.NoError(t, session.SetField(form.FieldFirstName, "B"))
	require.NoError(t, session.Submit(context.Background()))

	records := store.Snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].FirstName)
	assert.Equal(t, "One", records[0].LastName)
	assert.False(t, session.State().Open)
}

func TestSession_CancelDiscardsEdits(t *testing.T) {
	seed := []domain.Record{{
		ID: 1, FirstName: "A", LastName: "One", Email: "a@x.com", Department: domain.DepartmentGeneral,
	}}
	session, store := newSession(t, seed)

	session.OpenEdit(seed[0])
	require.NoError(t, session.SetField(form.FieldFirstName, ""))
	session.Cancel()

	assert.False(t, session.State().Open)
	assert.Equal(t, "A", store.Snapshot()[0].FirstName, "cancel runs no validation and commits nothing")
}

func TestSession_ClosedGuards(t *testing.T) {
	session, _ := newSession(t, nil)

	assert.ErrorIs(t, session.SetField(form.FieldFirstName, "x"), form.ErrNotOpen)
	assert.ErrorIs(t, session.Submit(context.Background()), form.ErrNotOpen)
}
