// Package form implements the transient editing session bound to one record.
// A session drives exactly one modal flow: closed → open(add|edit) →
// committed or cancelled → closed.
package form

import (
	"context"
	"errors"

	"github.com/rai/employee-directory/modules/directory/application/commands"
	"github.com/rai/employee-directory/modules/directory/domain"
)

// Mode distinguishes creating a new record from editing an existing one.
type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// Field names accepted by SetField, matching the form's input names.
const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldEmail      = "email"
	FieldDepartment = "department"
)

// ErrNotOpen indicates a submit or field edit arrived while no form flow
// was in progress.
var ErrNotOpen = errors.New("form session is not open")

// State is the observable form state exposed to presentation.
type State struct {
	Open bool `json:"open"`
	Mode Mode `json:"mode"`
	// RecordID is the pre-allocated id in add mode (displayed read-only)
	// or the edit target's id.
	RecordID     int               `json:"record_id"`
	Values       domain.FormValues `json:"values"`
	ErrorMessage string            `json:"error_message"`
}

// Session holds the editing state between open and close. It is not safe
// for concurrent use; the modeled flow is a single cooperative UI context.
type Session struct {
	store  domain.CollectionStore
	add    *commands.AddUserHandler
	update *commands.UpdateUserHandler

	open     bool
	mode     Mode
	recordID int
	values   domain.FormValues
	errMsg   string
}

func NewSession(store domain.CollectionStore, add *commands.AddUserHandler, update *commands.UpdateUserHandler) *Session {
	return &Session{
		store:  store,
		add:    add,
		update: update,
	}
}

// OpenAdd starts an add flow: empty fields, the default department, and a
// freshly allocated id. The id is recomputed against the current snapshot
// on every open - the collection may have changed since the last allocation.
func (s *Session) OpenAdd() State {
	s.open = true
	s.mode = ModeAdd
	s.recordID = domain.NextID(s.store.Snapshot())
	s.values = domain.FormValues{Department: domain.DepartmentGeneral}
	s.errMsg = ""
	return s.State()
}

// OpenEdit starts an edit flow seeded with a copy of the target record's
// current field values.
func (s *Session) OpenEdit(record domain.Record) State {
	s.open = true
	s.mode = ModeEdit
	s.recordID = record.ID
	s.values = domain.FormValues{
		FirstName:  record.FirstName,
		LastName:   record.LastName,
		Email:      record.Email,
		Department: record.Department,
	}
	s.errMsg = ""
	return s.State()
}

// SetField updates one field value and clears any displayed validation
// error (edit-to-dismiss). Unknown field names are ignored.
func (s *Session) SetField(name, value string) error {
	if !s.open {
		return ErrNotOpen
	}
	switch name {
	case FieldFirstName:
		s.values.FirstName = value
	case FieldLastName:
		s.values.LastName = value
	case FieldEmail:
		s.values.Email = value
	case FieldDepartment:
		s.values.Department = value
	default:
		return nil
	}
	s.errMsg = ""
	return nil
}

// SetValues replaces all field values at once, clearing any displayed
// error. Used when presentation collects the whole form before submit.
func (s *Session) SetValues(values domain.FormValues) error {
	if !s.open {
		return ErrNotOpen
	}
	s.values = values
	s.errMsg = ""
	return nil
}

// Submit validates the current values and commits them to the collection:
// add mode appends with the pre-allocated id, edit mode patches the target
// record. On validation failure the session stays open with the error
// message set; on success it closes.
func (s *Session) Submit(ctx context.Context) error {
	if !s.open {
		return ErrNotOpen
	}

	var err error
	switch s.mode {
	case ModeAdd:
		err = s.add.Handle(ctx, commands.AddUserCommand{
			ID:         s.recordID,
			FirstName:  s.values.FirstName,
			LastName:   s.values.LastName,
			Email:      s.values.Email,
			Department: s.values.Department,
		})
	case ModeEdit:
		err = s.update.Handle(ctx, commands.UpdateUserCommand{
			ID:         s.recordID,
			FirstName:  s.values.FirstName,
			LastName:   s.values.LastName,
			Email:      s.values.Email,
			Department: s.values.Department,
		})
	}

	if err != nil {
		s.errMsg = err.Error()
		return err
	}

	s.reset()
	return nil
}

// Cancel abandons the flow, discarding all edits. No validation runs.
func (s *Session) Cancel() {
	s.reset()
}

// State returns the current observable form state.
func (s *Session) State() State {
	return State{
		Open:         s.open,
		Mode:         s.mode,
		RecordID:     s.recordID,
		Values:       s.values,
		ErrorMessage: s.errMsg,
	}
}

func (s *Session) reset() {
	s.open = false
	s.mode = ""
	s.recordID = 0
	s.values = domain.FormValues{}
	s.errMsg = ""
}
