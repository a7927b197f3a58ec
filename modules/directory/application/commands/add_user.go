// Package commands contains write use cases for the directory module.
// Commands change collection state and typically don't return data.
package commands

import (
	"context"

	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/shared/events"
)

// AddUserCommand represents the intent to add a new record.
// The id must have been allocated via domain.NextID when the add form
// opened; the command does not allocate.
type AddUserCommand struct {
	ID         int
	FirstName  string
	LastName   string
	Email      string
	Department string
}

// AddUserHandler handles the AddUserCommand.
type AddUserHandler struct {
	store     domain.CollectionStore
	publisher events.Publisher
}

func NewAddUserHandler(store domain.CollectionStore, publisher events.Publisher) *AddUserHandler {
	return &AddUserHandler{
		store:     store,
		publisher: publisher,
	}
}

// Handle validates the submitted values and appends the new record.
// Validation errors are returned unwrapped - their messages are surfaced
// verbatim by the form session.
func (h *AddUserHandler) Handle(ctx context.Context, cmd AddUserCommand) error {
	values := domain.FormValues{
		FirstName:  cmd.FirstName,
		LastName:   cmd.LastName,
		Email:      cmd.Email,
		Department: cmd.Department,
	}
	if err := domain.ValidateForm(values); err != nil {
		return err
	}

	record := domain.Record{
		ID:         cmd.ID,
		FirstName:  cmd.FirstName,
		LastName:   cmd.LastName,
		Email:      cmd.Email,
		Department: cmd.Department,
	}
	h.store.Add(record)

	if h.publisher != nil {
		// Notifications are fire-and-forget; a failed toast never rolls
		// back the mutation.
		_ = h.publisher.Publish(ctx, domain.NewUserAddedEvent(record))
	}

	return nil
}
