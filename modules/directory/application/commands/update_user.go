package commands

import (
	"context"

	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/shared/events"
)

// UpdateUserCommand represents the intent to update the record with the
// given id. The id itself is immutable and never part of the patch.
type UpdateUserCommand struct {
	ID         int
	FirstName  string
	LastName   string
	Email      string
	Department string
}

// UpdateUserHandler handles the UpdateUserCommand.
type UpdateUserHandler struct {
	store     domain.CollectionStore
	publisher events.Publisher
}

func NewUpdateUserHandler(store domain.CollectionStore, publisher events.Publisher) *UpdateUserHandler {
	return &UpdateUserHandler{
		store:     store,
		publisher: publisher,
	}
}

// Handle validates the submitted values and merges them into the target
// record. A missing id is silently absorbed by the store: edit targets come
// from the current collection, so the case is unreachable in normal flow.
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	values := domain.FormValues{
		FirstName:  cmd.FirstName,
		LastName:   cmd.LastName,
		Email:      cmd.Email,
		Department: cmd.Department,
	}
	if err := domain.ValidateForm(values); err != nil {
		return err
	}

	h.store.Update(cmd.ID, domain.Patch{
		FirstName:  cmd.FirstName,
		LastName:   cmd.LastName,
		Email:      cmd.Email,
		Department: cmd.Department,
	})

	if h.publisher != nil {
		record := domain.Record{
			ID:         cmd.ID,
			FirstName:  cmd.FirstName,
			LastName:   cmd.LastName,
			Email:      cmd.Email,
			Department: cmd.Department,
		}
		// Fire-and-forget, same as the add flow.
		_ = h.publisher.Publish(ctx, domain.NewUserUpdatedEvent(record))
	}

	return nil
}
