package commands

import (
	"context"

	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/shared/events"
)

// DeleteUserCommand represents the intent to remove a record.
type DeleteUserCommand struct {
	ID int
}

// DeleteUserHandler handles the DeleteUserCommand.
type DeleteUserHandler struct {
	store     domain.CollectionStore
	publisher events.Publisher
}

func NewDeleteUserHandler(store domain.CollectionStore, publisher events.Publisher) *DeleteUserHandler {
	return &DeleteUserHandler{
		store:     store,
		publisher: publisher,
	}
}

// Handle removes the record with the given id. Removing an absent id is a
// silent no-op; the deletion event is still published, matching the
// original's unconditional success toast.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	h.store.Remove(cmd.ID)

	if h.publisher != nil {
		// Fire-and-forget, same as the add flow.
		_ = h.publisher.Publish(ctx, domain.NewUserDeletedEvent(cmd.ID))
	}

	return nil
}
