package domain

import (
	"strconv"

	"github.com/rai/employee-directory/modules/shared/events"
)

// Domain events for the directory bounded context.
// Events represent facts about what happened in the collection.

const (
	UserAddedEventType   = "directory.UserAdded"
	UserUpdatedEventType = "directory.UserUpdated"
	UserDeletedEventType = "directory.UserDeleted"
)

// UserAddedEvent is published when a record is added to the collection.
type UserAddedEvent struct {
	events.BaseEvent
	UserID     int    `json:"user_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func NewUserAddedEvent(record Record) UserAddedEvent {
	return UserAddedEvent{
		BaseEvent:  events.NewBaseEvent(UserAddedEventType, strconv.Itoa(record.ID)),
		UserID:     record.ID,
		FirstName:  record.FirstName,
		LastName:   record.LastName,
		Email:      record.Email,
		Department: record.Department,
	}
}

// UserUpdatedEvent is published when a record is updated in place.
type UserUpdatedEvent struct {
	events.BaseEvent
	UserID     int    `json:"user_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func NewUserUpdatedEvent(record Record) UserUpdatedEvent {
	return UserUpdatedEvent{
		BaseEvent:  events.NewBaseEvent(UserUpdatedEventType, strconv.Itoa(record.ID)),
		UserID:     record.ID,
		FirstName:  record.FirstName,
		LastName:   record.LastName,
		Email:      record.Email,
		Department: record.Department,
	}
}

// UserDeletedEvent is published when a record is removed from the collection.
type UserDeletedEvent struct {
	events.BaseEvent
	UserID int `json:"user_id"`
}

func NewUserDeletedEvent(id int) UserDeletedEvent {
	return UserDeletedEvent{
		BaseEvent: events.NewBaseEvent(UserDeletedEventType, strconv.Itoa(id)),
		UserID:    id,
	}
}
