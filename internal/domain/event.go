package domain

import (
	"context"
	"time"
)

// EventStatus is the registration state shown on the public events page.
type EventStatus string

const (
	EventStatusOpen      EventStatus = "Open"
	EventStatusClosed    EventStatus = "Closed"
	EventStatusCompleted EventStatus = "Completed"
	EventStatusUpcoming  EventStatus = "Upcoming"
)

// ValidEventStatus reports whether s is one of the recognized statuses.
// Out-of-range values are rejected at the HTTP boundary; the repository
// stores whatever it is given.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusOpen, EventStatusClosed, EventStatusCompleted, EventStatusUpcoming:
		return true
	}
	return false
}

// Event represents a conference or society event. Date is a calendar date
// kept as an ISO string, matching how the public site renders it. Multiple
// events may be flagged featured; consumers pick the first.
// swagger:model Event
type Event struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Date                 string      `json:"date"`
	Location             string      `json:"location"`
	Description          string      `json:"description"`
	Status               EventStatus `json:"status"`
	RegistrationLink     *string     `json:"registration_link,omitempty"`
	RegistrationDeadline *time.Time  `json:"registration_deadline,omitempty"`
	Fee                  *string     `json:"fee,omitempty"`
	IsFeatured           bool        `json:"is_featured"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Insert(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns all events ordered by date, newest first.
	List(ctx context.Context) ([]*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for events. Reads degrade to
// empty results on storage failure; writes report the failure cause.
type EventService interface {
	List(ctx context.Context) []*Event
	GetByID(ctx context.Context, id string) (*Event, bool)
	Save(ctx context.Context, event *Event) error
	DeleteByID(ctx context.Context, id string) error
}
