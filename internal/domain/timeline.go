package domain

import (
	"context"
	"time"
)

// TimelineEntry represents one milestone on the about page history strip.
// Year is free text, not necessarily numeric. Higher Order sorts first.
// swagger:model TimelineEntry
type TimelineEntry struct {
	ID          string    `json:"id"`
	Year        string    `json:"year"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TimelineRepository defines the interface for timeline storage.
type TimelineRepository interface {
	Insert(ctx context.Context, entry *TimelineEntry) error
	Update(ctx context.Context, entry *TimelineEntry) error
	GetByID(ctx context.Context, id string) (*TimelineEntry, error)
	// List returns all entries ordered by Order, highest first.
	List(ctx context.Context) ([]*TimelineEntry, error)
	Delete(ctx context.Context, id string) error
}

// TimelineService defines the business logic for timeline entries.
type TimelineService interface {
	List(ctx context.Context) []*TimelineEntry
	GetByID(ctx context.Context, id string) (*TimelineEntry, bool)
	Save(ctx context.Context, entry *TimelineEntry) error
	DeleteByID(ctx context.Context, id string) error
}
