package domain

import (
	"context"
	"time"
)

// Category is a named grouping shared by the gallery and publications
// admin pages. Name is unique; the gallery and publication namespaces
// share one table in practice.
// swagger:model Category
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryRepository defines the interface for category storage. Unlike the
// other entities, categories are keyed by their unique name.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*Category, error)
	// UpsertByName creates the category if absent; if a category with that
	// name already exists the call is a no-op.
	UpsertByName(ctx context.Context, category *Category) error
	DeleteByName(ctx context.Context, name string) error
}

// CategoryService defines the business logic for categories.
type CategoryService interface {
	Names(ctx context.Context) []string
	SaveName(ctx context.Context, name string) error
	DeleteName(ctx context.Context, name string) error
}
