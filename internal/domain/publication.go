package domain

import (
	"context"
	"time"
)

// Publication represents a blog post or journal article. Tags keep their
// submitted order and may contain duplicates; Type is a free-text category
// (e.g. "Article", "Journal"). Titles are not unique.
// swagger:model Publication
type Publication struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   *string   `json:"content,omitempty"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	Tags      []string  `json:"tags"`
	Type      string    `json:"type"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicationRepository defines the interface for publication storage.
type PublicationRepository interface {
	Insert(ctx context.Context, pub *Publication) error
	Update(ctx context.Context, pub *Publication) error
	GetByID(ctx context.Context, id string) (*Publication, error)
	// List returns all publications ordered by date, newest first.
	List(ctx context.Context) ([]*Publication, error)
	Delete(ctx context.Context, id string) error
}

// PublicationService defines the business logic for publications.
type PublicationService interface {
	List(ctx context.Context) []*Publication
	GetByID(ctx context.Context, id string) (*Publication, bool)
	Save(ctx context.Context, pub *Publication) error
	DeleteByID(ctx context.Context, id string) error
}
