package domain

import (
	"context"
	"time"
)

// Default crop focus applied when a member is saved without one.
const (
	DefaultFocusX = 50
	DefaultFocusY = 20
)

// TeamMember represents a person on the about page. FocusX and FocusY are
// horizontal/vertical crop percentages (0-100) for the portrait.
// swagger:model TeamMember
type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Image     string    `json:"image"`
	FocusX    *int      `json:"focus_x,omitempty"`
	FocusY    *int      `json:"focus_y,omitempty"`
	Quote     *string   `json:"quote,omitempty"`
	IsSenior  bool      `json:"is_senior"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamRepository defines the interface for team member storage.
type TeamRepository interface {
	Insert(ctx context.Context, member *TeamMember) error
	Update(ctx context.Context, member *TeamMember) error
	GetByID(ctx context.Context, id string) (*TeamMember, error)
	// List returns all members ordered by creation time, oldest first.
	List(ctx context.Context) ([]*TeamMember, error)
	Delete(ctx context.Context, id string) error
}

// TeamService defines the business logic for team members.
type TeamService interface {
	List(ctx context.Context) []*TeamMember
	GetByID(ctx context.Context, id string) (*TeamMember, bool)
	Save(ctx context.Context, member *TeamMember) error
	DeleteByID(ctx context.Context, id string) error
}
