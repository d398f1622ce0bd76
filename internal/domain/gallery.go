package domain

import (
	"context"
	"time"
)

// ImageSize selects the tile shape a gallery image occupies in the grid.
type ImageSize string

const (
	ImageSizeSmall ImageSize = "small"
	ImageSizeWide  ImageSize = "wide"
	ImageSizeTall  ImageSize = "tall"
	ImageSizeLarge ImageSize = "large"
)

// ValidImageSize reports whether s is one of the recognized tile sizes.
func ValidImageSize(s ImageSize) bool {
	switch s {
	case ImageSizeSmall, ImageSizeWide, ImageSizeTall, ImageSizeLarge:
		return true
	}
	return false
}

// GalleryImage represents one image in the public gallery. Category is
// free text expected to match a Category name but not foreign-key enforced.
// swagger:model GalleryImage
type GalleryImage struct {
	ID        string    `json:"id"`
	Src       string    `json:"src"`
	Category  string    `json:"category"`
	Size      ImageSize `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GalleryRepository defines the interface for gallery image storage.
type GalleryRepository interface {
	Insert(ctx context.Context, img *GalleryImage) error
	Update(ctx context.Context, img *GalleryImage) error
	GetByID(ctx context.Context, id string) (*GalleryImage, error)
	// List returns all images ordered by creation time, newest first.
	List(ctx context.Context) ([]*GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

// GalleryService defines the business logic for gallery images.
type GalleryService interface {
	List(ctx context.Context) []*GalleryImage
	GetByID(ctx context.Context, id string) (*GalleryImage, bool)
	Save(ctx context.Context, img *GalleryImage) error
	DeleteByID(ctx context.Context, id string) error
}
