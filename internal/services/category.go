package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"munsociety/internal/domain"
)

type categoryService struct {
	repo        domain.CategoryRepository
	revalidator domain.Revalidator
	logger      *slog.Logger
	timeout     time.Duration
}

var categoryPaths = []string{"/admin/gallery"}

// NewCategoryService creates a CategoryService backed by the given repository.
// Categories are keyed by their unique name; saving an existing name is a
// no-op with respect to record count.
func NewCategoryService(repo domain.CategoryRepository, revalidator domain.Revalidator, logger *slog.Logger, timeout time.Duration) domain.CategoryService {
	return &categoryService{
		repo:        repo,
		revalidator: revalidator,
		logger:      logger,
		timeout:     timeout,
	}
}

func (s *categoryService) Names(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	categories, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list failed", "collection", "categories", "err", err)
		return []string{}
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

func (s *categoryService) SaveName(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now()
	category := &domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.UpsertByName(ctx, category); err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	s.revalidator.Revalidate(ctx, categoryPaths)
	return nil
}

func (s *categoryService) DeleteName(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.DeleteByName(ctx, name); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	s.revalidator.Revalidate(ctx, categoryPaths)
	return nil
}
