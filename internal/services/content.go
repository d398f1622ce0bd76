package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"munsociety/internal/domain"
)

// store is the shape shared by every id-keyed entity repository. The
// per-entity interfaces in domain satisfy it structurally.
type store[PT any] interface {
	Insert(ctx context.Context, rec PT) error
	Update(ctx context.Context, rec PT) error
	GetByID(ctx context.Context, id string) (PT, error)
	List(ctx context.Context) ([]PT, error)
	Delete(ctx context.Context, id string) error
}

// contentService implements the shared persistence semantics for id-keyed
// entities: ids are generated server-side as UUIDs, created_at/updated_at
// are server-set, reads degrade to empty results on storage failure, and
// every successful mutation marks the collection's page paths stale.
// Writes attempt exactly once; concurrent saves to the same id are not
// serialized and the last commit wins.
type contentService[T any, PT interface {
	*T
	domain.Record
}] struct {
	name        string
	repo        store[PT]
	revalidator domain.Revalidator
	logger      *slog.Logger
	timeout     time.Duration
	// paths are the page routes that depend on this collection; the set is
	// static configuration, never computed.
	paths []string
	// normalize, when set, fills entity defaults before a save.
	normalize func(rec PT)
}

func (s *contentService[T, PT]) List(ctx context.Context) []PT {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	recs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list failed", "collection", s.name, "err", err)
		return []PT{}
	}
	return recs
}

func (s *contentService[T, PT]) GetByID(ctx context.Context, id string) (PT, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "get failed", "collection", s.name, "id", id, "err", err)
		}
		var zero PT
		return zero, false
	}
	return rec, true
}

func (s *contentService[T, PT]) Save(ctx context.Context, rec PT) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.normalize != nil {
		s.normalize(rec)
	}
	now := time.Now()
	if rec.RecordID() == "" {
		rec.SetRecordID(uuid.NewString())
		rec.StampCreated(now)
		rec.StampUpdated(now)
		if err := s.repo.Insert(ctx, rec); err != nil {
			return fmt.Errorf("insert %s: %w", s.name, err)
		}
	} else {
		rec.StampUpdated(now)
		if err := s.repo.Update(ctx, rec); err != nil {
			return fmt.Errorf("update %s: %w", s.name, err)
		}
	}
	s.revalidator.Revalidate(ctx, s.paths)
	return nil
}

func (s *contentService[T, PT]) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.name, err)
	}
	s.revalidator.Revalidate(ctx, s.paths)
	return nil
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(repo domain.EventRepository, revalidator domain.Revalidator, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &contentService[domain.Event, *domain.Event]{
		name:        "events",
		repo:        repo,
		revalidator: revalidator,
		logger:      logger,
		timeout:     timeout,
		paths:       []string{"/events", "/admin/events"},
	}
}

// NewPublicationService creates a PublicationService backed by the given repository.
func NewPublicationService(repo domain.PublicationRepository, revalidator domain.Revalidator, logger *slog.Logger, timeout time.Duration) domain.PublicationService {
	return &contentService[domain.Publication, *domain.Publication]{
		name:        "publications",
		repo:        repo,
		revalidator: revalidator,
		logger:      logger,
		timeout:     timeout,
		paths:       []string{"/publications", "/admin/publications"},
	}
}

// NewGalleryService creates a GalleryService backed by the given repository.
func NewGalleryService(repo domain.GalleryRepository, revalidator domain.Revalidator, logger *slog.Logger, timeout time.Duration) domain.GalleryService {
	return &contentService[domain.GalleryImage, *domain.GalleryImage]{
		name:        "gallery",
		repo:        repo,
		revalidator: revalidator,
		logger:      logger,
		timeout:     timeout,
		paths:       []string{"/gallery", "/admin/gallery"},
	}
}

// NewTeamService creates a TeamService backed by the given repository.
// Members saved without a crop focus get the default portrait focus.
func NewTeamService(repo domain.TeamRepository, revalidator domain.Revalidator, logger *slog.Logger, timeout time.Duration) domain.TeamService {
	return &contentService[domain.TeamMember, *domain.TeamMember]{
		name:        "team",
		repo:        repo,
		revalidator: revalidator,
		logger:      logger,
		timeout:     timeout,
		paths:       []string{"/about", "/admin/team"},
		normalize: func(m *domain.TeamMember) {
			if m.FocusX == nil {
				x := domain.DefaultFocusX
				m.FocusX = &x
			}
			if m.FocusY == nil {
				y := domain.DefaultFocusY
				m.FocusY = &y
			}
		},
	}
}

// NewTimelineService creates a TimelineService backed by the given repository.
func NewTimelineService(repo domain.TimelineRepository, revalidator domain.Revalidator, logger *slog.Logger, timeout time.Duration) domain.TimelineService {
	return &contentService[domain.TimelineEntry, *domain.TimelineEntry]{
		name:        "timeline",
		repo:        repo,
		revalidator: revalidator,
		logger:      logger,
		timeout:     timeout,
		paths:       []string{"/about", "/admin/timeline"},
	}
}
