package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"munsociety/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uuidV4Regexp = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRevalidator records every Revalidate call.
type fakeRevalidator struct {
	calls [][]string
}

func (f *fakeRevalidator) Revalidate(_ context.Context, paths []string) {
	f.calls = append(f.calls, paths)
}

// fakeEventRepo implements domain.EventRepository in memory for tests.
type fakeEventRepo struct {
	recs    map[string]*domain.Event
	failing bool
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{recs: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Insert(_ context.Context, e *domain.Event) error {
	if f.failing {
		return sql.ErrConnDone
	}
	cp := *e
	f.recs[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *domain.Event) error {
	if f.failing {
		return sql.ErrConnDone
	}
	if _, ok := f.recs[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	cp.CreatedAt = f.recs[e.ID].CreatedAt
	f.recs[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	if f.failing {
		return nil, sql.ErrConnDone
	}
	e, ok := f.recs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	if f.failing {
		return nil, sql.ErrConnDone
	}
	out := make([]*domain.Event, 0, len(f.recs))
	for _, e := range f.recs {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id string) error {
	if f.failing {
		return sql.ErrConnDone
	}
	if _, ok := f.recs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.recs, id)
	return nil
}

// fakeTeamRepo implements domain.TeamRepository in memory for tests.
type fakeTeamRepo struct {
	recs map[string]*domain.TeamMember
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{recs: make(map[string]*domain.TeamMember)}
}

func (f *fakeTeamRepo) Insert(_ context.Context, m *domain.TeamMember) error {
	cp := *m
	f.recs[m.ID] = &cp
	return nil
}

func (f *fakeTeamRepo) Update(_ context.Context, m *domain.TeamMember) error {
	if _, ok := f.recs[m.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *m
	f.recs[m.ID] = &cp
	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id string) (*domain.TeamMember, error) {
	m, ok := f.recs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeTeamRepo) List(_ context.Context) ([]*domain.TeamMember, error) {
	out := make([]*domain.TeamMember, 0, len(f.recs))
	for _, m := range f.recs {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeTeamRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.recs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.recs, id)
	return nil
}

func TestEventService_SaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	rv := &fakeRevalidator{}
	svc := NewEventService(repo, rv, testLogger(), time.Second)

	event := &domain.Event{
		Title:       "Gala",
		Date:        "2026-03-01",
		Location:    "Hall A",
		Description: "x",
		Status:      domain.EventStatusOpen,
	}
	require.NoError(t, svc.Save(ctx, event))

	require.NotEmpty(t, event.ID)
	assert.Regexp(t, uuidV4Regexp, event.ID, "generated id has UUID-v4 shape")
	assert.False(t, event.CreatedAt.IsZero())
	assert.Equal(t, event.CreatedAt, event.UpdatedAt)

	got, ok := svc.GetByID(ctx, event.ID)
	require.True(t, ok)
	assert.Equal(t, event.Title, got.Title)
	assert.Equal(t, event.Date, got.Date)
	assert.Equal(t, event.Location, got.Location)
	assert.Equal(t, event.Description, got.Description)
	assert.Equal(t, event.Status, got.Status)

	list := svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Gala", list[0].Title)

	require.Equal(t, [][]string{{"/events", "/admin/events"}}, rv.calls)
}

func TestEventService_UpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo, &fakeRevalidator{}, testLogger(), time.Second)

	event := &domain.Event{Title: "Gala", Status: domain.EventStatusOpen}
	require.NoError(t, svc.Save(ctx, event))
	id := event.ID
	firstUpdated := event.UpdatedAt

	event.Title = "Gala (updated)"
	require.NoError(t, svc.Save(ctx, event))

	assert.Equal(t, id, event.ID, "save never changes an existing id")
	assert.True(t, !event.UpdatedAt.Before(firstUpdated), "updated_at advances")

	got, ok := svc.GetByID(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "Gala (updated)", got.Title)
	assert.Equal(t, firstUpdated, got.CreatedAt, "created_at is set once and never changed")
}

func TestEventService_EmptyOnFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	repo.failing = true
	svc := NewEventService(repo, &fakeRevalidator{}, testLogger(), time.Second)

	list := svc.List(ctx)
	require.NotNil(t, list)
	assert.Empty(t, list)

	got, ok := svc.GetByID(ctx, "any-id")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestEventService_SaveFailureSkipsRevalidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	repo.failing = true
	rv := &fakeRevalidator{}
	svc := NewEventService(repo, rv, testLogger(), time.Second)

	err := svc.Save(ctx, &domain.Event{Title: "Gala"})
	require.Error(t, err)
	assert.Empty(t, rv.calls)
}

func TestEventService_DeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	rv := &fakeRevalidator{}
	svc := NewEventService(repo, rv, testLogger(), time.Second)

	event := &domain.Event{Title: "Gala"}
	require.NoError(t, svc.Save(ctx, event))
	require.NoError(t, svc.DeleteByID(ctx, event.ID))

	_, ok := svc.GetByID(ctx, event.ID)
	assert.False(t, ok)
	assert.Len(t, rv.calls, 2)

	err := svc.DeleteByID(ctx, event.ID)
	require.Error(t, err)
}

func TestTeamService_SaveAppliesFocusDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTeamRepo()
	svc := NewTeamService(repo, &fakeRevalidator{}, testLogger(), time.Second)

	member := &domain.TeamMember{Name: "Dana", Role: "President", Image: "https://img.test/dana.jpg"}
	require.NoError(t, svc.Save(ctx, member))

	got, ok := svc.GetByID(ctx, member.ID)
	require.True(t, ok)
	require.NotNil(t, got.FocusX)
	require.NotNil(t, got.FocusY)
	assert.Equal(t, domain.DefaultFocusX, *got.FocusX)
	assert.Equal(t, domain.DefaultFocusY, *got.FocusY)

	x, y := 10, 90
	member.FocusX, member.FocusY = &x, &y
	require.NoError(t, svc.Save(ctx, member))
	got, ok = svc.GetByID(ctx, member.ID)
	require.True(t, ok)
	assert.Equal(t, 10, *got.FocusX)
	assert.Equal(t, 90, *got.FocusY)
}

func TestTeamService_RevalidatesAboutPage(t *testing.T) {
	ctx := context.Background()
	rv := &fakeRevalidator{}
	svc := NewTeamService(newFakeTeamRepo(), rv, testLogger(), time.Second)

	require.NoError(t, svc.Save(ctx, &domain.TeamMember{Name: "Dana"}))
	require.Equal(t, [][]string{{"/about", "/admin/team"}}, rv.calls)
}
