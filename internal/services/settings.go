package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"munsociety/internal/domain"
)

type settingsService struct {
	repo        domain.SettingRepository
	revalidator domain.Revalidator
	logger      *slog.Logger
	timeout     time.Duration
}

var settingsPaths = []string{"/", "/admin/settings"}

// NewSettingsService creates a SettingsService backed by the given repository.
// The store places no schema restriction on keys; any key is accepted.
func NewSettingsService(repo domain.SettingRepository, revalidator domain.Revalidator, logger *slog.Logger, timeout time.Duration) domain.SettingsService {
	return &settingsService{
		repo:        repo,
		revalidator: revalidator,
		logger:      logger,
		timeout:     timeout,
	}
}

func (s *settingsService) GetAll(ctx context.Context) map[string]domain.SettingValue {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list failed", "collection", "settings", "err", err)
		return map[string]domain.SettingValue{}
	}
	values := make(map[string]domain.SettingValue, len(rows))
	for _, row := range rows {
		values[row.Key] = domain.DecodeSettingValue(row.Value)
	}
	return values
}

// SetAll upserts each key independently, in sorted key order, and stops at
// the first failure. A multi-key update is therefore not atomic: keys
// before the failing one stay persisted, the rest are never attempted.
func (s *settingsService) SetAll(ctx context.Context, values map[string]domain.SettingValue) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := s.repo.Upsert(ctx, key, values[key].Encode()); err != nil {
			return fmt.Errorf("upsert setting %q: %w", key, err)
		}
	}
	s.revalidator.Revalidate(ctx, settingsPaths)
	return nil
}
