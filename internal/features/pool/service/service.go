package service

import (
	"context"
	stderrors "errors"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/logger"
	"portal-backend/internal/common/metrics"
	"portal-backend/internal/common/validation"
	"portal-backend/internal/features/pool/models"
	"portal-backend/internal/features/pool/repository"
	redisstore "portal-backend/internal/platform/redis"
	"portal-backend/internal/utils/random"
)

type PoolService interface {
	Stats(ctx context.Context, country string) (*models.Stats, error)
	Allocate(ctx context.Context, country string, requester models.Requester) (*models.Allocation, error)
	Release(ctx context.Context, country, address string) error
	Add(ctx context.Context, country string, lines []string) (*models.AddResult, error)
	Remove(ctx context.Context, country, address string) error
	Clear(ctx context.Context, country string) error
	Snapshot(ctx context.Context, country string) (*models.Snapshot, error)
	// Seed replaces the country's lists: endpoints become available and busy
	// become used records. Existing used records for busy addresses are kept.
	Seed(ctx context.Context, country string, endpoints, busy []string) error
	Eligibility(ctx context.Context, userID, country string) (*models.Eligibility, error)
}

type poolService struct {
	repo repository.PoolRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewPoolService(repo repository.PoolRepository) PoolService {
	return &poolService{
		repo: repo,
		now:  time.Now,
		log:  logger.Component("pool"),
	}
}

func (s *poolService) Stats(ctx context.Context, country string) (*models.Stats, error) {
	country, err := normalize(country)
	if err != nil {
		return nil, err
	}

	state, err := s.repo.Load(ctx, country)
	if err != nil {
		return nil, errors.NewStoreError("load pool", err)
	}

	return &models.Stats{
		Country:   country,
		Available: len(state.Available),
		Used:      len(state.Used),
		Total:     len(state.Available) + len(state.Used),
	}, nil
}

// Allocate hands out one available address picked uniformly at random.
// Authenticated requesters are limited to one address per country per
// RateWindow.
func (s *poolService) Allocate(ctx context.Context, country string, requester models.Requester) (*models.Allocation, error) {
	country, err := normalize(country)
	if err != nil {
		return nil, err
	}

	var allocation models.Allocation
	err = s.repo.Mutate(ctx, country, requester.UserID, func(state *models.State) error {
		now := s.now()

		if requester.UserID != "" {
			state.History = pruneHistory(state.History, now)
			if wait := retryAfter(state.History, now); wait > 0 {
				return errors.NewRateLimitError("You can request one address per country every 24 hours", wait)
			}
		}

		if len(state.Available) == 0 {
			return errors.NewPoolExhaustedError(country)
		}

		idx, err := random.Intn(len(state.Available))
		if err != nil {
			return err
		}
		address := state.Available[idx]
		state.Available = slices.Delete(state.Available, idx, idx+1)

		state.Used = append(state.Used, models.UsedRecord{
			Address:   address,
			Timestamp: now.UnixMilli(),
			UserIP:    requester.IP,
			UserID:    requester.UserID,
			Country:   country,
		})
		if requester.UserID != "" {
			state.History = append(state.History, models.HistoryEntry{Timestamp: now.UnixMilli(), Address: address})
		}

		allocation = models.Allocation{Address: address, Remaining: len(state.Available)}
		return nil
	})
	if err != nil {
		appErr := s.mapError("allocate", err)
		metrics.ObserveAllocation(requester.Entry, strings.ToLower(string(appErr.Code)))
		return nil, appErr
	}

	metrics.ObserveAllocation(requester.Entry, "ok")
	s.log.Info().
		Str("country", country).
		Str("address", allocation.Address).
		Str("user_id", requester.UserID).
		Str("ip", requester.IP).
		Int("remaining", allocation.Remaining).
		Msg("Address allocated")
	return &allocation, nil
}

// Release moves an address from used back to available. The used record is
// discarded.
func (s *poolService) Release(ctx context.Context, country, address string) error {
	country, err := normalize(country)
	if err != nil {
		return err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return errors.NewValidationError("address", "address is required")
	}

	err = s.repo.Mutate(ctx, country, "", func(state *models.State) error {
		idx := slices.IndexFunc(state.Used, func(r models.UsedRecord) bool { return r.Address == address })
		if idx == -1 {
			return errors.NewNotFoundError("address not found in used list")
		}
		state.Used = slices.Delete(state.Used, idx, idx+1)
		state.Available = append(state.Available, address)
		return nil
	})
	if err != nil {
		return s.mapError("release", err)
	}

	s.log.Info().Str("country", country).Str("address", address).Msg("Address released")
	return nil
}

func (s *poolService) Add(ctx context.Context, country string, lines []string) (*models.AddResult, error) {
	country, err := normalize(country)
	if err != nil {
		return nil, err
	}

	valid, rejected := validation.SplitIPv4Lines(lines)
	if len(valid) == 0 {
		return nil, errors.NewValidationError("addresses", "no valid IPv4 addresses").
			WithDetail("rejected", orEmpty(rejected))
	}

	result := models.AddResult{Rejected: orEmpty(rejected)}
	err = s.repo.Mutate(ctx, country, "", func(state *models.State) error {
		seen := make(map[string]struct{}, len(state.Available)+len(state.Used))
		for _, a := range state.Available {
			seen[a] = struct{}{}
		}
		for _, r := range state.Used {
			seen[r.Address] = struct{}{}
		}

		result.Added, result.Duplicates = 0, 0
		for _, a := range valid {
			if _, ok := seen[a]; ok {
				result.Duplicates++
				continue
			}
			seen[a] = struct{}{}
			state.Available = append(state.Available, a)
			result.Added++
		}
		result.Available = len(state.Available)
		return nil
	})
	if err != nil {
		return nil, s.mapError("add addresses", err)
	}

	s.log.Info().
		Str("country", country).
		Int("added", result.Added).
		Int("duplicates", result.Duplicates).
		Int("rejected", len(result.Rejected)).
		Msg("Addresses added")
	return &result, nil
}

// Remove deletes an address from the available list.
func (s *poolService) Remove(ctx context.Context, country, address string) error {
	country, err := normalize(country)
	if err != nil {
		return err
	}

	err = s.repo.Mutate(ctx, country, "", func(state *models.State) error {
		idx := slices.Index(state.Available, address)
		if idx == -1 {
			return errors.NewNotFoundError("address not found in available list")
		}
		state.Available = slices.Delete(state.Available, idx, idx+1)
		return nil
	})
	if err != nil {
		return s.mapError("remove address", err)
	}
	return nil
}

func (s *poolService) Clear(ctx context.Context, country string) error {
	country, err := normalize(country)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, country); err != nil {
		return errors.NewStoreError("clear pool", err)
	}
	s.log.Info().Str("country", country).Msg("Pool cleared")
	return nil
}

func (s *poolService) Snapshot(ctx context.Context, country string) (*models.Snapshot, error) {
	country, err := normalize(country)
	if err != nil {
		return nil, err
	}
	state, err := s.repo.Load(ctx, country)
	if err != nil {
		return nil, errors.NewStoreError("load pool", err)
	}
	return &models.Snapshot{
		Country:   country,
		Available: orEmpty(state.Available),
		Used:      orEmpty(state.Used),
	}, nil
}

func (s *poolService) Seed(ctx context.Context, country string, endpoints, busy []string) error {
	country, err := normalize(country)
	if err != nil {
		return err
	}

	err = s.repo.Mutate(ctx, country, "", func(state *models.State) error {
		now := s.now().UnixMilli()
		previous := make(map[string]models.UsedRecord, len(state.Used))
		for _, r := range state.Used {
			previous[r.Address] = r
		}

		seen := make(map[string]struct{})
		used := make([]models.UsedRecord, 0, len(busy))
		for _, a := range busy {
			a = strings.TrimSpace(a)
			if _, dup := seen[a]; a == "" || dup {
				continue
			}
			seen[a] = struct{}{}
			if r, ok := previous[a]; ok {
				used = append(used, r)
				continue
			}
			used = append(used, models.UsedRecord{Address: a, Timestamp: now, Country: country})
		}

		available := make([]string, 0, len(endpoints))
		for _, a := range endpoints {
			a = strings.TrimSpace(a)
			if _, dup := seen[a]; a == "" || dup {
				continue
			}
			seen[a] = struct{}{}
			available = append(available, a)
		}

		state.Available, state.Used = available, used
		return nil
	})
	if err != nil {
		return s.mapError("seed pool", err)
	}
	return nil
}

func (s *poolService) Eligibility(ctx context.Context, userID, country string) (*models.Eligibility, error) {
	country, err := normalize(country)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.LoadHistory(ctx, userID, country)
	if err != nil {
		return nil, errors.NewStoreError("load history", err)
	}

	wait := retryAfter(history, s.now())
	return &models.Eligibility{
		Eligible:          wait <= 0,
		RetryAfterSeconds: errors.CeilSeconds(wait),
	}, nil
}

func (s *poolService) mapError(op string, err error) *errors.AppError {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}
	if stderrors.Is(err, redisstore.ErrTxConflict) {
		s.log.Warn().Err(err).Str("operation", op).Msg("Pool transaction abandoned")
	}
	return errors.NewStoreError(op, err)
}

func normalize(country string) (string, error) {
	code, err := validation.NormalizeCountry(country)
	if err != nil {
		return "", errors.NewValidationError("country", err.Error())
	}
	return code, nil
}

func pruneHistory(history []models.HistoryEntry, now time.Time) []models.HistoryEntry {
	cutoff := now.Add(-models.HistoryRetention).UnixMilli()
	return slices.DeleteFunc(history, func(e models.HistoryEntry) bool { return e.Timestamp < cutoff })
}

// retryAfter returns how long until the newest entry leaves the rate
// window, or 0 when a new allocation is allowed.
func retryAfter(history []models.HistoryEntry, now time.Time) time.Duration {
	var latest int64
	for _, e := range history {
		latest = max(latest, e.Timestamp)
	}
	if latest == 0 {
		return 0
	}
	wait := time.UnixMilli(latest).Add(models.RateWindow).Sub(now)
	if wait < 0 {
		return 0
	}
	return wait
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
