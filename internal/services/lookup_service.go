package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/namefreezers/weather-console/internal/repository"
	"github.com/namefreezers/weather-console/internal/weather"
	"github.com/namefreezers/weather-console/internal/weather/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	OutcomeSuccess = "success"
)

// ErrEmptyCity is returned when the city is blank after trimming.
var ErrEmptyCity = errors.New("city is required")

// LookupService fetches weather and keeps a history of every attempt.
type LookupService interface {
	Lookup(ctx context.Context, city string) (types.Record, error)
	History(ctx context.Context, limit int) ([]repository.Lookup, error)
}

type lookupService struct {
	fetcher weather.Fetcher
	repo    repository.LookupRepository
	logger  *zap.Logger
	now     func() time.Time
}

func NewLookupService(fetcher weather.Fetcher, repo repository.LookupRepository, logger *zap.Logger) LookupService {
	return &lookupService{fetcher: fetcher, repo: repo, logger: logger, now: time.Now}
}

// Lookup performs a single fetch and records its outcome. A history write
// failure is logged and does not change the returned result.
func (s *lookupService) Lookup(ctx context.Context, city string) (types.Record, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return types.Record{}, ErrEmptyCity
	}

	rec, err := s.fetcher.FetchCurrent(ctx, city)

	entry := repository.Lookup{
		ID:         uuid.New(),
		City:       city,
		Outcome:    OutcomeSuccess,
		StatusCode: http.StatusOK,
		CreatedAt:  s.now().UTC(),
	}
	if err != nil {
		entry.Outcome = types.KindOf(err).String()
		entry.StatusCode = 0
		var fe *types.FetchError
		if errors.As(err, &fe) {
			entry.StatusCode = fe.StatusCode
		}
	}

	if rerr := s.repo.Record(context.WithoutCancel(ctx), entry); rerr != nil {
		s.logger.Warn("lookup history not recorded",
			zap.String("city", city),
			zap.String("outcome", entry.Outcome),
			zap.Error(rerr),
		)
	}

	if err != nil {
		s.logger.Info("weather lookup failed",
			zap.String("city", city),
			zap.String("outcome", entry.Outcome),
			zap.Error(err),
		)
		return types.Record{}, err
	}
	return rec, nil
}

// History returns the most recent lookups; limit is clamped to
// 1..MaxHistoryLimit, with non-positive values meaning DefaultHistoryLimit.
func (s *lookupService) History(ctx context.Context, limit int) ([]repository.Lookup, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	lookups, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("repo.Recent: %w", err)
	}
	return lookups, nil
}
