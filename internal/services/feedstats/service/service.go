// Package service implements the feed analytics recorder
package service

import (
	"context"
	"time"

	"fundi/internal/modkit/scope"
	"fundi/internal/platform/logger"
	"fundi/internal/services/feedstats/domain"
	"fundi/internal/services/feedstats/repo"
)

const writeTimeout = 5 * time.Second

// Service implements domain.RecorderPort against the clickhouse repo.
// Recording is best effort: list endpoints must never fail or slow down
// because analytics is unavailable
type Service struct {
	storage *repo.CH
	log     logger.Logger
}

// New constructs the recorder. A nil repo disables recording
func New(storage *repo.CH) *Service {
	return &Service{storage: storage, log: *logger.Named("feedstats")}
}

// Record implements domain.RecorderPort. The write runs detached from the
// request context so a cancelled request does not lose the event
func (s *Service) Record(ctx context.Context, ev domain.QueryEvent) {
	if s == nil || s.storage == nil || s.storage.DB == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	if ev.Client == "" {
		if c, ok := scope.Get(ctx, "client"); ok {
			ev.Client = c
		}
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := s.storage.WriteBatch(ctx, []domain.QueryEvent{ev}); err != nil {
			s.log.Warn().Err(err).Str("entity", ev.Entity).Msg("feedstats write failed")
		}
	}()
}
