package scheduler

import (
	"context"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type staleRequestRejecter interface {
	RejectStale(ctx context.Context) ([]*domain.Request, error)
}

// Scheduler периодически отклоняет PENDING-заявки на уже начавшиеся события:
// подтвердить их больше некому.
type Scheduler struct {
	requestService staleRequestRejecter
	interval       time.Duration
	logger         logger.Logger
}

func New(
	requestService staleRequestRejecter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		requestService: requestService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	rejected, err := s.requestService.RejectStale(ctx)
	if err != nil {
		s.logger.Error("failed to reject stale requests",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range rejected {
		s.logger.Info("stale request rejected",
			logger.Int64("request_id", r.ID),
			logger.Int64("requester_id", r.RequesterID),
			logger.Int64("event_id", r.EventID),
		)
	}
}
