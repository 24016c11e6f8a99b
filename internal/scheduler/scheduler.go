package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

type upcomingLister interface {
	Upcoming(within time.Duration) ([]domain.Event, error)
}

type reminderNotifier interface {
	NotifyUpcoming(ctx context.Context, e domain.Event)
}

// Scheduler periodically scans the active calendar for events starting
// within the lookahead window and pushes one reminder per event.
type Scheduler struct {
	lister    upcomingLister
	notifier  reminderNotifier
	interval  time.Duration
	lookahead time.Duration
	notified  map[string]bool // event ids already reminded
	logger    logger.Logger
}

func New(
	lister upcomingLister,
	notifier reminderNotifier,
	interval time.Duration,
	lookahead time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		lister:    lister,
		notifier:  notifier,
		interval:  interval,
		lookahead: lookahead,
		notified:  make(map[string]bool),
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scanner started",
		logger.Duration("interval", s.interval),
		logger.Duration("lookahead", s.lookahead),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scanner stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	upcoming, err := s.lister.Upcoming(s.lookahead)
	if err != nil {
		s.logger.Error("failed to list upcoming events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range upcoming {
		if s.notified[e.ID] {
			continue
		}
		s.notified[e.ID] = true
		s.logger.Info("event starting soon",
			logger.String("event_id", e.ID),
			logger.String("subject", e.Subject),
		)
		s.notifier.NotifyUpcoming(ctx, e)
	}
}
