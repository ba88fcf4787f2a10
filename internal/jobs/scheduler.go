package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"shopfront/api/internal/models"
)

// OrderCounter is the repository slice the report job needs.
type OrderCounter interface {
	CountByStatus(ctx context.Context) (map[models.OrderStatus]int, error)
}

// Scheduler runs the daily order report. It is read-only: no job mutates
// order state.
type Scheduler struct {
	cron   *cron.Cron
	orders OrderCounter
	log    zerolog.Logger
}

func NewScheduler(orders OrderCounter, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		orders: orders,
		log:    log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 0 * * *", s.reportOrders); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for a running job to finish, up to five seconds.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) reportOrders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("order report failed")
		return
	}

	event := s.log.Info()
	for status, count := range counts {
		event = event.Int(string(status), count)
	}
	event.Msg("daily order report")
}
