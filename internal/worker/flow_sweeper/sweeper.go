package flow_sweeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrSchedule возвращается при некорректном cron-расписании
var ErrSchedule = errors.New("flow_sweeper: invalid schedule")

// Sweeper по расписанию удаляет сценарии, которые не обновлялись дольше ttl
type Sweeper struct {
	repo         FlowRepository
	ttl          time.Duration
	timeout      time.Duration
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	cron         *cron.Cron
}

// NewSweeper создает sweeper; timeout ограничивает один проход
func NewSweeper(repo FlowRepository, ttl, timeout time.Duration, metrics Metrics, logger Logger) *Sweeper {
	return &Sweeper{
		repo:         repo,
		ttl:          ttl,
		timeout:      timeout,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cron:         cron.New(cron.WithLocation(time.UTC)),
	}
}

// Sweep удаляет сценарии с updated_at старше now - ttl
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	before := s.timeProvider.Now().Add(-s.ttl)

	count, err := s.repo.DeleteStale(ctx, before)
	if err != nil {
		return 0, err
	}

	s.metrics.ObserveFlowsSwept(count)
	if count > 0 {
		s.logger.Info("FlowSweeper: removed %d flows not updated since %s", count, before.Format(time.RFC3339))
	}
	return count, nil
}

// Start регистрирует задачу и запускает планировщик
func (s *Sweeper) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if _, err := s.Sweep(ctx); err != nil {
			s.logger.Error("FlowSweeper: scheduled sweep failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrSchedule, schedule, err)
	}

	s.cron.Start()
	s.logger.Info("FlowSweeper: scheduled with %q, ttl=%s", schedule, s.ttl)
	return nil
}

// Stop останавливает планировщик; возвращенный контекст закрывается после завершения текущего прохода
func (s *Sweeper) Stop() context.Context {
	return s.cron.Stop()
}
