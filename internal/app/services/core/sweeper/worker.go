package sweeper

import (
	"context"
	"time"

	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/services/shared/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey is the fixed key used to ensure a single sweeper leader.
const leaderLockKey = "sweeper:leader"

// Worker periodically expires pending bookings whose hold has lapsed. The
// sweep is a bulk status transition, so bookings a lost or never-sent
// gateway callback left behind still converge to a terminal state.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	repo    contracts.BookingRepository
	metrics *metrics.Registry
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, bookingRepository contracts.BookingRepository, metricsRegistry *metrics.Registry) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, repo: bookingRepository, metrics: metricsRegistry}
}

// Start begins the periodic sweep.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.SweeperCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("sweeper.worker: failed to schedule with provided cron spec; falling back to @every 5m", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 5m", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the cron and waits for an in-flight sweep.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, ttl)
	if err != nil {
		w.log.Warn("sweeper.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("sweeper.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, leaderLockKey, token)

	expired, err := w.repo.ExpireDue(ctx, time.Now().UTC())
	if err != nil {
		w.log.Warn("sweeper.worker: expiration sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		w.metrics.BookingsExpired.Add(float64(expired))
		w.log.Info("sweeper.worker: expired overdue pending bookings", zap.Int64("expired_count", expired))
	}
}
