package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"pay-ledger.backend/pkg/logger"
)

type notificationReplayer interface {
	ReplayUnmatched(ctx context.Context, limit int) (int, error)
}

// NotificationReplayJob periodically re-runs reconciliation for archived
// provider notifications that never matched a ledger transaction. Webhooks
// can arrive before the transaction they settle exists; the replay pass
// closes that gap without waiting for the provider to redeliver.
type NotificationReplayJob struct {
	paystack notificationReplayer
	monnify  notificationReplayer
	interval time.Duration
	batch    int
	stop     chan struct{}
}

func NewNotificationReplayJob(
	paystack notificationReplayer,
	monnify notificationReplayer,
	interval time.Duration,
) *NotificationReplayJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &NotificationReplayJob{
		paystack: paystack,
		monnify:  monnify,
		interval: interval,
		batch:    100,
		stop:     make(chan struct{}),
	}
}

func (j *NotificationReplayJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting notification replay job",
		zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Notification replay job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Notification replay job stopped")
			return
		case <-ticker.C:
			j.replayPass(ctx)
		}
	}
}

func (j *NotificationReplayJob) Stop() {
	close(j.stop)
}

func (j *NotificationReplayJob) replayPass(ctx context.Context) {
	if matched, err := j.paystack.ReplayUnmatched(ctx, j.batch); err != nil {
		logger.Error(ctx, "Paystack notification replay failed", zap.Error(err))
	} else if matched > 0 {
		logger.Info(ctx, "Replayed Paystack notifications", zap.Int("matched", matched))
	}

	if matched, err := j.monnify.ReplayUnmatched(ctx, j.batch); err != nil {
		logger.Error(ctx, "Monnify notification replay failed", zap.Error(err))
	} else if matched > 0 {
		logger.Info(ctx, "Replayed Monnify notifications", zap.Int("matched", matched))
	}
}
