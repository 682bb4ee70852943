package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type replayerStub struct {
	matched   int
	err       error
	calls     int
	lastLimit int
}

func (s *replayerStub) ReplayUnmatched(_ context.Context, limit int) (int, error) {
	s.calls++
	s.lastLimit = limit
	return s.matched, s.err
}

func TestReplayPass_CallsBothProviders(t *testing.T) {
	paystack := &replayerStub{matched: 2}
	monnify := &replayerStub{matched: 0}
	job := &NotificationReplayJob{paystack: paystack, monnify: monnify, interval: time.Millisecond, batch: 50, stop: make(chan struct{})}

	job.replayPass(context.Background())
	require.Equal(t, 1, paystack.calls)
	require.Equal(t, 1, monnify.calls)
	require.Equal(t, 50, paystack.lastLimit)
	require.Equal(t, 50, monnify.lastLimit)
}

func TestReplayPass_OneProviderFailingDoesNotSkipTheOther(t *testing.T) {
	paystack := &replayerStub{err: errors.New("db down")}
	monnify := &replayerStub{matched: 1}
	job := &NotificationReplayJob{paystack: paystack, monnify: monnify, interval: time.Millisecond, batch: 10, stop: make(chan struct{})}

	job.replayPass(context.Background())
	require.Equal(t, 1, paystack.calls)
	require.Equal(t, 1, monnify.calls)
}

func TestNewNotificationReplayJob_DefaultInterval(t *testing.T) {
	job := NewNotificationReplayJob(&replayerStub{}, &replayerStub{}, 0)
	require.Equal(t, time.Minute, job.interval)
}

func TestStartStop_StopsByContext(t *testing.T) {
	job := &NotificationReplayJob{paystack: &replayerStub{}, monnify: &replayerStub{}, interval: time.Millisecond, batch: 10, stop: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStartStop_StopsByStopChannel(t *testing.T) {
	job := &NotificationReplayJob{paystack: &replayerStub{}, monnify: &replayerStub{}, interval: time.Millisecond, batch: 10, stop: make(chan struct{})}

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	job.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on Stop()")
	}
}
