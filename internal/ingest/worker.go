package ingest

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/superchain/token-explorer/internal/adapter"
	"github.com/superchain/token-explorer/internal/logger"
)

// CycleRunner runs one ingestion cycle.
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker.go -package=mocks -mock_names=CycleRunner=MockCycleRunner
type CycleRunner interface {
	RunCycle(ctx context.Context) CycleSummary
}

// Worker schedules ingestion cycles at a fixed interval. It runs one
// cycle immediately on start, then waits out the interval between
// cycles. Stop cancels the wait; a running cycle finishes its current
// token pipeline through context cancellation.
type Worker struct {
	runner   CycleRunner
	clock    adapter.Clock
	interval time.Duration

	running  atomic.Bool
	stopChan chan struct{}
	stopped  chan struct{}
}

// NewWorker creates a worker running cycles every interval.
func NewWorker(runner CycleRunner, clock adapter.Clock, interval time.Duration) *Worker {
	return &Worker{
		runner:   runner,
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// RunOnce executes a single cycle and returns its summary.
func (w *Worker) RunOnce(ctx context.Context) CycleSummary {
	return w.runner.RunCycle(ctx)
}

// Start runs the scheduling loop until Stop is called or ctx is
// cancelled. It returns an error only when the worker is already
// running.
func (w *Worker) Start(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		return fmt.Errorf("worker already running")
	}
	defer close(w.stopped)

	logger.InfoCtx(ctx, "ingestion worker started",
		zap.Duration("interval", w.interval))

	for {
		w.runCycle(ctx)

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "ingestion worker stopped", zap.String("reason", "context cancelled"))
			return nil
		case <-w.stopChan:
			logger.InfoCtx(ctx, "ingestion worker stopped", zap.String("reason", "stop requested"))
			return nil
		case <-w.clock.After(w.interval):
		}
	}
}

// runCycle contains a cycle so a panic cannot kill the loop.
func (w *Worker) runCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("panic in ingestion cycle: %v", r))
		}
	}()
	w.runner.RunCycle(ctx)
}

// Stop signals the loop to exit and waits for it to finish.
func (w *Worker) Stop(ctx context.Context) {
	if !w.running.Load() {
		return
	}
	close(w.stopChan)
	select {
	case <-w.stopped:
	case <-ctx.Done():
		logger.WarnCtx(ctx, "timed out waiting for ingestion worker to stop")
	}
}
