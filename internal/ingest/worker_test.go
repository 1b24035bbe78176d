package ingest_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superchain/token-explorer/internal/ingest"
	"github.com/superchain/token-explorer/internal/mocks"
)

func TestWorkerRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCycleRunner(ctrl)
	runner.EXPECT().RunCycle(gomock.Any()).Return(ingest.CycleSummary{
		Chains: []ingest.ChainSummary{{Slug: "base", Succeeded: 2}},
	})

	worker := ingest.NewWorker(runner, mocks.NewMockClock(ctrl), time.Hour)
	summary := worker.RunOnce(context.Background())
	assert.Equal(t, 2, summary.Succeeded())
}

func TestWorkerStartRunsImmediatelyAndStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cycleRan := make(chan struct{})
	runner := mocks.NewMockCycleRunner(ctrl)
	runner.EXPECT().RunCycle(gomock.Any()).DoAndReturn(func(ctx context.Context) ingest.CycleSummary {
		close(cycleRan)
		return ingest.CycleSummary{}
	})

	var never <-chan time.Time = make(chan time.Time)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().After(time.Hour).Return(never).AnyTimes()

	worker := ingest.NewWorker(runner, clock, time.Hour)

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(context.Background())
	}()

	select {
	case <-cycleRan:
	case <-time.After(5 * time.Second):
		t.Fatal("first cycle did not run")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	worker.Stop(stopCtx)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorkerStartHonorsContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCycleRunner(ctrl)
	runner.EXPECT().RunCycle(gomock.Any()).Return(ingest.CycleSummary{}).AnyTimes()

	var never <-chan time.Time = make(chan time.Time)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().After(time.Hour).Return(never).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	worker := ingest.NewWorker(runner, clock, time.Hour)

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not exit on cancellation")
	}
}

func TestWorkerPanicInCycleDoesNotKillLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCycleRunner(ctrl)
	first := runner.EXPECT().RunCycle(gomock.Any()).DoAndReturn(func(ctx context.Context) ingest.CycleSummary {
		panic("fetcher blew up")
	})
	cycleRan := make(chan struct{})
	runner.EXPECT().RunCycle(gomock.Any()).DoAndReturn(func(ctx context.Context) ingest.CycleSummary {
		close(cycleRan)
		return ingest.CycleSummary{}
	}).After(first)

	// The interval elapses once, scheduling the second cycle, then
	// never fires again.
	firedCh := make(chan time.Time, 1)
	firedCh <- time.Now()
	var fired <-chan time.Time = firedCh
	var never <-chan time.Time = make(chan time.Time)
	clock := mocks.NewMockClock(ctrl)
	gomock.InOrder(
		clock.EXPECT().After(time.Hour).Return(fired),
		clock.EXPECT().After(time.Hour).Return(never).AnyTimes(),
	)

	worker := ingest.NewWorker(runner, clock, time.Hour)

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(context.Background())
	}()

	select {
	case <-cycleRan:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not survive the panic")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	worker.Stop(stopCtx)
	require.NoError(t, <-done)
}
