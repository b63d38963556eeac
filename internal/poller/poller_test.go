package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPollingStopsWhenProbeDone(t *testing.T) {
	var calls atomic.Int32
	h := Start(context.Background(), 5*time.Millisecond, func(ctx context.Context) bool {
		return calls.Add(1) >= 3
	})

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("polling did not stop after probe returned true")
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("probe calls = %d, want 3", got)
	}
}

func TestStopCancelsPolling(t *testing.T) {
	var calls atomic.Int32
	h := Start(context.Background(), time.Hour, func(ctx context.Context) bool {
		calls.Add(1)
		return false
	})

	done := make(chan struct{})
	go func() {
		h.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
	if calls.Load() != 0 {
		t.Fatalf("probe ran %d times before first interval", calls.Load())
	}

	// Stop 幂等
	h.Stop()
}

func TestContextCancellationStopsPolling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := Start(ctx, time.Hour, func(ctx context.Context) bool { return false })

	cancel()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("polling did not observe context cancellation")
	}
}
