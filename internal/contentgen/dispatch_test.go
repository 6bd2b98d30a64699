package contentgen

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestDispatch_PreservesInputOrder(t *testing.T) {
	inputs := make([]int, 32)
	for i := range inputs {
		inputs[i] = i
	}

	// Later inputs finish first, so ordering cannot be accidental.
	results := dispatch(context.Background(), 8, inputs, func(_ context.Context, n int) string {
		time.Sleep(time.Duration(len(inputs)-n) * time.Millisecond)
		return fmt.Sprintf("item-%d", n)
	})

	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}
	for i, r := range results {
		if want := fmt.Sprintf("item-%d", i); r != want {
			t.Fatalf("result %d: got %q, want %q", i, r, want)
		}
	}
}

func TestDispatch_RespectsConcurrencyBound(t *testing.T) {
	const limit = 3

	var inFlight, peak atomic.Int64
	inputs := make([]int, 24)

	dispatch(context.Background(), limit, inputs, func(_ context.Context, _ int) struct{} {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}
	})

	if got := peak.Load(); got > limit {
		t.Fatalf("observed %d concurrent workers, limit is %d", got, limit)
	}
}

func TestDispatch_ZeroLimitStillRuns(t *testing.T) {
	results := dispatch(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, n int) int {
		return n * 2
	})
	if len(results) != 3 || results[2] != 6 {
		t.Fatalf("unexpected results: %v", results)
	}
}

func TestDispatch_EmptyInput(t *testing.T) {
	results := dispatch(context.Background(), 4, nil, func(_ context.Context, n int) int { return n })
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
