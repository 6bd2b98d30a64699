package contentgen

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCache_GetOrComputeMemoizes(t *testing.T) {
	c := NewCache[string]()
	k := Key{Subject: "Go", SkillLevel: "beginner", Kind: KindCurriculum}

	var calls int
	compute := func() (string, bool) {
		calls++
		return "value", true
	}

	if got := c.GetOrCompute(k, compute); got != "value" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := c.GetOrCompute(k, compute); got != "value" {
		t.Fatalf("unexpected value: %q", got)
	}
	if calls != 1 {
		t.Fatalf("expected a single compute, got %d", calls)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}

func TestCache_DistinctKeysDoNotCollide(t *testing.T) {
	c := NewCache[string]()
	a := Key{Subject: "Go", SkillLevel: "beginner", Kind: KindCurriculum}
	b := Key{Subject: "Go", SkillLevel: "advanced", Kind: KindCurriculum}

	c.GetOrCompute(a, func() (string, bool) { return "alpha", true })
	c.GetOrCompute(b, func() (string, bool) { return "beta", true })

	if v, _ := c.Get(a); v != "alpha" {
		t.Fatalf("key a returned %q", v)
	}
	if v, _ := c.Get(b); v != "beta" {
		t.Fatalf("key b returned %q", v)
	}
}

func TestCache_ConcurrentCallersShareOneCompute(t *testing.T) {
	c := NewCache[int]()
	k := Key{Subject: "Go", Kind: KindQuiz}

	var calls atomic.Int64
	compute := func() (int, bool) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return 42, true
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.GetOrCompute(k, compute); got != 42 {
				t.Errorf("unexpected value: %d", got)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("expected a single in-flight compute, got %d", calls.Load())
	}
}

func TestCache_UnstoredResultIsRecomputed(t *testing.T) {
	c := NewCache[string]()
	k := Key{Subject: "Go", Kind: KindQuiz}

	var calls int
	compute := func() (string, bool) {
		calls++
		if calls == 1 {
			return "stopgap", false
		}
		return "real", true
	}

	if got := c.GetOrCompute(k, compute); got != "stopgap" {
		t.Fatalf("first call returned %q", got)
	}
	if c.Len() != 0 {
		t.Fatalf("unstored result must not be retained, got %d entries", c.Len())
	}
	if got := c.GetOrCompute(k, compute); got != "real" {
		t.Fatalf("second call returned %q", got)
	}
	if got := c.GetOrCompute(k, compute); got != "real" {
		t.Fatalf("stored result not served: %q", got)
	}
	if calls != 2 {
		t.Fatalf("expected 2 computes, got %d", calls)
	}
}

func TestCache_InvalidateForcesRecompute(t *testing.T) {
	c := NewCache[int]()
	k := Key{Subject: "Go", Kind: KindCurriculum}

	var calls int
	compute := func() (int, bool) { calls++; return calls, true }

	c.GetOrCompute(k, compute)
	c.Invalidate(k)
	if got := c.GetOrCompute(k, compute); got != 2 {
		t.Fatalf("expected recompute after invalidation, got %d", got)
	}
}
