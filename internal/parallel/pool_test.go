package parallel

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

// =============================================================================
// Chunking Tests
// =============================================================================

func TestWorkers(t *testing.T) {
	if got := Workers(4); got != 4 {
		t.Errorf("Workers(4) = %d, want 4", got)
	}
	expected := runtime.GOMAXPROCS(0)
	for _, w := range []int{0, -5} {
		if got := Workers(w); got != expected {
			t.Errorf("Workers(%d) = %d, want %d (GOMAXPROCS)", w, got, expected)
		}
	}
}

func TestChunkSize(t *testing.T) {
	tests := []struct {
		n, workers, want int
	}{
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{100, 4, 25},
		{101, 4, 26},
		{3367, 8, 421},
		{10, 1, 10},
	}
	for _, tt := range tests {
		if got := ChunkSize(tt.n, tt.workers); got != tt.want {
			t.Errorf("ChunkSize(%d, %d) = %d, want %d", tt.n, tt.workers, got, tt.want)
		}
	}
}

func TestChunksCoverRange(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64, 3367} {
		for _, workers := range []int{1, 2, 3, 8, 100} {
			chunks := Chunks(n, workers)
			if len(chunks) > workers {
				t.Errorf("Chunks(%d, %d) returned %d chunks", n, workers, len(chunks))
			}
			next := 0
			for _, c := range chunks {
				if c.Start != next || c.Len() <= 0 {
					t.Fatalf("Chunks(%d, %d) = %v: gap or empty chunk at %d", n, workers, chunks, next)
				}
				next = c.End
			}
			if next != n {
				t.Errorf("Chunks(%d, %d) ends at %d", n, workers, next)
			}
		}
	}
	if Chunks(0, 4) != nil {
		t.Error("Chunks(0, 4) should be nil")
	}
}

// =============================================================================
// For Tests
// =============================================================================

func TestForVisitsEveryIndexOnce(t *testing.T) {
	const n = 1000
	hits := make([]int32, n)
	err := For(n, 7, func(start, end int) error {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
}

func TestForReturnsError(t *testing.T) {
	errBoom := errors.New("boom")
	var calls atomic.Int32
	err := For(100, 4, func(start, end int) error {
		calls.Add(1)
		if start == 50 {
			return errBoom
		}
		return nil
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("For() error = %v, want %v", err, errBoom)
	}
	if calls.Load() != 4 {
		t.Errorf("For() ran %d chunks, want 4", calls.Load())
	}
}

func TestForSingleChunk(t *testing.T) {
	var got Range
	if err := For(5, 1, func(start, end int) error {
		got = Range{start, end}
		return nil
	}); err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if got != (Range{0, 5}) {
		t.Errorf("For() chunk = %v, want {0 5}", got)
	}
}
