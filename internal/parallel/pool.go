// Package parallel provides the bounded fan-out used to evaluate views on
// several goroutines.
//
// Work is always a flat index range [0, n) split into contiguous chunks.
// Every call is scoped: all goroutines it starts have returned before it
// does, and none of them outlives the call.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers normalizes a requested worker count.
// If workers is 0 or negative, GOMAXPROCS is used.
func Workers(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// ChunkSize returns ceil(n / workers), the length of every chunk but the
// last. It is at least 1.
func ChunkSize(n, workers int) int {
	workers = Workers(workers)
	return max(1, (n+workers-1)/workers)
}

// Range is a half-open index range [Start, End).
type Range struct {
	Start, End int
}

// Len returns End-Start.
func (r Range) Len() int { return r.End - r.Start }

// Chunks splits [0, n) into contiguous ranges of ChunkSize(n, workers).
// The ranges are disjoint, in order, and cover [0, n) exactly.
// When n is not a multiple of the chunk size the last range is shorter,
// and fewer than workers ranges may be returned.
func Chunks(n, workers int) []Range {
	if n <= 0 {
		return nil
	}
	size := ChunkSize(n, workers)
	chunks := make([]Range, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		chunks = append(chunks, Range{Start: start, End: min(start+size, n)})
	}
	return chunks
}

// For calls fn once per chunk of [0, n), each on its own goroutine, and
// waits for all of them.
//
// Each fn owns its range exclusively, so writes to disjoint slots of a
// shared slice need no further synchronization. The first non-nil error is
// returned after every goroutine has finished.
//
// With a single chunk fn runs on the calling goroutine.
func For(n, workers int, fn func(start, end int) error) error {
	chunks := Chunks(n, workers)
	if len(chunks) == 1 {
		return fn(chunks[0].Start, chunks[0].End)
	}

	var g errgroup.Group
	for _, c := range chunks {
		g.Go(func() error {
			return fn(c.Start, c.End)
		})
	}
	return g.Wait()
}
