package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/chaoswatch/internal/dynamo"
	"github.com/san-kum/chaoswatch/internal/raster"
)

// RenderParallel renders the next n frames of s using up to workers
// goroutines. Integration stays sequential, since frame k starts where frame
// k-1 ended; only projection and rasterization of the captured per-frame
// trajectories run concurrently. The result equals n RenderFrame calls.
func RenderParallel(ctx context.Context, s *Simulator, n, workers int) ([]*raster.FrameBuffer, error) {
	if n <= 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make([]frameJob, n)
	for i := range jobs {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w at frame %d: %w", dynamo.ErrContextCanceled, s.frame, ctx.Err())
		default:
		}
		jobs[i] = s.advance()
	}

	frames := make([]*raster.FrameBuffer, n)
	ParallelFor(n, workers, 1, func(start, end int) {
		for i := start; i < end; i++ {
			frames[i] = s.render(jobs[i])
		}
	})
	return frames, nil
}

// ParallelFor executes fn over [0, n) split into contiguous chunks of at
// least minChunk across up to workers goroutines.
func ParallelFor(n, workers, minChunk int, fn func(start, end int)) {
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
