package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowRange is a half-open span of image rows [Start, End) rendered by one worker
type RowRange struct {
	Start int
	End   int
}

// Rows returns the number of rows in the range
func (r RowRange) Rows() int {
	return r.End - r.Start
}

// PartitionRows splits height rows into at most workers contiguous ranges.
// Ranges differ in size by at most one row, larger ranges first.
func PartitionRows(height, workers int) []RowRange {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > height {
		workers = height
	}
	if workers <= 0 {
		return nil
	}

	base := height / workers
	extra := height % workers

	ranges := make([]RowRange, workers)
	start := 0
	for i := range ranges {
		rows := base
		if i < extra {
			rows++
		}
		ranges[i] = RowRange{Start: start, End: start + rows}
		start += rows
	}
	return ranges
}

// runWorkers calls work once per range, each on its own goroutine, and waits for all of them.
// The first error returned by any worker is reported after every worker has finished.
func runWorkers(ranges []RowRange, work func(index int, rows RowRange) error) error {
	var g errgroup.Group
	for i, rows := range ranges {
		i, rows := i, rows
		g.Go(func() error {
			return work(i, rows)
		})
	}
	return g.Wait()
}
