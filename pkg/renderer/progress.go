package renderer

import "sync"

// ProgressFunc receives the number of completed rows and the total row count
type ProgressFunc func(completed, total int)

// Progress counts completed rows across all workers
type Progress struct {
	mu        sync.Mutex
	completed int
	total     int
	callback  ProgressFunc
}

// NewProgress creates a counter for total rows. callback may be nil.
func NewProgress(total int, callback ProgressFunc) *Progress {
	return &Progress{total: total, callback: callback}
}

// RowDone records one finished row and reports the new count.
// The callback runs under the lock, so reports arrive in increasing order.
func (p *Progress) RowDone() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	if p.callback != nil {
		p.callback(p.completed, p.total)
	}
}

// Completed returns the number of rows finished so far
func (p *Progress) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}
