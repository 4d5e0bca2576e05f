// Package worker provides a worker pool that searches game positions in
// parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/game"
)

// WorkItem is one subtree to search.
type WorkItem struct {
	Game  *game.Game // position to search from; owned by the worker
	Depth int        // plies left to search
	Index int        // original index for tracking
}

// ProcessResult is the outcome of searching one subtree.
type ProcessResult struct {
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc searches a single work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool runs a fixed number of workers over submitted items.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless options
// say otherwise.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the workers. They stop processing once ctx is done or Stop
// is called, but keep draining submitted items until Close.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		if err := ctx.Err(); err != nil {
			p.resultChan <- ProcessResult{Index: item.Index, Error: err}
			continue
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit queues an item, blocking while the buffer is full.
// It returns false if the pool has been stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	p.workChan <- item
	return true
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close ends submission and waits for the workers; the results channel is
// closed once they are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
