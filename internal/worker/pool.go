// Package worker provides a worker pool for checking positions in parallel.
package worker

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// WorkItem represents a position to be processed.
type WorkItem struct {
	FEN   string
	Index int // Original index for tracking
}

// ProcessResult represents the result of processing a position.
type ProcessResult struct {
	FEN     string
	Index   int
	Passed  bool        // The position passed every check
	Payload interface{} // Opaque report; typed by consumer
	Error   error
}

// ProcessFunc is the function signature for processing a work item.
// Each call must build its own position; nothing is shared between items.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel position processing.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	logger      *zap.Logger
	stopOnFail  bool
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
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

// WithLogger sets the logger used for recovered panics.
func WithLogger(logger *zap.Logger) PoolOption {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStopOnFailure makes Run stop the pool after the first result that
// did not pass. Positions not yet started are dropped.
func WithStopOnFailure(stop bool) PoolOption {
	return func(p *Pool) {
		p.stopOnFail = stop
	}
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.process(item)
	}
}

// process runs processFunc, turning an engine panic into a failed result
// so one broken position does not take down the batch.
func (p *Pool) process(item WorkItem) (result ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v: %w", r, errors.ErrInvariantViolation)
			}
			p.logger.Error("position check panicked",
				zap.Int("index", item.Index),
				zap.String("fen", item.FEN),
				zap.Error(err),
			)
			result = ProcessResult{FEN: item.FEN, Index: item.Index, Error: err}
		}
	}()
	return p.processFunc(item)
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, feeds it every FEN and returns the results in
// input order. A stopped pool returns only the positions it checked. The
// pool cannot be reused afterwards.
func (p *Pool) Run(fens []string) []ProcessResult {
	p.Start()
	go func() {
		for i, fen := range fens {
			if p.IsStopped() {
				break
			}
			p.Submit(WorkItem{FEN: fen, Index: i})
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(fens))
	for r := range p.Results() {
		results = append(results, r)
		if p.stopOnFail && !r.Passed && !p.IsStopped() {
			p.logger.Info("stopping after failed position",
				zap.Int("index", r.Index),
				zap.String("fen", r.FEN),
			)
			p.Stop()
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
