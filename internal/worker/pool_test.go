package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

const kingsOnly = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"

func echo(item WorkItem) ProcessResult {
	return ProcessResult{FEN: item.FEN, Index: item.Index}
}

// perftOne counts the legal moves of each position and records how many
// positions it saw.
func perftOne(seen *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(seen, 1)
		pos, toMove, err := engine.NewPositionFromFEN(item.FEN)
		if err != nil {
			return ProcessResult{FEN: item.FEN, Index: item.Index, Error: err}
		}
		return ProcessResult{
			FEN:     item.FEN,
			Index:   item.Index,
			Passed:  true,
			Payload: engine.Perft(pos, toMove, 1),
		}
	}
}

func repeat(fen string, n int) []string {
	fens := make([]string, n)
	for i := range fens {
		fens[i] = fen
	}
	return fens
}

func TestPoolProcessesEveryPosition(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
		items   int
	}{
		{"single worker", 1, 5, 5},
		{"more items than buffer", 4, 2, 20},
		{"many workers", 8, 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen int32
			pool := NewPool(tt.workers, tt.buffer, perftOne(&seen))

			results := pool.Run(repeat(engine.InitialFEN, tt.items))

			if len(results) != tt.items {
				t.Fatalf("results = %d; want %d", len(results), tt.items)
			}
			if got := atomic.LoadInt32(&seen); got != int32(tt.items) {
				t.Errorf("processed = %d; want %d", got, tt.items)
			}
			for i, r := range results {
				if r.Index != i {
					t.Errorf("results[%d].Index = %d", i, r.Index)
				}
				if n, _ := r.Payload.(uint64); n != 20 {
					t.Errorf("results[%d] perft = %v; want 20", i, r.Payload)
				}
			}
		})
	}
}

func TestPoolSlowPositionsKeepOrder(t *testing.T) {
	pool := NewPool(4, 20, func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return echo(item)
	})

	results := pool.Run(repeat(kingsOnly, 10))
	for i, r := range results {
		if r.Index != i {
			t.Fatalf("results[%d].Index = %d; want input order", i, r.Index)
		}
	}
}

func TestPoolStop(t *testing.T) {
	var checked int32
	pool := NewPool(2, 100, func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&checked, 1)
		return echo(item)
	})
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{FEN: kingsOnly, Index: i})
	}
	if pool.IsStopped() {
		t.Error("pool stopped before Stop()")
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("IsStopped() = false after Stop()")
	}

	go pool.Close()
	for range pool.Results() {
	}

	if n := atomic.LoadInt32(&checked); n >= numItems {
		t.Logf("stop came after every position was checked: %d", n)
	}
}

func TestPoolStopOnFailure(t *testing.T) {
	fens := repeat(kingsOnly, 50)
	fens[0] = "not a fen"

	var checked int32
	pool := NewPoolWithOptions(func(item WorkItem) ProcessResult {
		if item.Index > 0 {
			time.Sleep(5 * time.Millisecond)
		}
		atomic.AddInt32(&checked, 1)
		return perftOne(new(int32))(item)
	}, WithWorkers(1), WithBufferSize(1), WithStopOnFailure(true))

	results := pool.Run(fens)

	if !pool.IsStopped() {
		t.Error("IsStopped() = false after a failed position")
	}
	if len(results) == 0 || results[0].Index != 0 || results[0].Passed {
		t.Fatalf("results[0] = %+v; want the failed position first", results)
	}
	if len(results) >= len(fens) {
		t.Errorf("results = %d; want fewer than %d after stopping", len(results), len(fens))
	}
	if got := atomic.LoadInt32(&checked); int(got) != len(results) {
		t.Errorf("checked %d positions but returned %d results", got, len(results))
	}
}

func TestPoolRunWithoutStopOnFailure(t *testing.T) {
	fens := []string{"not a fen", kingsOnly, kingsOnly}
	pool := NewPoolWithOptions(perftOne(new(int32)), WithWorkers(2))

	results := pool.Run(fens)

	if pool.IsStopped() {
		t.Error("pool stopped without WithStopOnFailure")
	}
	if len(results) != len(fens) {
		t.Errorf("results = %d; want %d", len(results), len(fens))
	}
}

func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"zero workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 10},
		{"negative buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
		{"nil logger ignored", []PoolOption{WithLogger(nil)}, 1, 10},
		{"stop on failure", []PoolOption{WithStopOnFailure(true), WithWorkers(2)}, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(echo, tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
			if pool.logger == nil {
				t.Error("logger is nil")
			}
		})
	}
}

// TestPoolRecoversPanic verifies an engine panic becomes a failed result.
func TestPoolRecoversPanic(t *testing.T) {
	pool := NewPool(2, 4, func(item WorkItem) ProcessResult {
		if item.Index == 1 {
			pos := engine.NewInitialPosition()
			pos.Board().Vacate(chess.MustSquare(4, 7))
			pos.IsInCheck(chess.White)
		}
		if item.Index == 2 {
			panic("not an error")
		}
		return ProcessResult{FEN: item.FEN, Index: item.Index, Passed: true}
	})

	results := pool.Run([]string{kingsOnly, kingsOnly, kingsOnly})
	if len(results) != 3 {
		t.Fatalf("results = %d; want 3", len(results))
	}
	if !results[0].Passed || results[0].Error != nil {
		t.Errorf("result 0 = %+v; want passed", results[0])
	}
	for _, i := range []int{1, 2} {
		if results[i].Passed {
			t.Errorf("result %d passed after a panic", i)
		}
		if !errors.Is(results[i].Error, chesserrors.ErrInvariantViolation) {
			t.Errorf("result %d error = %v; want ErrInvariantViolation", i, results[i].Error)
		}
	}
}

// TestPoolRun checks results come back in input order with real positions.
func TestPoolRun(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		kingsOnly,
		"R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
		"not a fen",
	}
	pool := NewPoolWithOptions(func(item WorkItem) ProcessResult {
		pos, toMove, err := engine.NewPositionFromFEN(item.FEN)
		if err != nil {
			return ProcessResult{FEN: item.FEN, Index: item.Index, Error: err}
		}
		return ProcessResult{
			FEN:     item.FEN,
			Index:   item.Index,
			Passed:  true,
			Payload: engine.Perft(pos, toMove, 1),
		}
	}, WithWorkers(3), WithBufferSize(2))

	results := pool.Run(fens)

	want := []uint64{20, 5, 0}
	for i, n := range want {
		if results[i].Index != i || results[i].FEN != fens[i] {
			t.Errorf("result %d = index %d fen %q", i, results[i].Index, results[i].FEN)
		}
		if got, _ := results[i].Payload.(uint64); got != n {
			t.Errorf("result %d payload = %v; want %d", i, results[i].Payload, n)
		}
	}
	if !errors.Is(results[3].Error, chesserrors.ErrInvalidFEN) {
		t.Errorf("result 3 error = %v; want ErrInvalidFEN", results[3].Error)
	}
}
