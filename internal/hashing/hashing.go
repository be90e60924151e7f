// Package hashing provides Zobrist keys for positions and duplicate detection.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// maxDepthKeys bounds the depths DepthKey distinguishes.
const maxDepthKeys = 64

// zobristSeed fixes the key table so keys are stable between runs.
const zobristSeed = 0x5eed_c4e55

type zobristTable struct {
	pieces [chess.NumColours][chess.NumKinds][chess.NumSquares]uint64
	moved  [chess.NumSquares]uint64 // Pawns that have moved
	side   uint64                   // Black to move
	depth  [maxDepthKeys]uint64
}

var zobrist = newZobristTable(zobristSeed)

func newZobristTable(seed int64) *zobristTable {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: keys need not be cryptographic
	t := &zobristTable{}
	for c := range t.pieces {
		for k := range t.pieces[c] {
			for sq := range t.pieces[c][k] {
				t.pieces[c][k][sq] = r.Uint64()
			}
		}
	}
	for sq := range t.moved {
		t.moved[sq] = r.Uint64()
	}
	t.side = r.Uint64()
	for d := range t.depth {
		t.depth[d] = r.Uint64()
	}
	return t
}

// Key returns the Zobrist key of the board with toMove on move. A pawn's
// has-moved flag is part of the key since it decides the double step.
func Key(board *chess.Board, toMove chess.Colour) uint64 {
	var key uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		id := board.Occupant(sq)
		if id == chess.NoPiece {
			continue
		}
		p := board.Piece(id)
		key ^= zobrist.pieces[p.Colour][p.Kind][sq]
		if p.Kind == chess.Pawn && p.Moved {
			key ^= zobrist.moved[sq]
		}
	}
	if toMove == chess.Black {
		key ^= zobrist.side
	}
	return key
}

// DepthKey returns a key to combine with Key when the same position must
// be told apart by the depth still to search.
func DepthKey(depth int) uint64 {
	if depth < 0 {
		depth = 0
	}
	return zobrist.depth[depth%maxDepthKeys]
}

// Detector tracks seen keys.
type Detector struct {
	// seen stores keys already added
	seen map[uint64]struct{}
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits entries (0 = unlimited)
	maxCapacity int
}

// NewDetector creates a detector. maxCapacity of 0 means unlimited capacity.
func NewDetector(maxCapacity int) *Detector {
	return &Detector{
		seen:        make(map[uint64]struct{}),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if key was seen before and adds it otherwise.
// Returns true if key is a duplicate. A full detector stops adding keys.
func (d *Detector) CheckAndAdd(key uint64) bool {
	if _, ok := d.seen[key]; ok {
		d.duplicateCount++
		return true
	}
	if !d.IsFull() {
		d.seen[key] = struct{}{}
	}
	return false
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *Detector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.seen) >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *Detector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of keys stored.
func (d *Detector) UniqueCount() int {
	return len(d.seen)
}

// Reset clears the detector.
func (d *Detector) Reset() {
	d.seen = make(map[uint64]struct{})
	d.duplicateCount = 0
}
