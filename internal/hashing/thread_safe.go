package hashing

import (
	"sync"
)

// ThreadSafeDetector wraps Detector with mutex protection for concurrent access.
type ThreadSafeDetector struct {
	detector *Detector
	mu       sync.RWMutex
}

// NewThreadSafeDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDetector(maxCapacity int) *ThreadSafeDetector {
	return &ThreadSafeDetector{
		detector: NewDetector(maxCapacity),
	}
}

// CheckAndAdd atomically checks if key is a duplicate and adds it otherwise.
func (d *ThreadSafeDetector) CheckAndAdd(key uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(key)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of keys stored.
func (d *ThreadSafeDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *ThreadSafeDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
