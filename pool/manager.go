// File: pool/manager.go
// Package pool implements size-classed buffer pooling with lock-free
// freelists behind the api.BufferPool capability.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/momentics/hioload-buf/api"
)

// Predefined (power-of-two) buffer size classes (bytes).
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	2 * 1024,        // 2K
	4 * 1024,        // 4K
	8 * 1024,        // 8K
	16 * 1024,       // 16K
	32 * 1024,       // 32K
	64 * 1024,       // 64K
	128 * 1024,      // 128K
	256 * 1024,      // 256K
	512 * 1024,      // 512K
	1 * 1024 * 1024, // 1M
}

// sizeClassUpperBound returns the smallest class >= size, or 0 when size
// exceeds the largest class.
func sizeClassUpperBound(size int) int {
	for _, c := range sizeClasses {
		if size <= c {
			return c
		}
	}
	return 0
}

const (
	defaultRingCapacity     = 1024
	defaultOverflowCapacity = 4096
	defaultPageThreshold    = 64 * 1024
)

// Manager routes leases to per-class slab pools, created lazily on first
// use. It implements api.BufferPool and is safe for concurrent use.
//
// Requests above the largest size class are allocated exactly and
// released on Return rather than cached.
type Manager struct {
	mu    sync.RWMutex
	class map[int]*slabPool

	heap Allocator
	page Allocator // nil when unavailable or disabled

	ringCap       int
	overflowCap   int
	pageThreshold int
	log           *zap.Logger

	oversizeLeases  atomic.Int64
	oversizeReturns atomic.Int64
}

// NewManager initializes a Manager. Page-backed allocation is probed once
// here; when the probe fails the Manager quietly serves everything from
// the heap.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		class:         make(map[int]*slabPool),
		heap:          heapAllocator{},
		ringCap:       defaultRingCapacity,
		overflowCap:   defaultOverflowCapacity,
		pageThreshold: defaultPageThreshold,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.pageThreshold > 0 {
		m.page = probePageAllocator(m.log)
	}
	return m
}

// probePageAllocator verifies the platform allocator actually works
// before committing any size class to it.
func probePageAllocator(log *zap.Logger) Allocator {
	pa := newPageAllocator()
	if pa == nil {
		return nil
	}
	buf, err := pa.Alloc(defaultPageThreshold)
	if err != nil {
		log.Debug("page allocator unavailable, using heap", zap.Error(err))
		return nil
	}
	if err := pa.Free(buf); err != nil {
		log.Debug("page allocator unavailable, using heap", zap.Error(err))
		return nil
	}
	return pa
}

// Lease returns a buffer of at least min bytes.
func (m *Manager) Lease(min int) ([]byte, error) {
	if min < 0 {
		min = 0
	}
	class := sizeClassUpperBound(min)
	if class == 0 {
		buf, err := m.heap.Alloc(min)
		if err != nil {
			return nil, err
		}
		m.oversizeLeases.Inc()
		return buf, nil
	}
	return m.getOrCreatePool(class).Lease(min)
}

// Return routes buf back to its slab by length. Buffers this Manager
// hands out always have exactly a class length; anything else is oversize
// or foreign and is released outright.
func (m *Manager) Return(buf []byte) {
	if len(buf) == 0 {
		return
	}
	class := sizeClassUpperBound(len(buf))
	if class != len(buf) {
		m.oversizeReturns.Inc()
		if err := m.heap.Free(buf); err != nil {
			m.log.Debug("oversize release failed", zap.Error(err))
		}
		return
	}
	m.getOrCreatePool(class).Return(buf)
}

// getOrCreatePool returns the slab for a class, lazily allocating on
// first use.
func (m *Manager) getOrCreatePool(class int) *slabPool {
	m.mu.RLock()
	sp, ok := m.class[class]
	m.mu.RUnlock()
	if ok {
		return sp
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if sp, ok = m.class[class]; ok {
		return sp
	}
	alloc := m.heap
	if m.page != nil && class >= m.pageThreshold {
		alloc = m.page
	}
	sp = newSlabPool(class, alloc, m.ringCap, m.overflowCap, m.log)
	m.class[class] = sp
	m.log.Debug("slab created",
		zap.Int("class", class),
		zap.Bool("page_backed", alloc == m.page))
	return sp
}

// Stats aggregates accounting across every slab plus oversize traffic.
func (m *Manager) Stats() api.BufferPoolStats {
	stats := api.BufferPoolStats{
		Leases:  m.oversizeLeases.Load(),
		Returns: m.oversizeReturns.Load(),
		Misses:  m.oversizeLeases.Load(),
	}
	m.mu.RLock()
	for _, sp := range m.class {
		s := sp.Stats()
		stats.Leases += s.Leases
		stats.Returns += s.Returns
		stats.Misses += s.Misses
	}
	m.mu.RUnlock()
	stats.InUse = stats.Leases - stats.Returns
	return stats
}

// Close drains every slab freelist and releases retained storage. Leased
// buffers still in flight stay valid; returning them afterwards simply
// repopulates the freelists.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var err error
	for _, sp := range m.class {
		err = multierr.Append(err, sp.close())
	}
	return err
}

var _ api.BufferPool = (*Manager)(nil)
