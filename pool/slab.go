// File: pool/slab.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-size slab pool for one size class. Every buffer it hands out has
// exactly the class length, which is what lets the Manager route returns
// by slice length alone.

package pool

import (
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/momentics/hioload-buf/api"
)

type slabPool struct {
	class int
	alloc Allocator
	free  *freelist
	log   *zap.Logger

	leases  atomic.Int64
	returns atomic.Int64
	misses  atomic.Int64
}

func newSlabPool(class int, alloc Allocator, ringCap, overflowCap int, log *zap.Logger) *slabPool {
	return &slabPool{
		class: class,
		alloc: alloc,
		free:  newFreelist(ringCap, overflowCap),
		log:   log,
	}
}

// Lease returns a buffer of the slab's class length. min must not exceed
// the class; the Manager guarantees that when routing.
func (sp *slabPool) Lease(min int) ([]byte, error) {
	if buf, ok := sp.free.get(); ok {
		sp.leases.Inc()
		return buf, nil
	}
	buf, err := sp.alloc.Alloc(sp.class)
	if err != nil {
		return nil, err
	}
	sp.leases.Inc()
	sp.misses.Inc()
	return buf, nil
}

// Return retains buf for reuse, or releases it to the allocator when the
// freelist is saturated.
func (sp *slabPool) Return(buf []byte) {
	sp.returns.Inc()
	if sp.free.put(buf) {
		return
	}
	if err := sp.alloc.Free(buf); err != nil {
		sp.log.Debug("slab release failed",
			zap.Int("class", sp.class), zap.Error(err))
	}
}

func (sp *slabPool) Stats() api.BufferPoolStats {
	leases := sp.leases.Load()
	returns := sp.returns.Load()
	return api.BufferPoolStats{
		Leases:  leases,
		Returns: returns,
		Misses:  sp.misses.Load(),
		InUse:   leases - returns,
	}
}

// close drains the freelist and releases every retained buffer.
func (sp *slabPool) close() error {
	var err error
	for _, buf := range sp.free.drain() {
		err = multierr.Append(err, sp.alloc.Free(buf))
	}
	return err
}

var _ api.BufferPool = (*slabPool)(nil)
