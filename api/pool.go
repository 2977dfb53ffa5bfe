// File: api/pool.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Abstract pooling capability consumed by the buffer layer.
//
// A pool hands out byte storage and takes it back for reuse. Callers must
// return a leased slice exactly once and never return storage the pool did
// not hand out.

package api

// BufferPool leases reusable byte storage.
type BufferPool interface {
	// Lease returns a slice of at least min bytes. A non-nil error means the
	// pool could not satisfy the request; it is fatal to the caller's
	// operation and is never retried by the pool.
	Lease(min int) ([]byte, error)

	// Return gives a leased slice back to the pool. The slice must not be
	// used afterwards. Returning the same slice twice, or a slice not
	// obtained from this pool, is a contract violation.
	Return(buf []byte)

	// Stats exposes lease/return accounting for observability.
	Stats() BufferPoolStats
}

// BufferPoolStats aggregates allocation and reuse counters.
type BufferPoolStats struct {
	// Leases is the total number of Lease calls served.
	Leases int64
	// Returns is the total number of buffers taken back.
	Returns int64
	// Misses counts leases that had to allocate fresh storage.
	Misses int64
	// InUse is Leases minus Returns.
	InUse int64
}
