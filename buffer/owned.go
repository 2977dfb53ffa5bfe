// File: buffer/owned.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Finalized byte sequence with transfer-once, release-once semantics.

package buffer

import "github.com/momentics/hioload-buf/api"

// Owned is an immutable, length-bounded view over pool-leased storage.
// At most one Owned is ever backed by a given lease; Release hands the
// storage back to the pool exactly once. The zero value is an empty view
// that owns nothing.
type Owned struct {
	pool   api.BufferPool
	buf    []byte
	length int
}

// Bytes returns the view's contents. Spare capacity beyond the logical
// length is never exposed, even after the producing writer grew.
func (o *Owned) Bytes() []byte {
	if o.buf == nil {
		return nil
	}
	return o.buf[:o.length]
}

// Len reports the view's logical length.
func (o *Owned) Len() int { return o.length }

// Release returns the underlying storage to its pool. Idempotent: the
// first call on a non-empty view returns the lease, every call clears the
// view, and repeat calls are no-ops. After Release the view must not be
// read.
func (o *Owned) Release() {
	if o.buf != nil && o.length > 0 {
		o.pool.Return(o.buf)
	}
	o.pool = nil
	o.buf = nil
	o.length = 0
}
