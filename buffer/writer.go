// File: buffer/writer.go
// Package buffer
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Append-only write cursor over pool-leased storage that grows on demand.
// Growth leases a replacement from the pool and retires the old storage,
// so a writer causes at most one replacement per growth event.

package buffer

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-buf/api"
)

// Writer accumulates bytes into a growable buffer with amortized O(1)
// append cost. A Writer is single-goroutine; it owns its current storage
// exclusively until Finalize transfers it away.
//
// Invariant: 0 <= pos <= written <= len(buf). written is the high-water
// mark of pos, i.e. bytes touched so far rather than the current cursor.
type Writer struct {
	pool      api.BufferPool
	buf       []byte
	pos       int
	written   int
	poolOwned bool
	consumed  bool
}

// NewWriter leases storage of at least initialCap bytes from pool.
func NewWriter(pool api.BufferPool, initialCap int) (*Writer, error) {
	buf, err := pool.Lease(initialCap)
	if err != nil {
		return nil, errors.Wrap(err, "lease initial buffer")
	}
	return &Writer{pool: pool, buf: buf, poolOwned: true}, nil
}

// WrapWriter wraps caller-supplied storage. The writer never returns that
// storage to pool; pool is used only for growth and for the copy Finalize
// makes when handing off bytes it does not own.
func WrapWriter(pool api.BufferPool, storage []byte) *Writer {
	return &Writer{pool: pool, buf: storage}
}

// Written reports the number of bytes appended so far.
func (w *Writer) Written() int { return w.written }

// Cap reports the current storage capacity.
func (w *Writer) Cap() int { return len(w.buf) }

// WriteByte appends a single byte, growing storage if needed.
func (w *Writer) WriteByte(b byte) error {
	if err := w.ensure(1); err != nil {
		return err
	}
	w.buf[w.pos] = b
	w.pos++
	if w.pos > w.written {
		w.written = w.pos
	}
	return nil
}

// Write appends a run of bytes, growing storage at most once.
func (w *Writer) Write(p []byte) error {
	if w.consumed {
		return ErrWriterConsumed
	}
	if len(p) == 0 {
		return nil
	}
	if err := w.ensure(len(p)); err != nil {
		return err
	}
	copy(w.buf[w.pos:], p)
	w.pos += len(p)
	if w.pos > w.written {
		w.written = w.pos
	}
	return nil
}

// ensure makes room for additional bytes past the cursor.
//
// The boundary is deliberately strict: growth triggers when pos+additional
// reaches capacity, one write earlier than a <= check would. New capacity is
// max(written+additional, 2*cap), so a single oversized run never
// under-allocates while steady appends double geometrically.
func (w *Writer) ensure(additional int) error {
	if w.consumed {
		return ErrWriterConsumed
	}
	if w.pos+additional < len(w.buf) {
		return nil
	}
	next := w.written + additional
	if doubled := 2 * len(w.buf); doubled > next {
		next = doubled
	}
	grown, err := w.pool.Lease(next)
	if err != nil {
		return errors.Wrap(err, "lease grown buffer")
	}
	copy(grown, w.buf[:w.written])
	if w.poolOwned && len(w.buf) > 0 {
		w.pool.Return(w.buf)
	}
	w.buf = grown
	w.poolOwned = true
	return nil
}

// Finalize consumes the writer and transfers its written bytes into an
// Owned view:
//
//   - nothing written: any leased storage goes straight back to the pool
//     and the view is empty;
//   - pool-owned storage: the handle moves into the view with no copy;
//   - wrapped storage: the written prefix is copied into a fresh lease,
//     since the writer has no right to hand foreign storage to the pool.
//
// The writer is invalidated either way; further calls fail with
// ErrWriterConsumed.
func (w *Writer) Finalize() (*Owned, error) {
	if w.consumed {
		return nil, ErrWriterConsumed
	}
	w.consumed = true

	buf, written, poolOwned := w.buf, w.written, w.poolOwned
	w.buf = nil
	w.pos = 0
	w.written = 0
	w.poolOwned = false

	if written == 0 {
		if poolOwned && len(buf) > 0 {
			w.pool.Return(buf)
		}
		return &Owned{}, nil
	}
	if poolOwned {
		return &Owned{pool: w.pool, buf: buf, length: written}, nil
	}
	fresh, err := w.pool.Lease(written)
	if err != nil {
		return nil, errors.Wrap(err, "lease finalize copy")
	}
	copy(fresh, buf[:written])
	return &Owned{pool: w.pool, buf: fresh, length: written}, nil
}
