// File: pool/freelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer freelist: a bounded lock-free ring on the hot path, backed by a
// mutex-guarded FIFO so bursts of returns are retained instead of freed.
// The ring follows Dmitry Vyukov's bounded MPMC queue with per-cell
// sequence numbers.

package pool

import (
	"sync"

	"github.com/eapache/queue"
	"go.uber.org/atomic"
)

const cacheLinePad = 64

type ringCell struct {
	sequence atomic.Uint64
	buf      []byte
}

// bufRing is a bounded MPMC ring of byte slices. Capacity is rounded up
// to a power of two.
type bufRing struct {
	head  atomic.Uint64
	_     [cacheLinePad]byte
	tail  atomic.Uint64
	_     [cacheLinePad]byte
	mask  uint64
	cells []ringCell
}

func newBufRing(capacity int) *bufRing {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	r := &bufRing{
		mask:  uint64(size - 1),
		cells: make([]ringCell, size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// push adds buf; returns false when the ring is full.
func (r *bufRing) push(buf []byte) bool {
	for {
		tail := r.tail.Load()
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		switch {
		case dif == 0:
			if r.tail.CompareAndSwap(tail, tail+1) {
				c.buf = buf
				c.sequence.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false // full
		default:
			// tail moved, retry
		}
	}
}

// pop removes the oldest buffer; ok is false when the ring is empty.
func (r *bufRing) pop() ([]byte, bool) {
	for {
		head := r.head.Load()
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		switch {
		case dif == 0:
			if r.head.CompareAndSwap(head, head+1) {
				buf := c.buf
				c.buf = nil
				c.sequence.Store(head + r.mask + 1)
				return buf, true
			}
		case dif < 0:
			return nil, false // empty
		default:
			// head moved, retry
		}
	}
}

// freelist retains returned buffers for reuse. Puts land in the ring
// first; when it is full they spill into the overflow FIFO up to its cap.
type freelist struct {
	ring *bufRing

	mu      sync.Mutex
	over    *queue.Queue
	overCap int
}

func newFreelist(ringCap, overflowCap int) *freelist {
	return &freelist{
		ring:    newBufRing(ringCap),
		over:    queue.New(),
		overCap: overflowCap,
	}
}

// put retains buf for reuse; false means the caller keeps responsibility
// for releasing it.
func (f *freelist) put(buf []byte) bool {
	if f.ring.push(buf) {
		return true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.over.Length() >= f.overCap {
		return false
	}
	f.over.Add(buf)
	return true
}

// get pops a retained buffer, preferring the lock-free ring.
func (f *freelist) get() ([]byte, bool) {
	if buf, ok := f.ring.pop(); ok {
		return buf, true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.over.Length() == 0 {
		return nil, false
	}
	return f.over.Remove().([]byte), true
}

// drain empties the freelist and hands every retained buffer back.
func (f *freelist) drain() [][]byte {
	var bufs [][]byte
	for {
		buf, ok := f.ring.pop()
		if !ok {
			break
		}
		bufs = append(bufs, buf)
	}
	f.mu.Lock()
	for f.over.Length() > 0 {
		bufs = append(bufs, f.over.Remove().([]byte))
	}
	f.mu.Unlock()
	return bufs
}
