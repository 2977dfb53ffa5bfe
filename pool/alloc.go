// File: pool/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage allocators backing the slab pools. The concrete page-backed
// allocator is selected per platform in separate files; heap allocation
// is the universal fallback.

package pool

// Allocator obtains and releases raw byte storage for a pool.
type Allocator interface {
	// Alloc returns a slice of exactly size bytes.
	Alloc(size int) ([]byte, error)

	// Free releases storage previously obtained from Alloc. The slice must
	// be the one Alloc returned, unsliced.
	Free(buf []byte) error
}

// heapAllocator satisfies allocations from the Go heap and leaves release
// to the garbage collector.
type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (heapAllocator) Free([]byte) error { return nil }
