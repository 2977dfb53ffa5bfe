//go:build linux
// +build linux

// File: pool/alloc_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux page-backed allocator using anonymous private mappings. Mapped
// storage lives outside the Go heap, so large long-lived slabs do not
// inflate GC scan time.

package pool

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// pageAllocator allocates whole anonymous mappings per buffer.
type pageAllocator struct{}

// newPageAllocator returns the platform page allocator, or nil when the
// platform has none.
func newPageAllocator() Allocator {
	return pageAllocator{}
}

func (pageAllocator) Alloc(size int) ([]byte, error) {
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %d bytes", size)
	}
	return buf, nil
}

func (pageAllocator) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return errors.Wrap(unix.Munmap(buf), "munmap")
}
