//go:build !linux
// +build !linux

// File: pool/alloc_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platforms without a page-backed allocator fall back to the heap.

package pool

func newPageAllocator() Allocator { return nil }
