// Package buffer
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Build-then-consume byte sequences over pool-leased storage.
//
// A Writer appends into a lease that grows geometrically, Finalize moves
// the written bytes into an Owned view without copying, and a Reader walks
// the view's bytes with bounds checks. None of the three types lock; each
// instance belongs to one goroutine at a time, while the backing
// api.BufferPool is the shared, concurrency-safe collaborator.
package buffer
