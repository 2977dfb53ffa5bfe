// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Size-classed, lock-free buffer pooling behind the api.BufferPool
// capability. A Manager routes leases to per-class slab pools; each slab
// keeps a bounded lock-free freelist with a FIFO overflow so returned
// buffers are reused rather than dropped. Large classes can be backed by
// anonymous page mappings where the platform supports it.
package pool
