// File: pool/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

var (
	defaultOnce sync.Once
	defaultMgr  *Manager
)

// Default returns a process-wide Manager so independent components reuse
// the same slabs instead of fragmenting allocations.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultMgr = NewManager()
	})
	return defaultMgr
}
