// Package pool tests size-class routing and buffer reuse.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManager_SizeClassUpperBound(t *testing.T) {
	require.Equal(t, 2048, sizeClassUpperBound(0))
	require.Equal(t, 2048, sizeClassUpperBound(100))
	require.Equal(t, 2048, sizeClassUpperBound(2048))
	require.Equal(t, 4096, sizeClassUpperBound(2049))
	require.Equal(t, 1024*1024, sizeClassUpperBound(1024*1024))
	// Past the largest class: no class.
	require.Equal(t, 0, sizeClassUpperBound(1024*1024+1))
}

func TestManager_LeaseReturnReuse(t *testing.T) {
	m := NewManager()
	defer m.Close()

	b1, err := m.Lease(100)
	require.NoError(t, err)
	require.Equal(t, 2048, len(b1))
	m.Return(b1)

	// A second lease within the class reuses the returned buffer.
	b2, err := m.Lease(2000)
	require.NoError(t, err)
	require.Equal(t, 2048, len(b2))

	stats := m.Stats()
	require.EqualValues(t, 2, stats.Leases)
	require.EqualValues(t, 1, stats.Returns)
	require.EqualValues(t, 1, stats.Misses)
	require.EqualValues(t, 1, stats.InUse)
}

func TestManager_Oversize(t *testing.T) {
	m := NewManager()
	defer m.Close()

	const huge = 2 * 1024 * 1024
	buf, err := m.Lease(huge)
	require.NoError(t, err)
	require.Equal(t, huge, len(buf))
	m.Return(buf)

	stats := m.Stats()
	require.EqualValues(t, 1, stats.Leases)
	require.EqualValues(t, 1, stats.Returns)
	require.EqualValues(t, 0, stats.InUse)
}

func TestManager_PageBackedClass(t *testing.T) {
	m := NewManager(WithPageThreshold(64 * 1024))
	defer m.Close()

	buf, err := m.Lease(64 * 1024)
	require.NoError(t, err)
	require.Equal(t, 64*1024, len(buf))
	// Mapped or heap storage is equally writable.
	buf[0] = 0xAA
	buf[len(buf)-1] = 0xBB
	m.Return(buf)
}

func TestManager_PageAllocDisabled(t *testing.T) {
	m := NewManager(WithPageThreshold(0))
	defer m.Close()
	require.Nil(t, m.page)

	buf, err := m.Lease(128 * 1024)
	require.NoError(t, err)
	m.Return(buf)
}

func TestManager_ConcurrentLeaseReturn(t *testing.T) {
	m := NewManager()
	defer m.Close()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				buf, err := m.Lease(4096)
				if err != nil {
					t.Error(err)
					return
				}
				buf[0] = byte(i)
				m.Return(buf)
			}
		}()
	}
	wg.Wait()

	stats := m.Stats()
	require.EqualValues(t, 8*500, stats.Leases)
	require.EqualValues(t, 8*500, stats.Returns)
	require.EqualValues(t, 0, stats.InUse)
}

func TestManager_CloseDrainsFreelists(t *testing.T) {
	m := NewManager()
	buf, err := m.Lease(8 * 1024)
	require.NoError(t, err)
	m.Return(buf)
	require.NoError(t, m.Close())
}

func TestDefault_SharedInstance(t *testing.T) {
	require.Same(t, Default(), Default())
}
