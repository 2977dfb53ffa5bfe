// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-buf/buffer"
)

func TestOwned_ReleaseIdempotent(t *testing.T) {
	p := &trackingPool{}
	w, err := buffer.NewWriter(p, 4)
	require.NoError(t, err)
	require.NoError(t, w.Write([]byte{1, 2, 3}))

	owned, err := w.Finalize()
	require.NoError(t, err)

	owned.Release()
	require.Equal(t, 1, p.returns)
	require.Equal(t, 0, owned.Len())
	require.Nil(t, owned.Bytes())

	// A second release is a safe no-op.
	owned.Release()
	require.Equal(t, 1, p.returns)
}

func TestOwned_BytesBounded(t *testing.T) {
	p := &trackingPool{}
	w, err := buffer.NewWriter(p, 2)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, w.WriteByte(byte(i + 1)))
	}

	owned, err := w.Finalize()
	require.NoError(t, err)
	defer owned.Release()

	// The underlying lease grew to 8 bytes; the view exposes exactly the
	// written 5.
	require.Equal(t, 5, owned.Len())
	require.Len(t, owned.Bytes(), 5)
	require.Equal(t, []byte{1, 2, 3, 4, 5}, owned.Bytes())
}

func TestOwned_ZeroValue(t *testing.T) {
	var owned buffer.Owned
	require.Equal(t, 0, owned.Len())
	require.Nil(t, owned.Bytes())
	owned.Release() // no-op
}
