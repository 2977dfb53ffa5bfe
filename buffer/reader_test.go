// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-buf/buffer"
)

func TestReader_Sequential(t *testing.T) {
	r := buffer.NewReader([]byte{0x0A, 0x0B, 0x0C})

	for _, want := range []byte{0x0A, 0x0B, 0x0C} {
		got, err := r.ReadByte()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := r.ReadByte()
	require.ErrorIs(t, err, buffer.ErrOutOfRange)
}

func TestReader_Exhaustion(t *testing.T) {
	const n = 17
	src := make([]byte, n)
	r := buffer.NewReader(src)

	for i := 0; i < n; i++ {
		_, err := r.ReadByte()
		require.NoError(t, err)
	}
	// Exhaustion is not terminal state: every further read fails the
	// same way and the cursor stays at the end.
	for i := 0; i < 3; i++ {
		_, err := r.ReadByte()
		require.ErrorIs(t, err, buffer.ErrOutOfRange)
		require.Equal(t, n, r.Pos())
	}
	require.Equal(t, 0, r.Remaining())
}

func TestReader_Runs(t *testing.T) {
	r := buffer.NewReader([]byte{1, 2, 3, 4, 5})

	run, err := r.Read(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, run)
	require.Equal(t, 2, r.Remaining())

	// A run past the end fails without advancing.
	_, err = r.Read(3)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)
	require.Equal(t, 3, r.Pos())

	run, err = r.Read(2)
	require.NoError(t, err)
	require.Equal(t, []byte{4, 5}, run)

	run, err = r.Read(0)
	require.NoError(t, err)
	require.Empty(t, run)
}

func TestReader_NegativeRun(t *testing.T) {
	r := buffer.NewReader([]byte{1, 2, 3})
	_, err := r.Read(-1)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)
	require.Equal(t, 0, r.Pos())
}

func TestReader_Empty(t *testing.T) {
	r := buffer.NewReader(nil)
	_, err := r.ReadByte()
	require.ErrorIs(t, err, buffer.ErrOutOfRange)
	require.Equal(t, 0, r.Pos())
}
