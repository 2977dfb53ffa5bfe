// File: buffer/reader.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sequential, bounds-checked read cursor over an immutable byte sequence.

package buffer

// Reader consumes a fixed byte sequence front to back. It borrows the
// sequence for its lifetime and never takes ownership; reading past the
// end fails with ErrOutOfRange and leaves the cursor at the end.
//
// Invariant: 0 <= pos <= len(src).
type Reader struct {
	src []byte
	pos int
}

// NewReader constructs a reader over p. The reader assumes p is not
// mutated for as long as it is in use.
func NewReader(p []byte) *Reader {
	return &Reader{src: p}
}

// ReadByte returns the next byte and advances the cursor.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.src) {
		return 0, ErrOutOfRange
	}
	b := r.src[r.pos]
	r.pos++
	return b, nil
}

// Read returns the next n bytes as a subslice of the source, without
// copying, and advances the cursor. It fails without advancing when fewer
// than n bytes remain.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.src) {
		return nil, ErrOutOfRange
	}
	p := r.src[r.pos : r.pos+n]
	r.pos += n
	return p, nil
}

// Pos reports the current cursor position.
func (r *Reader) Pos() int { return r.pos }

// Remaining reports the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.src) - r.pos }
