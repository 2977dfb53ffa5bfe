// File: buffer/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the buffer module.

package buffer

import "errors"

var (
	// ErrOutOfRange indicates a read past the end of the bounded sequence.
	// The caller should stop reading; the reader itself stays usable and
	// keeps failing the same way.
	ErrOutOfRange = errors.New("read position out of range")

	// ErrWriterConsumed indicates use of a writer after Finalize has
	// transferred its storage away.
	ErrWriterConsumed = errors.New("writer already finalized")
)
