// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api defines the capability contracts shared across hioload-buf.
// Implementations live in pool; consumers live in buffer.
package api
