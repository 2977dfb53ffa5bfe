// File: pool/options.go
// Package pool defines functional options for the Manager.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "go.uber.org/zap"

// Option customizes Manager initialization.
type Option func(*Manager)

// WithRingCapacity sets the per-class lock-free freelist capacity.
func WithRingCapacity(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.ringCap = n
		}
	}
}

// WithOverflowCapacity sets the per-class overflow FIFO capacity. Returns
// past this bound release storage instead of retaining it.
func WithOverflowCapacity(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.overflowCap = n
		}
	}
}

// WithPageThreshold sets the smallest size class backed by page mappings
// on platforms that support them. Zero disables page-backed allocation.
func WithPageThreshold(n int) Option {
	return func(m *Manager) {
		m.pageThreshold = n
	}
}

// WithLogger attaches a diagnostics logger. The default is a no-op
// logger; the pool never logs on the lease/return hot path.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}
