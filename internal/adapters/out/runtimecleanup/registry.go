// Package runtimecleanup implements ports.CleanupRegistry on top of runtime.AddCleanup.
//
// The registry never keeps a reference to a registered holder. The cleanup
// function only receives the holder's ID, which is what lets the garbage
// collector reclaim the holder and then run the cleanup.
package runtimecleanup

import (
	"log/slog"
	"runtime"
	"sync/atomic"

	"valueguard/internal/core/domain/model/holder"
	"valueguard/internal/core/domain/model/kernel"
)

// Registry attaches a release callback to every registered holder.
type Registry struct {
	logger    *slog.Logger
	onRelease func(kernel.UUID)

	registered atomic.Int64
	released   atomic.Int64
}

// Option configures a Registry.
type Option func(*Registry)

// WithOnRelease sets a callback invoked, on the runtime's cleanup goroutine,
// with the ID of each holder after it has been reclaimed.
func WithOnRelease(fn func(kernel.UUID)) Option {
	return func(r *Registry) {
		r.onRelease = fn
	}
}

// NewRegistry creates a Registry that logs releases at debug level.
func NewRegistry(logger *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		logger: logger.With("component", "runtime_cleanup_registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register attaches the release callback to h. Holders that fail Validate are
// refused and nothing is attached.
func (r *Registry) Register(h *holder.Holder) error {
	if err := h.Validate(); err != nil {
		return err
	}

	runtime.AddCleanup(h, r.release, h.ID())
	r.registered.Add(1)
	return nil
}

// Registered returns how many holders have been accepted so far.
func (r *Registry) Registered() int64 {
	return r.registered.Load()
}

// Released returns how many registered holders have been reclaimed so far.
func (r *Registry) Released() int64 {
	return r.released.Load()
}

func (r *Registry) release(id kernel.UUID) {
	r.released.Add(1)
	r.logger.Debug("holder released", "holder_id", id.String())
	if r.onRelease != nil {
		r.onRelease(id)
	}
}
