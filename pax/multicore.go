package pax

import "github.com/paxgfx/pax/internal/mcr"

// EnableMulticore turns on multicore rasterization with the given worker
// count (0 uses the number of logical CPUs), lazily starting the
// scheduler's worker pool (spec.md §4.10).
func (b *Buffer) EnableMulticore(workers int) {
	if b.mc != nil {
		b.mc.Join()
	}
	b.mc = mcr.NewScheduler(workers)
	b.Config.MulticoreEnabled = true
}

// DisableMulticore joins any in-flight rasterization and reverts to
// single-core drawing.
func (b *Buffer) DisableMulticore() {
	if b.mc != nil {
		b.mc.Join()
	}
	b.Config.MulticoreEnabled = false
}

// Multicore reports whether multicore rasterization is currently active.
func (b *Buffer) Multicore() bool { return b.Config.MulticoreEnabled && b.mc != nil }

// joinIfMulticore blocks until any in-flight multicore rasterization
// finishes. Every operation that isn't safe to run concurrently with a
// scanline-parity-split draw call — background fill, scroll, format or
// palette mutation, destroy — calls this first (spec.md §4.10).
func (b *Buffer) joinIfMulticore() {
	if b.mc != nil {
		b.mc.Join()
	}
}

// scheduler returns the buffer's multicore scheduler, or nil if
// multicore is not enabled. internal/raster kernels use this to decide
// whether to split work across the worker pool.
func (b *Buffer) scheduler() *mcr.Scheduler {
	if !b.Config.MulticoreEnabled {
		return nil
	}
	return b.mc
}
