package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithUpdateInterval sets how often Tick reports statistics.
// Non-positive intervals report on every tick.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - ProfilerBuilderOption: option function to configure the profiler
func WithUpdateInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.updateInterval = max(interval, 0)
	}
}
