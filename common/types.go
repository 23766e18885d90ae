// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// FrameStamp identifies one render/update cycle.
// FrameNumber is monotonically non-decreasing across update calls; a repeated FrameNumber
// means the caller is still inside the same frame.
type FrameStamp struct {
	// FrameNumber is the counter for the current frame.
	FrameNumber uint64

	// SimulationTime is the accumulated simulation time in seconds at this frame.
	SimulationTime float64
}

// Next returns the stamp for the frame following f, advanced by deltaTime seconds.
//
// Parameters:
//   - deltaTime: elapsed time since f in seconds
//
// Returns:
//   - FrameStamp: the next frame stamp
func (f FrameStamp) Next(deltaTime float32) FrameStamp {
	return FrameStamp{
		FrameNumber:    f.FrameNumber + 1,
		SimulationTime: f.SimulationTime + float64(deltaTime),
	}
}
