package animator

// animator is the implementation of the Animator interface.
type animator struct {
	tracks []*Track
}

// Animator groups tracks that are advanced together once per frame.
//
// An Animator is the only writer of the local matrices it drives, and it must finish
// advancing before any skeleton reading the same hierarchy runs its update pass.
type Animator interface {
	// AddTrack appends a track. Nil tracks are ignored.
	//
	// Parameters:
	//   - t: the track to add
	AddTrack(t *Track)

	// Advance moves every unfinished track forward by deltaTime seconds.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Advance(deltaTime float32)

	// Done reports whether every track has finished. Looping tracks never finish,
	// and an Animator with no tracks is done.
	//
	// Returns:
	//   - bool: true if all tracks are done
	Done() bool

	// TrackCount returns the number of tracks.
	//
	// Returns:
	//   - int: the track count
	TrackCount() int
}

var _ Animator = &animator{}

// NewAnimator creates a new Animator configured using the provided options.
//
// Parameters:
//   - options: variadic list of AnimatorBuilderOption functions to configure the Animator
//
// Returns:
//   - Animator: the new animator
func NewAnimator(options ...AnimatorBuilderOption) Animator {
	a := &animator{}
	for _, opt := range options {
		opt(a)
	}
	return a
}

func (a *animator) AddTrack(t *Track) {
	if t == nil {
		return
	}
	a.tracks = append(a.tracks, t)
}

func (a *animator) Advance(deltaTime float32) {
	for _, t := range a.tracks {
		t.Advance(deltaTime)
	}
}

func (a *animator) Done() bool {
	for _, t := range a.tracks {
		if !t.Done() {
			return false
		}
	}
	return true
}

func (a *animator) TrackCount() int {
	return len(a.tracks)
}
