package animator

// AnimatorBuilderOption is a functional option for configuring an Animator via NewAnimator.
type AnimatorBuilderOption func(*animator)

// WithTracks is an option builder that adds initial tracks to the Animator.
//
// Parameters:
//   - tracks: the tracks to add; nil entries are skipped
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the tracks option to an animator
func WithTracks(tracks ...*Track) AnimatorBuilderOption {
	return func(a *animator) {
		for _, t := range tracks {
			a.AddTrack(t)
		}
	}
}
