package common

// Coalesce picks a default: it returns the first argument that differs from the zero value of T.
// With no such argument the zero value itself is returned.
//
// Parameters:
//   - candidates: values in order of preference
//
// Returns:
//   - T: the preferred non-zero candidate
func Coalesce[T comparable](candidates ...T) (picked T) {
	for _, c := range candidates {
		if c != picked {
			return c
		}
	}
	return picked
}
