package skeleton

import "go.uber.org/zap"

// SkeletonBuilderOption is a functional option for configuring a Skeleton via NewSkeleton.
type SkeletonBuilderOption func(*skeleton)

// WithName is an option builder that sets the skeleton's diagnostic name.
// Defaults to the hierarchy root's name.
//
// Parameters:
//   - name: the skeleton name
//
// Returns:
//   - SkeletonBuilderOption: a function that applies the name option to a skeleton
func WithName(name string) SkeletonBuilderOption {
	return func(s *skeleton) {
		s.name = name
	}
}

// WithActive is an option builder that sets the initial active flag. Defaults to true.
//
// Parameters:
//   - active: the initial active flag
//
// Returns:
//   - SkeletonBuilderOption: a function that applies the active option to a skeleton
func WithActive(active bool) SkeletonBuilderOption {
	return func(s *skeleton) {
		s.active = active
	}
}

// WithLogger is an option builder that sets the logger used for diagnostics.
// A nil logger is ignored.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - SkeletonBuilderOption: a function that applies the logger option to a skeleton
func WithLogger(logger *zap.Logger) SkeletonBuilderOption {
	return func(s *skeleton) {
		if logger != nil {
			s.logger = logger
		}
	}
}
