package scene

import (
	"github.com/Carmen-Shannon/oxy-mw/engine/animator"
	"github.com/Carmen-Shannon/oxy-mw/engine/profiler"
	"github.com/Carmen-Shannon/oxy-mw/engine/skeleton"
	"go.uber.org/zap"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active. Defaults to true.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithSkeletons registers initial skeletons, assigning IDs in argument order starting at 1.
// Nil skeletons and skeletons already registered are skipped.
//
// Parameters:
//   - skeletons: the skeletons to register
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSkeletons(skeletons ...skeleton.Skeleton) SceneBuilderOption {
	return func(s *scene) {
		for _, sk := range skeletons {
			s.addSkeleton(sk)
		}
	}
}

// WithAnimators registers initial animators. Nil animators are skipped.
//
// Parameters:
//   - animators: the animators to register
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAnimators(animators ...animator.Animator) SceneBuilderOption {
	return func(s *scene) {
		for _, a := range animators {
			if a != nil {
				s.animators = append(s.animators, a)
			}
		}
	}
}

// WithComputeWorkers sets the number of worker goroutines used for the parallel
// bone update phase of Update. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}

// WithLogger sets the logger for scene diagnostics. Nil is ignored.
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) SceneBuilderOption {
	return func(s *scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProfiler attaches a profiler ticked at the end of every Update.
//
// Parameters:
//   - p: the profiler to tick
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) SceneBuilderOption {
	return func(s *scene) {
		s.profiler = p
	}
}
