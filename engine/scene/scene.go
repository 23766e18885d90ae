package scene

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-mw/common"
	"github.com/Carmen-Shannon/oxy-mw/engine/animator"
	"github.com/Carmen-Shannon/oxy-mw/engine/profiler"
	"github.com/Carmen-Shannon/oxy-mw/engine/skeleton"
	"go.uber.org/zap"
)

// Scene drives the per-frame update of a set of skeletons and the animators that pose them.
//
// Each Update advances the frame clock, runs every animator on the calling goroutine, and then
// recomputes the bone matrices of every active skeleton in parallel. Animators are the only
// writers of hierarchy local matrices, so once they finish the hierarchies are read-only for
// the rest of the frame and distinct skeletons can be updated concurrently.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently being updated by its owner.
	Active() bool

	// SetActive sets whether this scene is currently being updated by its owner.
	SetActive(active bool)

	// AddSkeleton registers a skeleton for per-frame updates.
	// A skeleton is registered at most once, so no two workers ever update the same instance.
	//
	// Parameters:
	//   - s: the skeleton to register (nil is ignored)
	//
	// Returns:
	//   - uint64: the assigned skeleton ID, the existing ID if s is already registered, or 0 if s is nil
	AddSkeleton(s skeleton.Skeleton) uint64

	// RemoveSkeleton unregisters a skeleton by ID.
	//
	// Parameters:
	//   - id: the skeleton ID returned by AddSkeleton
	//
	// Returns:
	//   - bool: true if a skeleton was removed
	RemoveSkeleton(id uint64) bool

	// Skeleton retrieves a registered skeleton by ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the skeleton ID
	//
	// Returns:
	//   - skeleton.Skeleton: the skeleton or nil
	Skeleton(id uint64) skeleton.Skeleton

	// SkeletonCount returns the number of registered skeletons.
	//
	// Returns:
	//   - int: the skeleton count
	SkeletonCount() int

	// AddAnimator registers an animator advanced at the start of every Update.
	//
	// Parameters:
	//   - a: the animator to register (nil is ignored)
	AddAnimator(a animator.Animator)

	// AnimatorCount returns the number of registered animators.
	//
	// Returns:
	//   - int: the animator count
	AnimatorCount() int

	// Clear removes all skeletons and animators from the scene.
	// The frame clock keeps running.
	Clear()

	// Update runs one frame.
	// The frame number is incremented first, so the first Update runs frame 1.
	// Inactive skeletons are skipped and keep their cached matrices.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	//
	// Returns:
	//   - common.FrameStamp: the stamp passed to every skeleton this frame
	Update(deltaTime float32) common.FrameStamp

	// FrameNumber returns the number of the last frame run by Update.
	//
	// Returns:
	//   - uint64: the frame number, 0 before the first Update
	FrameNumber() uint64
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu     *sync.RWMutex
	name   string
	active bool

	skeletons map[uint64]skeleton.Skeleton
	animators []animator.Animator
	nextID    uint64
	stamp     common.FrameStamp

	logger   *zap.Logger
	profiler *profiler.Profiler

	// computePool runs one bone update task per active skeleton.
	// Workers persist across frames.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new empty Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		active:         true,
		skeletons:      make(map[uint64]skeleton.Skeleton),
		nextID:         1,
		logger:         zap.NewNop(),
		computeWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the compute pool after options so WithComputeWorkers can override the default.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)
	s.logger.Debug("scene created",
		zap.String("scene", s.name),
		zap.Int("compute_workers", s.computeWorkers),
		zap.Int("skeletons", len(s.skeletons)),
	)
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) AddSkeleton(sk skeleton.Skeleton) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addSkeleton(sk)
}

// addSkeleton registers sk, returning the existing ID if sk is already registered.
// Caller must hold the write lock.
func (s *scene) addSkeleton(sk skeleton.Skeleton) uint64 {
	if sk == nil {
		return 0
	}
	for id, existing := range s.skeletons {
		if existing == sk {
			return id
		}
	}
	id := s.nextID
	s.nextID++
	s.skeletons[id] = sk
	return id
}

func (s *scene) RemoveSkeleton(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.skeletons[id]; !ok {
		return false
	}
	delete(s.skeletons, id)
	return true
}

func (s *scene) Skeleton(id uint64) skeleton.Skeleton {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skeletons[id]
}

func (s *scene) SkeletonCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.skeletons)
}

func (s *scene) AddAnimator(a animator.Animator) {
	if a == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animators = append(s.animators, a)
}

func (s *scene) AnimatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.animators)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skeletons = make(map[uint64]skeleton.Skeleton)
	s.animators = nil
}

func (s *scene) Update(deltaTime float32) common.FrameStamp {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stamp = s.stamp.Next(deltaTime)
	stamp := s.stamp

	// Phase 1 (serial): animators write local matrices.
	for _, a := range s.animators {
		a.Advance(deltaTime)
	}

	// Phase 2 (parallel): hierarchies are read-only from here on. Skeletons are
	// visited in ID order so task IDs are stable across frames.
	ids := make([]uint64, 0, len(s.skeletons))
	for id, sk := range s.skeletons {
		if sk.Active() {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// A WaitGroup provides the per-frame barrier since pool.Wait() blocks until
	// workers idle-exit.
	var wg sync.WaitGroup
	for _, id := range ids {
		sk := s.skeletons[id]
		wg.Add(1)
		s.computePool.SubmitTask(worker.Task{
			ID: int(id),
			Do: func() (any, error) {
				defer wg.Done()
				sk.UpdateBoneMatrices(stamp)
				return nil, nil
			},
		})
	}
	wg.Wait()

	if s.profiler != nil {
		s.profiler.Tick()
	}
	return stamp
}

func (s *scene) FrameNumber() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stamp.FrameNumber
}
