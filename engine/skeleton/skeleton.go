package skeleton

import (
	"github.com/Carmen-Shannon/oxy-mw/common"
	"github.com/Carmen-Shannon/oxy-mw/engine/transform"
	"go.uber.org/zap"
)

// skeleton is the implementation of the Skeleton interface.
type skeleton struct {
	name      string
	hierarchy transform.Hierarchy
	logger    *zap.Logger

	boneCache     boneCache
	boneCacheInit bool
	rootBone      *Bone

	needToUpdateBoneMatrices bool
	lastFrameNumber          uint64
	updatePasses             uint64
	active                   bool
}

// Skeleton defines the bone cache for one animated transform hierarchy.
//
// Bones are materialized lazily: the first lookup indexes every bone-capable node of the hierarchy
// by name, and each lookup only creates the bones along the path to the requested one. Matrices are
// recomputed top-down at most once per frame number, plus once more whenever a lookup inserted a bone.
//
// A Skeleton is not safe for concurrent use. The name index is built once and never refreshed,
// so lookups after the hierarchy's topology changes may return stale paths.
type Skeleton interface {
	// Name returns the skeleton's identifier used in diagnostics.
	//
	// Returns:
	//   - string: the skeleton name
	Name() string

	// Hierarchy returns the transform hierarchy this skeleton reads.
	//
	// Returns:
	//   - transform.Hierarchy: the hierarchy
	Hierarchy() transform.Hierarchy

	// Bone looks up a bone by name, materializing it and any missing ancestors.
	// Unknown names return nil without creating any bones.
	//
	// Parameters:
	//   - name: the bone name
	//
	// Returns:
	//   - *Bone: the bone, or nil if no bone-capable node has that name
	Bone(name string) *Bone

	// UpdateBoneMatrices recomputes every materialized bone's skeleton-space matrix.
	// Calls repeating the previous frame number are no-ops unless a bone was inserted since the last pass.
	//
	// Parameters:
	//   - stamp: the current frame
	UpdateBoneMatrices(stamp common.FrameStamp)

	// SetActive sets whether this skeleton takes part in per-frame updates.
	// The flag is advisory: the skeleton itself does not enforce it.
	//
	// Parameters:
	//   - active: true to mark the skeleton active
	SetActive(active bool)

	// Active reports the value set by SetActive.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// NeedsUpdate reports whether the next UpdateBoneMatrices call will recompute matrices
	// even if the frame number is unchanged.
	//
	// Returns:
	//   - bool: true if an update is pending
	NeedsUpdate() bool

	// LastFrameNumber returns the frame number of the most recent UpdateBoneMatrices call.
	//
	// Returns:
	//   - uint64: the frame number
	LastFrameNumber() uint64

	// UpdatePasses returns how many recomputation passes have run.
	//
	// Returns:
	//   - uint64: the pass count
	UpdatePasses() uint64

	// BoneCount returns the number of materialized bones.
	//
	// Returns:
	//   - int: the bone count
	BoneCount() int

	// BoneNames returns every indexed bone name in sorted order, building the index if needed.
	//
	// Returns:
	//   - []string: the bone names
	BoneNames() []string

	// Clone creates a fresh skeleton over another hierarchy, typically a clone of this one.
	// Name, logger and the active flag are copied; the index, bones and frame state are not.
	//
	// Parameters:
	//   - h: the hierarchy for the new skeleton
	//
	// Returns:
	//   - Skeleton: the new skeleton
	Clone(h transform.Hierarchy) Skeleton
}

var _ Skeleton = &skeleton{}

// NewSkeleton creates a Skeleton over the given hierarchy.
// Panics if h is nil.
//
// Parameters:
//   - h: the transform hierarchy to read
//   - options: variadic list of SkeletonBuilderOption functions
//
// Returns:
//   - Skeleton: the new skeleton
func NewSkeleton(h transform.Hierarchy, options ...SkeletonBuilderOption) Skeleton {
	if h == nil {
		panic("skeleton: NewSkeleton requires a non-nil Hierarchy")
	}
	s := &skeleton{
		hierarchy:                h,
		logger:                   zap.NewNop(),
		needToUpdateBoneMatrices: true,
		active:                   true,
	}
	for _, opt := range options {
		opt(s)
	}
	s.name = common.Coalesce(s.name, h.Name(h.Root()), "skeleton")
	return s
}

func (s *skeleton) Name() string {
	return s.name
}

func (s *skeleton) Hierarchy() transform.Hierarchy {
	return s.hierarchy
}

func (s *skeleton) Bone(name string) *Bone {
	s.initBoneCache()

	found, ok := s.boneCache[name]
	if !ok {
		return nil
	}

	if s.rootBone == nil {
		s.rootBone = newBone()
	}

	bone := s.rootBone
	for _, node := range found.path {
		if !s.hierarchy.Kind(node).BoneCapable() {
			continue
		}

		child := bone.findChild(node)
		if child == nil {
			child = newBone()
			bone.children = append(bone.children, child)
			s.needToUpdateBoneMatrices = true
		}
		bone = child

		bone.node = node
	}

	return bone
}

func (s *skeleton) UpdateBoneMatrices(stamp common.FrameStamp) {
	if stamp.FrameNumber != s.lastFrameNumber {
		s.needToUpdateBoneMatrices = true
	}
	s.lastFrameNumber = stamp.FrameNumber

	if !s.needToUpdateBoneMatrices {
		return
	}

	if s.rootBone != nil {
		for _, bone := range s.rootBone.children {
			bone.update(s.hierarchy, nil)
		}
		s.updatePasses++
	} else {
		s.logger.Warn("no root bone",
			zap.String("skeleton", s.name),
			zap.Uint64("frame", stamp.FrameNumber),
		)
	}

	s.needToUpdateBoneMatrices = false
}

func (s *skeleton) SetActive(active bool) {
	s.active = active
}

func (s *skeleton) Active() bool {
	return s.active
}

func (s *skeleton) NeedsUpdate() bool {
	return s.needToUpdateBoneMatrices
}

func (s *skeleton) LastFrameNumber() uint64 {
	return s.lastFrameNumber
}

func (s *skeleton) UpdatePasses() uint64 {
	return s.updatePasses
}

func (s *skeleton) BoneCount() int {
	if s.rootBone == nil {
		return 0
	}
	return s.rootBone.count() - 1
}

func (s *skeleton) BoneNames() []string {
	s.initBoneCache()
	return s.boneCache.names()
}

func (s *skeleton) Clone(h transform.Hierarchy) Skeleton {
	return NewSkeleton(h,
		WithName(s.name),
		WithLogger(s.logger),
		WithActive(s.active),
	)
}

// initBoneCache builds the name index on first use.
func (s *skeleton) initBoneCache() {
	if s.boneCacheInit {
		return
	}
	s.boneCache = buildBoneCache(s.hierarchy)
	s.boneCacheInit = true
}
