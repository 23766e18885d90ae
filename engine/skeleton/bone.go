package skeleton

import (
	"github.com/Carmen-Shannon/oxy-mw/common"
	"github.com/Carmen-Shannon/oxy-mw/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bone is one node of a skeleton's lazily built bone tree.
//
// A Bone exclusively owns its children. Its link to the transform hierarchy is a Handle, which
// never owns the node it refers to; the hierarchy is owned elsewhere and outlives lookups.
// The cached matrix is only meaningful after the owning Skeleton has run an update pass.
type Bone struct {
	node                  transform.Handle
	children              []*Bone
	matrixInSkeletonSpace mgl32.Mat4
}

// newBone creates an unbound bone with an identity matrix.
func newBone() *Bone {
	return &Bone{
		node:                  transform.InvalidHandle,
		matrixInSkeletonSpace: mgl32.Ident4(),
	}
}

// Node returns the handle of the transform this bone is bound to.
func (b *Bone) Node() transform.Handle {
	return b.node
}

// Children returns the bone's children. The returned slice MUST NOT be mutated by the caller.
func (b *Bone) Children() []*Bone {
	return b.children
}

// MatrixInSkeletonSpace returns the matrix computed by the last update pass.
func (b *Bone) MatrixInSkeletonSpace() mgl32.Mat4 {
	return b.matrixInSkeletonSpace
}

// Position returns the translation of the cached skeleton-space matrix.
func (b *Bone) Position() r3.Vec {
	t := common.Translation(b.matrixInSkeletonSpace)
	return r3.Vec{X: float64(t[0]), Y: float64(t[1]), Z: float64(t[2])}
}

// Distance returns the distance between the cached positions of two bones.
func Distance(a, b *Bone) float64 {
	return r3.Norm(r3.Sub(a.Position(), b.Position()))
}

// findChild returns the child bound to node, or nil.
func (b *Bone) findChild(node transform.Handle) *Bone {
	for _, child := range b.children {
		if child.node == node {
			return child
		}
	}
	return nil
}

// update recomputes this bone and its subtree. parent is nil for top-level bones.
func (b *Bone) update(h transform.Hierarchy, parent *mgl32.Mat4) {
	local := h.LocalMatrix(b.node)
	if parent != nil {
		b.matrixInSkeletonSpace = parent.Mul4(local)
	} else {
		b.matrixInSkeletonSpace = local
	}

	for _, child := range b.children {
		child.update(h, &b.matrixInSkeletonSpace)
	}
}

// count returns the number of bones in this subtree, including b.
func (b *Bone) count() int {
	n := 1
	for _, child := range b.children {
		n += child.count()
	}
	return n
}
