// Package model holds the format-independent output of a scene loader: a flat list of named
// transform nodes with parent indices, ready to be turned into a transform hierarchy.
package model

// NodeRole classifies an imported node by the capability it carries into the hierarchy.
type NodeRole uint8

const (
	// NodeRoleGroup is a plain grouping node with no transform of its own.
	NodeRoleGroup NodeRole = iota

	// NodeRoleJoint is an animatable matrix transform (a skeleton joint).
	NodeRoleJoint

	// NodeRoleAttachment is a fixed transform (e.g. a weapon or shield slot) that is not animated as a bone.
	NodeRoleAttachment
)

// String returns a readable name for the role.
func (r NodeRole) String() string {
	switch r {
	case NodeRoleGroup:
		return "group"
	case NodeRoleJoint:
		return "joint"
	case NodeRoleAttachment:
		return "attachment"
	default:
		return "unknown"
	}
}

// Transform represents a decomposed local transform.
type Transform struct {
	// Translation is the position offset.
	Translation [3]float32

	// Rotation is the orientation as a quaternion (x, y, z, w).
	Rotation [4]float32

	// Scale is the scale factor along each axis.
	Scale [3]float32
}

// IdentityTransform returns a Transform with no translation, no rotation and unit scale.
//
// Returns:
//   - Transform: the identity transform
func IdentityTransform() Transform {
	return Transform{
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	}
}

// ImportedNode is a single named node as produced by a loader.
type ImportedNode struct {
	// Name is the node identifier used for bone lookups.
	Name string

	// ParentIndex is the index of the parent node in ImportedHierarchy.Nodes, or -1 to attach
	// the node directly under the hierarchy root.
	ParentIndex int32

	// Role is the capability of this node.
	Role NodeRole

	// LocalTransform is the node's transform relative to its parent.
	LocalTransform Transform

	// Matrix overrides LocalTransform when set. Column-major.
	Matrix *[16]float32
}

// ImportedHierarchy is a flat, named transform hierarchy.
// Nodes may appear in any order; parents are resolved by index.
type ImportedHierarchy struct {
	// Name is the hierarchy identifier, used as the root node name.
	Name string

	// Nodes are all nodes of the hierarchy.
	Nodes []ImportedNode
}
