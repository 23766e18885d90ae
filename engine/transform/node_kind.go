package transform

// NodeKind is the capability tag of a hierarchy node.
// Consumers branch on the tag instead of inspecting concrete node types.
type NodeKind uint8

const (
	// NodeKindGroup is a grouping node with no transform of its own.
	NodeKindGroup NodeKind = iota

	// NodeKindMatrixTransform is a node carrying an animatable local matrix. Only these nodes can back a bone.
	NodeKindMatrixTransform

	// NodeKindTransform is a node carrying a local matrix that is not bone-capable
	// (attachment points, billboards and similar fixed transforms).
	NodeKindTransform
)

// BoneCapable reports whether nodes of this kind can be bound to a bone.
//
// Returns:
//   - bool: true for NodeKindMatrixTransform
func (k NodeKind) BoneCapable() bool {
	return k == NodeKindMatrixTransform
}

// String returns a readable name for the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeKindGroup:
		return "group"
	case NodeKindMatrixTransform:
		return "matrix_transform"
	case NodeKindTransform:
		return "transform"
	default:
		return "unknown"
	}
}
