package transform

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-mw/common"
	"github.com/Carmen-Shannon/oxy-mw/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// FromImported builds a Hierarchy from a loader's flat node list.
// Nodes with ParentIndex -1 are attached under the root, which is named after the imported hierarchy.
// Nodes may be listed in any order; they are inserted parents-first in breadth-first order.
//
// Parameters:
//   - imp: the imported hierarchy
//   - options: variadic list of HierarchyBuilderOption functions applied to the new hierarchy
//
// Returns:
//   - Hierarchy: the built hierarchy
//   - []Handle: the handle of each imported node, indexed like imp.Nodes
//   - error: error if a parent index is out of range or the parent links contain a cycle
func FromImported(imp *model.ImportedHierarchy, options ...HierarchyBuilderOption) (Hierarchy, []Handle, error) {
	if imp == nil {
		return nil, nil, fmt.Errorf("transform: nil imported hierarchy")
	}

	count := len(imp.Nodes)
	children := make(map[int32][]int32, count)
	queue := make([]int32, 0, count)
	for i, n := range imp.Nodes {
		switch {
		case n.ParentIndex == -1:
			queue = append(queue, int32(i))
		case n.ParentIndex < -1 || int(n.ParentIndex) >= count:
			return nil, nil, fmt.Errorf("transform: node %d (%q): parent index %d out of range", i, n.Name, n.ParentIndex)
		case int(n.ParentIndex) == i:
			return nil, nil, fmt.Errorf("transform: node %d (%q) is its own parent: %w", i, n.Name, ErrCycle)
		default:
			children[n.ParentIndex] = append(children[n.ParentIndex], int32(i))
		}
	}

	h := NewHierarchy(imp.Name, append([]HierarchyBuilderOption{WithCapacity(count + 1)}, options...)...)
	handles := make([]Handle, count)
	for i := range handles {
		handles[i] = InvalidHandle
	}

	inserted := 0
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		n := &imp.Nodes[idx]
		parent := h.Root()
		if n.ParentIndex >= 0 {
			parent = handles[n.ParentIndex]
		}

		hd, err := h.AddNode(parent, n.Name, kindForRole(n.Role), importedLocalMatrix(n))
		if err != nil {
			return nil, nil, fmt.Errorf("transform: node %d (%q): %w", idx, n.Name, err)
		}
		handles[idx] = hd
		inserted++

		queue = append(queue, children[idx]...)
	}

	if inserted < count {
		return nil, nil, fmt.Errorf("transform: %d of %d nodes unreachable from the root: %w", count-inserted, count, ErrCycle)
	}

	return h, handles, nil
}

// kindForRole maps a loader role onto a hierarchy capability tag.
func kindForRole(r model.NodeRole) NodeKind {
	switch r {
	case model.NodeRoleJoint:
		return NodeKindMatrixTransform
	case model.NodeRoleAttachment:
		return NodeKindTransform
	default:
		return NodeKindGroup
	}
}

// importedLocalMatrix resolves the local matrix of an imported node. Groups carry no transform.
func importedLocalMatrix(n *model.ImportedNode) mgl32.Mat4 {
	if n.Role == model.NodeRoleGroup {
		return mgl32.Ident4()
	}
	if n.Matrix != nil {
		return mgl32.Mat4(*n.Matrix)
	}
	t := n.LocalTransform
	return common.ComposeTRS(t.Translation, t.Rotation, t.Scale)
}
