package transform

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidHandle is returned when a Handle does not address a node of the hierarchy.
	ErrInvalidHandle = errors.New("transform: invalid handle")

	// ErrCycle is returned when imported parent links do not form a tree.
	ErrCycle = errors.New("transform: parent links contain a cycle")
)

// Handle addresses one node of a Hierarchy. Handles are stable for the hierarchy's lifetime
// and never imply ownership of the node.
type Handle uint32

// InvalidHandle is the sentinel returned where no node exists (e.g. the root's parent).
const InvalidHandle Handle = ^Handle(0)

// Visitor is called once per node during Traverse.
// path lists the handles from the root to h inclusive and is only valid for the duration of the call.
type Visitor func(h Handle, path []Handle)

// node is one arena entry.
type node struct {
	name     string
	kind     NodeKind
	parent   Handle
	children []Handle
	local    mgl32.Mat4
}

// hierarchy is the implementation of the Hierarchy interface.
type hierarchy struct {
	nodes     []node
	rootKind  NodeKind
	rootLocal mgl32.Mat4
	capacity  int
}

// Hierarchy defines an externally owned tree of named transform nodes.
//
// The topology only grows: nodes can be added but never removed or reparented. Local matrices
// are mutable so that animation can drive them between frames. A Hierarchy is not safe for
// concurrent mutation; concurrent readers are fine while nothing writes.
type Hierarchy interface {
	// Root returns the handle of the root node, created together with the hierarchy.
	//
	// Returns:
	//   - Handle: the root handle
	Root() Handle

	// Len returns the number of nodes, including the root.
	//
	// Returns:
	//   - int: the node count
	Len() int

	// Valid reports whether h addresses a node of this hierarchy.
	//
	// Parameters:
	//   - h: the handle to check
	//
	// Returns:
	//   - bool: true if h is valid
	Valid(h Handle) bool

	// AddNode appends a new node under parent.
	//
	// Parameters:
	//   - parent: the parent node handle
	//   - name: the node name (need not be unique)
	//   - kind: the capability tag of the node
	//   - local: the node's local matrix relative to its parent
	//
	// Returns:
	//   - Handle: the handle of the new node
	//   - error: ErrInvalidHandle if parent is not a node of this hierarchy
	AddNode(parent Handle, name string, kind NodeKind, local mgl32.Mat4) (Handle, error)

	// Name returns the node name, or "" for an invalid handle.
	//
	// Parameters:
	//   - h: the node handle
	//
	// Returns:
	//   - string: the node name
	Name(h Handle) string

	// Kind returns the node's capability tag, or NodeKindGroup for an invalid handle.
	//
	// Parameters:
	//   - h: the node handle
	//
	// Returns:
	//   - NodeKind: the node kind
	Kind(h Handle) NodeKind

	// Parent returns the parent handle, or InvalidHandle for the root and invalid handles.
	//
	// Parameters:
	//   - h: the node handle
	//
	// Returns:
	//   - Handle: the parent handle
	Parent(h Handle) Handle

	// Children returns a copy of the node's child handles in insertion order.
	//
	// Parameters:
	//   - h: the node handle
	//
	// Returns:
	//   - []Handle: the child handles
	Children(h Handle) []Handle

	// LocalMatrix returns the node's local matrix, or identity for an invalid handle.
	//
	// Parameters:
	//   - h: the node handle
	//
	// Returns:
	//   - mgl32.Mat4: the local matrix
	LocalMatrix(h Handle) mgl32.Mat4

	// SetLocalMatrix replaces the node's local matrix.
	//
	// Parameters:
	//   - h: the node handle
	//   - m: the new local matrix
	//
	// Returns:
	//   - error: ErrInvalidHandle if h is not a node of this hierarchy
	SetLocalMatrix(h Handle, m mgl32.Mat4) error

	// Traverse visits every node depth-first in pre-order, starting at the root.
	// Children are visited in insertion order.
	//
	// Parameters:
	//   - visit: the callback invoked for each node
	Traverse(visit Visitor)

	// Clone returns a deep copy of the hierarchy. Handles are preserved.
	//
	// Returns:
	//   - Hierarchy: the copy
	Clone() Hierarchy
}

var _ Hierarchy = &hierarchy{}

// NewHierarchy creates a Hierarchy containing only a root node.
// The root is a group with an identity matrix unless overridden by options.
//
// Parameters:
//   - rootName: the name of the root node
//   - options: variadic list of HierarchyBuilderOption functions
//
// Returns:
//   - Hierarchy: the new hierarchy
func NewHierarchy(rootName string, options ...HierarchyBuilderOption) Hierarchy {
	h := &hierarchy{
		rootKind:  NodeKindGroup,
		rootLocal: mgl32.Ident4(),
	}
	for _, opt := range options {
		opt(h)
	}

	h.nodes = make([]node, 1, max(h.capacity, 1))
	h.nodes[0] = node{
		name:   rootName,
		kind:   h.rootKind,
		parent: InvalidHandle,
		local:  h.rootLocal,
	}
	return h
}

func (h *hierarchy) Root() Handle {
	return 0
}

func (h *hierarchy) Len() int {
	return len(h.nodes)
}

func (h *hierarchy) Valid(hd Handle) bool {
	return int(hd) < len(h.nodes)
}

func (h *hierarchy) AddNode(parent Handle, name string, kind NodeKind, local mgl32.Mat4) (Handle, error) {
	if !h.Valid(parent) {
		return InvalidHandle, fmt.Errorf("add node %q under %d: %w", name, parent, ErrInvalidHandle)
	}
	hd := Handle(len(h.nodes))
	h.nodes = append(h.nodes, node{
		name:   name,
		kind:   kind,
		parent: parent,
		local:  local,
	})
	h.nodes[parent].children = append(h.nodes[parent].children, hd)
	return hd, nil
}

func (h *hierarchy) Name(hd Handle) string {
	if !h.Valid(hd) {
		return ""
	}
	return h.nodes[hd].name
}

func (h *hierarchy) Kind(hd Handle) NodeKind {
	if !h.Valid(hd) {
		return NodeKindGroup
	}
	return h.nodes[hd].kind
}

func (h *hierarchy) Parent(hd Handle) Handle {
	if !h.Valid(hd) {
		return InvalidHandle
	}
	return h.nodes[hd].parent
}

func (h *hierarchy) Children(hd Handle) []Handle {
	if !h.Valid(hd) {
		return nil
	}
	return append([]Handle(nil), h.nodes[hd].children...)
}

func (h *hierarchy) LocalMatrix(hd Handle) mgl32.Mat4 {
	if !h.Valid(hd) {
		return mgl32.Ident4()
	}
	return h.nodes[hd].local
}

func (h *hierarchy) SetLocalMatrix(hd Handle, m mgl32.Mat4) error {
	if !h.Valid(hd) {
		return fmt.Errorf("set local matrix of %d: %w", hd, ErrInvalidHandle)
	}
	h.nodes[hd].local = m
	return nil
}

func (h *hierarchy) Traverse(visit Visitor) {
	path := make([]Handle, 0, 16)
	h.traverse(h.Root(), path, visit)
}

// traverse is the recursive step of Traverse. path is reused across siblings.
func (h *hierarchy) traverse(hd Handle, path []Handle, visit Visitor) {
	path = append(path, hd)
	visit(hd, path)
	for _, child := range h.nodes[hd].children {
		h.traverse(child, path, visit)
	}
}

func (h *hierarchy) Clone() Hierarchy {
	c := &hierarchy{
		nodes:     make([]node, len(h.nodes)),
		rootKind:  h.rootKind,
		rootLocal: h.rootLocal,
		capacity:  h.capacity,
	}
	for i, n := range h.nodes {
		n.children = append([]Handle(nil), n.children...)
		c.nodes[i] = n
	}
	return c
}
