package transform

import "github.com/go-gl/mathgl/mgl32"

// HierarchyBuilderOption is a functional option for configuring a Hierarchy via NewHierarchy.
type HierarchyBuilderOption func(*hierarchy)

// WithRootKind is an option builder that sets the capability tag of the root node.
//
// Parameters:
//   - kind: the root node kind
//
// Returns:
//   - HierarchyBuilderOption: a function that applies the root kind option to a hierarchy
func WithRootKind(kind NodeKind) HierarchyBuilderOption {
	return func(h *hierarchy) {
		h.rootKind = kind
	}
}

// WithRootMatrix is an option builder that sets the local matrix of the root node.
//
// Parameters:
//   - m: the root local matrix
//
// Returns:
//   - HierarchyBuilderOption: a function that applies the root matrix option to a hierarchy
func WithRootMatrix(m mgl32.Mat4) HierarchyBuilderOption {
	return func(h *hierarchy) {
		h.rootLocal = m
	}
}

// WithCapacity is an option builder that preallocates room for n nodes.
//
// Parameters:
//   - n: the expected node count
//
// Returns:
//   - HierarchyBuilderOption: a function that applies the capacity option to a hierarchy
func WithCapacity(n int) HierarchyBuilderOption {
	return func(h *hierarchy) {
		h.capacity = n
	}
}
