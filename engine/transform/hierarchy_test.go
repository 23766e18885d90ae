package transform

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func mustAdd(t *testing.T, h Hierarchy, parent Handle, name string, kind NodeKind) Handle {
	t.Helper()
	hd, err := h.AddNode(parent, name, kind, mgl32.Ident4())
	if err != nil {
		t.Fatalf("AddNode(%q): %v", name, err)
	}
	return hd
}

func TestNewHierarchyRoot(t *testing.T) {
	h := NewHierarchy("root")
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	root := h.Root()
	if h.Name(root) != "root" {
		t.Errorf("Name(root) = %q, want %q", h.Name(root), "root")
	}
	if h.Kind(root) != NodeKindGroup {
		t.Errorf("Kind(root) = %v, want %v", h.Kind(root), NodeKindGroup)
	}
	if h.Parent(root) != InvalidHandle {
		t.Errorf("Parent(root) = %d, want InvalidHandle", h.Parent(root))
	}
}

func TestNewHierarchyRootOptions(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)
	h := NewHierarchy("root", WithRootKind(NodeKindMatrixTransform), WithRootMatrix(m), WithCapacity(8))
	if h.Kind(h.Root()) != NodeKindMatrixTransform {
		t.Errorf("Kind(root) = %v, want %v", h.Kind(h.Root()), NodeKindMatrixTransform)
	}
	if h.LocalMatrix(h.Root()) != m {
		t.Errorf("LocalMatrix(root) = %v, want %v", h.LocalMatrix(h.Root()), m)
	}
}

func TestAddNodeLinksParentAndChild(t *testing.T) {
	h := NewHierarchy("root")
	a := mustAdd(t, h, h.Root(), "a", NodeKindGroup)
	b := mustAdd(t, h, a, "b", NodeKindMatrixTransform)

	if h.Parent(b) != a {
		t.Errorf("Parent(b) = %d, want %d", h.Parent(b), a)
	}
	kids := h.Children(a)
	if len(kids) != 1 || kids[0] != b {
		t.Errorf("Children(a) = %v, want [%d]", kids, b)
	}
	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3", h.Len())
	}
}

func TestAddNodeInvalidParent(t *testing.T) {
	h := NewHierarchy("root")
	_, err := h.AddNode(Handle(42), "x", NodeKindGroup, mgl32.Ident4())
	if !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("err = %v, want ErrInvalidHandle", err)
	}
	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.Len())
	}
}

func TestChildrenReturnsCopy(t *testing.T) {
	h := NewHierarchy("root")
	a := mustAdd(t, h, h.Root(), "a", NodeKindGroup)
	kids := h.Children(h.Root())
	kids[0] = Handle(99)
	if h.Children(h.Root())[0] != a {
		t.Error("mutating the returned slice changed the hierarchy")
	}
}

func TestInvalidHandleAccessors(t *testing.T) {
	h := NewHierarchy("root")
	bad := Handle(7)
	if h.Valid(bad) {
		t.Error("Valid(7) should be false")
	}
	if h.Name(bad) != "" {
		t.Errorf("Name(bad) = %q, want empty", h.Name(bad))
	}
	if h.LocalMatrix(bad) != mgl32.Ident4() {
		t.Error("LocalMatrix(bad) should be identity")
	}
	if h.Children(bad) != nil {
		t.Error("Children(bad) should be nil")
	}
	if err := h.SetLocalMatrix(bad, mgl32.Ident4()); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("SetLocalMatrix err = %v, want ErrInvalidHandle", err)
	}
	if h.Valid(InvalidHandle) {
		t.Error("Valid(InvalidHandle) should be false")
	}
}

func TestSetLocalMatrix(t *testing.T) {
	h := NewHierarchy("root")
	a := mustAdd(t, h, h.Root(), "a", NodeKindMatrixTransform)
	m := mgl32.Translate3D(4, 5, 6)
	if err := h.SetLocalMatrix(a, m); err != nil {
		t.Fatalf("SetLocalMatrix: %v", err)
	}
	if h.LocalMatrix(a) != m {
		t.Errorf("LocalMatrix = %v, want %v", h.LocalMatrix(a), m)
	}
}

func TestTraverseDepthFirstWithPaths(t *testing.T) {
	h := NewHierarchy("root")
	a := mustAdd(t, h, h.Root(), "a", NodeKindGroup)
	b := mustAdd(t, h, a, "b", NodeKindMatrixTransform)
	c := mustAdd(t, h, h.Root(), "c", NodeKindMatrixTransform)
	d := mustAdd(t, h, b, "d", NodeKindMatrixTransform)

	var order []Handle
	paths := map[Handle][]Handle{}
	h.Traverse(func(hd Handle, path []Handle) {
		order = append(order, hd)
		paths[hd] = append([]Handle(nil), path...)
	})

	wantOrder := []Handle{h.Root(), a, b, d, c}
	if len(order) != len(wantOrder) {
		t.Fatalf("visited %v, want %v", order, wantOrder)
	}
	for i := range wantOrder {
		if order[i] != wantOrder[i] {
			t.Errorf("order[%d] = %d, want %d", i, order[i], wantOrder[i])
		}
	}

	wantPath := []Handle{h.Root(), a, b, d}
	got := paths[d]
	if len(got) != len(wantPath) {
		t.Fatalf("path(d) = %v, want %v", got, wantPath)
	}
	for i := range wantPath {
		if got[i] != wantPath[i] {
			t.Errorf("path(d)[%d] = %d, want %d", i, got[i], wantPath[i])
		}
	}
	if p := paths[c]; len(p) != 2 || p[0] != h.Root() || p[1] != c {
		t.Errorf("path(c) = %v, want [%d %d]", p, h.Root(), c)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	h := NewHierarchy("root")
	a := mustAdd(t, h, h.Root(), "a", NodeKindMatrixTransform)

	c := h.Clone()
	if c.Name(a) != "a" || c.Parent(a) != h.Root() {
		t.Fatalf("clone lost node a")
	}

	if err := c.SetLocalMatrix(a, mgl32.Translate3D(1, 0, 0)); err != nil {
		t.Fatalf("SetLocalMatrix: %v", err)
	}
	mustAdd(t, c, a, "b", NodeKindMatrixTransform)

	if h.LocalMatrix(a) != mgl32.Ident4() {
		t.Error("clone matrix write leaked into the original")
	}
	if len(h.Children(a)) != 0 {
		t.Error("clone topology change leaked into the original")
	}
}

func TestNodeKindBoneCapable(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want bool
	}{
		{NodeKindGroup, false},
		{NodeKindMatrixTransform, true},
		{NodeKindTransform, false},
	}
	for _, tt := range tests {
		if got := tt.kind.BoneCapable(); got != tt.want {
			t.Errorf("%v.BoneCapable() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
