package transform

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-mw/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

func TestFromImportedOutOfOrder(t *testing.T) {
	imp := &model.ImportedHierarchy{
		Name: "npc",
		Nodes: []model.ImportedNode{
			{Name: "Bip01 Spine", ParentIndex: 2, Role: model.NodeRoleJoint, LocalTransform: model.IdentityTransform()},
			{Name: "Weapon Bone", ParentIndex: 0, Role: model.NodeRoleAttachment, LocalTransform: model.IdentityTransform()},
			{Name: "Bip01", ParentIndex: -1, Role: model.NodeRoleJoint, LocalTransform: model.Transform{
				Translation: [3]float32{0, 0, 10},
				Rotation:    [4]float32{0, 0, 0, 1},
				Scale:       [3]float32{1, 1, 1},
			}},
		},
	}

	h, handles, err := FromImported(imp)
	if err != nil {
		t.Fatalf("FromImported: %v", err)
	}
	if h.Len() != 4 {
		t.Fatalf("Len = %d, want 4", h.Len())
	}
	if h.Name(h.Root()) != "npc" {
		t.Errorf("root name = %q, want %q", h.Name(h.Root()), "npc")
	}

	bip, spine, weapon := handles[2], handles[0], handles[1]
	if h.Parent(bip) != h.Root() {
		t.Errorf("Parent(Bip01) = %d, want root", h.Parent(bip))
	}
	if h.Parent(spine) != bip {
		t.Errorf("Parent(spine) = %d, want %d", h.Parent(spine), bip)
	}
	if h.Parent(weapon) != spine {
		t.Errorf("Parent(weapon) = %d, want %d", h.Parent(weapon), spine)
	}
	if h.Kind(spine) != NodeKindMatrixTransform {
		t.Errorf("Kind(spine) = %v, want matrix_transform", h.Kind(spine))
	}
	if h.Kind(weapon) != NodeKindTransform {
		t.Errorf("Kind(weapon) = %v, want transform", h.Kind(weapon))
	}
	want := mgl32.Translate3D(0, 0, 10)
	if !h.LocalMatrix(bip).ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("LocalMatrix(Bip01) = %v, want %v", h.LocalMatrix(bip), want)
	}
}

func TestFromImportedMatrixOverride(t *testing.T) {
	m := [16]float32(mgl32.Translate3D(3, 2, 1))
	imp := &model.ImportedHierarchy{
		Name: "m",
		Nodes: []model.ImportedNode{
			{Name: "a", ParentIndex: -1, Role: model.NodeRoleJoint, LocalTransform: model.IdentityTransform(), Matrix: &m},
			{Name: "g", ParentIndex: 0, Role: model.NodeRoleGroup, Matrix: &m},
		},
	}
	h, handles, err := FromImported(imp)
	if err != nil {
		t.Fatalf("FromImported: %v", err)
	}
	if h.LocalMatrix(handles[0]) != mgl32.Mat4(m) {
		t.Errorf("joint matrix = %v, want %v", h.LocalMatrix(handles[0]), m)
	}
	if h.LocalMatrix(handles[1]) != mgl32.Ident4() {
		t.Errorf("group matrix = %v, want identity", h.LocalMatrix(handles[1]))
	}
}

func TestFromImportedErrors(t *testing.T) {
	tests := []struct {
		name  string
		nodes []model.ImportedNode
		cycle bool
	}{
		{
			name:  "parent out of range",
			nodes: []model.ImportedNode{{Name: "a", ParentIndex: 5}},
		},
		{
			name:  "negative parent",
			nodes: []model.ImportedNode{{Name: "a", ParentIndex: -3}},
		},
		{
			name:  "self parent",
			nodes: []model.ImportedNode{{Name: "a", ParentIndex: 0}},
			cycle: true,
		},
		{
			name: "two node cycle",
			nodes: []model.ImportedNode{
				{Name: "root", ParentIndex: -1},
				{Name: "a", ParentIndex: 2},
				{Name: "b", ParentIndex: 1},
			},
			cycle: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FromImported(&model.ImportedHierarchy{Name: "x", Nodes: tt.nodes})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrCycle); got != tt.cycle {
				t.Errorf("errors.Is(err, ErrCycle) = %v, want %v (err: %v)", got, tt.cycle, err)
			}
		})
	}
}

func TestFromImportedNil(t *testing.T) {
	if _, _, err := FromImported(nil); err == nil {
		t.Error("expected error for nil hierarchy")
	}
}
