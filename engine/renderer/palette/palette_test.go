package palette

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-mw/common"
	"github.com/Carmen-Shannon/oxy-mw/engine/skeleton"
	"github.com/Carmen-Shannon/oxy-mw/engine/transform"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

func decodeMatrix(t *testing.T, data []byte, index int) mgl32.Mat4 {
	t.Helper()
	var m mgl32.Mat4
	base := index * 64
	if len(data) < base+64 {
		t.Fatalf("buffer too short for joint %d: %d bytes", index, len(data))
	}
	for i := range 16 {
		m[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[base+i*4:]))
	}
	return m
}

func newLeg(t *testing.T) (transform.Hierarchy, transform.Handle) {
	t.Helper()
	h := transform.NewHierarchy("leg")
	hip, err := h.AddNode(h.Root(), "hip", transform.NodeKindMatrixTransform, mgl32.Translate3D(0, 1, 0))
	if err != nil {
		t.Fatalf("AddNode hip: %v", err)
	}
	knee, err := h.AddNode(hip, "knee", transform.NodeKindMatrixTransform, mgl32.Translate3D(0, 0, 2))
	if err != nil {
		t.Fatalf("AddNode knee: %v", err)
	}
	return h, knee
}

func TestGPUBoneMatrixLayout(t *testing.T) {
	g := GPUBoneMatrix{Joint: mgl32.Translate3D(1, 2, 3)}
	if g.Size() != 64 {
		t.Errorf("Size = %d, want 64", g.Size())
	}
	got := decodeMatrix(t, g.Marshal(), 0)
	if got != mgl32.Translate3D(1, 2, 3) {
		t.Errorf("Marshal round = %v", got)
	}
}

func TestPaletteStage(t *testing.T) {
	h, _ := newLeg(t)
	s := skeleton.NewSkeleton(h)
	kneeInv := mgl32.Translate3D(0, -1, -2)
	p := NewPalette(s, []string{"knee", "missing", "hip"}, [][16]float32{kneeInv, mgl32.Ident4()}, WithBinding(3))

	if p.JointCount() != 3 {
		t.Errorf("JointCount = %d, want 3", p.JointCount())
	}
	if p.BufferSize() != 192 {
		t.Errorf("BufferSize = %d, want 192", p.BufferSize())
	}
	if got := p.Resolve(); got != 2 {
		t.Errorf("Resolve = %d, want 2", got)
	}

	writes := p.Stage(common.FrameStamp{FrameNumber: 1})
	if len(writes) != 1 {
		t.Fatalf("Stage returned %d writes, want 1", len(writes))
	}
	w := writes[0]
	if w.Binding != 3 || w.Offset != 0 {
		t.Errorf("write binding/offset = %d/%d, want 3/0", w.Binding, w.Offset)
	}
	if uint64(len(w.Data)) != p.BufferSize() {
		t.Errorf("data length = %d, want %d", len(w.Data), p.BufferSize())
	}

	if got := decodeMatrix(t, w.Data, 0); !got.ApproxEqualThreshold(mgl32.Ident4(), 1e-5) {
		t.Errorf("knee at bind pose = %v, want identity", got)
	}
	if got := decodeMatrix(t, w.Data, 1); got != mgl32.Ident4() {
		t.Errorf("unresolved joint = %v, want identity", got)
	}
	if got := decodeMatrix(t, w.Data, 2); !got.ApproxEqualThreshold(mgl32.Translate3D(0, 1, 0), 1e-5) {
		t.Errorf("hip = %v, want translate(0,1,0)", got)
	}
}

func TestPaletteFollowsAnimatedHierarchy(t *testing.T) {
	h, knee := newLeg(t)
	s := skeleton.NewSkeleton(h)
	p := NewPalette(s, []string{"knee"}, nil)

	p.Stage(common.FrameStamp{FrameNumber: 1})
	if err := h.SetLocalMatrix(knee, mgl32.Translate3D(0, 0, 5)); err != nil {
		t.Fatalf("SetLocalMatrix: %v", err)
	}

	same := p.Stage(common.FrameStamp{FrameNumber: 1})
	if got := decodeMatrix(t, same[0].Data, 0); !got.ApproxEqualThreshold(mgl32.Translate3D(0, 1, 2), 1e-5) {
		t.Errorf("same frame = %v, want cached translate(0,1,2)", got)
	}

	next := p.Stage(common.FrameStamp{FrameNumber: 2})
	if got := decodeMatrix(t, next[0].Data, 0); !got.ApproxEqualThreshold(mgl32.Translate3D(0, 1, 5), 1e-5) {
		t.Errorf("next frame = %v, want translate(0,1,5)", got)
	}
}

func TestPaletteBufferUsage(t *testing.T) {
	h, _ := newLeg(t)
	p := NewPalette(skeleton.NewSkeleton(h), nil, nil)
	usage := p.BufferUsage()
	if usage&wgpu.BufferUsageStorage == 0 || usage&wgpu.BufferUsageCopyDst == 0 {
		t.Errorf("BufferUsage = %v, want storage and copy-dst", usage)
	}
	if p.BufferSize() != 0 {
		t.Errorf("empty palette BufferSize = %d, want 0", p.BufferSize())
	}
}

func TestNewPalettePanicsOnNilSkeleton(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPalette(nil) did not panic")
		}
	}()
	NewPalette(nil, nil, nil)
}

type recordedWrite struct {
	offset uint64
	data   []byte
}

type fakeQueue struct {
	writes []recordedWrite
	err    error
}

func (q *fakeQueue) WriteBuffer(_ *wgpu.Buffer, offset uint64, data []byte) error {
	if q.err != nil {
		return q.err
	}
	q.writes = append(q.writes, recordedWrite{offset: offset, data: data})
	return nil
}

func TestUploadWritesStagedPalette(t *testing.T) {
	h, _ := newLeg(t)
	p := NewPalette(skeleton.NewSkeleton(h), []string{"hip", "knee"}, nil, WithBinding(1))

	q := &fakeQueue{}
	if err := Upload(q, nil, p.Stage(common.FrameStamp{FrameNumber: 1})); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if len(q.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(q.writes))
	}
	if got := uint64(len(q.writes[0].data)); got != p.BufferSize() || q.writes[0].offset != 0 {
		t.Errorf("write = %d bytes at %d, want %d at 0", got, q.writes[0].offset, p.BufferSize())
	}
	if got := decodeMatrix(t, q.writes[0].data, 1); !got.ApproxEqualThreshold(mgl32.Translate3D(0, 1, 2), 1e-5) {
		t.Errorf("uploaded knee = %v, want translate(0,1,2)", got)
	}
}

func TestUploadErrors(t *testing.T) {
	writes := []BufferWrite{{Binding: 2, Data: make([]byte, 64)}}
	boom := errors.New("device lost")
	if err := Upload(&fakeQueue{err: boom}, nil, writes); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped device lost", err)
	}
	if err := Upload(nil, nil, writes); err == nil {
		t.Error("Upload with a nil queue should fail")
	}

	q := &fakeQueue{}
	if err := Upload(q, nil, []BufferWrite{{Binding: 0}}); err != nil || len(q.writes) != 0 {
		t.Errorf("empty write: err=%v writes=%d, want skipped", err, len(q.writes))
	}
}

func TestBufferDescriptorAndShaderSource(t *testing.T) {
	h, _ := newLeg(t)
	p := NewPalette(skeleton.NewSkeleton(h), []string{"hip", "knee"}, nil)

	d := p.BufferDescriptor("npc palette")
	if d.Label != "npc palette" || d.Size != 128 || d.Usage != p.BufferUsage() || d.MappedAtCreation {
		t.Errorf("BufferDescriptor = %+v", d)
	}
	if src := p.ShaderSource(); !strings.Contains(src, "struct BoneMatrix") || !strings.Contains(src, "mat4x4<f32>") {
		t.Errorf("ShaderSource = %q, want the BoneMatrix struct", src)
	}
}
