package palette

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-mw/common"
	"github.com/Carmen-Shannon/oxy-mw/engine/skeleton"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// palette is the implementation of the Palette interface.
type palette struct {
	skeleton    skeleton.Skeleton
	jointNames  []string
	inverseBind []mgl32.Mat4
	bones       []*skeleton.Bone
	binding     int

	matrix  GPUBoneMatrix
	staging []byte
}

// Palette packs the skinning matrices of a fixed joint list into a GPU storage buffer.
//
// Joints are looked up by name through the skeleton's bone cache, so only the bones a mesh
// actually references are materialized. Joint order matches the order given at construction,
// which is the order the vertex shader indexes.
type Palette interface {
	// Resolve looks up every joint by name and binds it to its bone.
	// Joints with no matching bone stay unresolved and are staged as identity.
	//
	// Returns:
	//   - int: the number of joints that resolved to a bone
	Resolve() int

	// Stage updates the skeleton for the given frame and packs one matrix per joint.
	// Each resolved joint receives skeletonSpace * inverseBind.
	//
	// Parameters:
	//   - stamp: the current frame
	//
	// Returns:
	//   - []BufferWrite: a single write covering the whole palette at offset 0; its Data is reused by the next call
	Stage(stamp common.FrameStamp) []BufferWrite

	// JointCount returns the number of joints in the palette.
	//
	// Returns:
	//   - int: the joint count
	JointCount() int

	// BufferSize returns the size of the palette buffer in bytes.
	//
	// Returns:
	//   - uint64: joint count times the size of GPUBoneMatrix
	BufferSize() uint64

	// BufferUsage returns the usage flags the palette buffer must be created with.
	//
	// Returns:
	//   - wgpu.BufferUsage: storage plus copy-destination usage
	BufferUsage() wgpu.BufferUsage

	// BufferDescriptor describes the storage buffer that receives the staged palette.
	//
	// Parameters:
	//   - label: the debug label of the buffer
	//
	// Returns:
	//   - *wgpu.BufferDescriptor: descriptor sized for every joint, not mapped at creation
	BufferDescriptor(label string) *wgpu.BufferDescriptor

	// ShaderSource returns the WGSL declaration of one palette entry, for inclusion in skinning shaders.
	//
	// Returns:
	//   - string: the BoneMatrix struct source
	ShaderSource() string
}

// BufferWriter writes bytes into a GPU buffer. *wgpu.Queue satisfies it.
type BufferWriter interface {
	WriteBuffer(buffer *wgpu.Buffer, bufferOffset uint64, data []byte) error
}

// Upload writes every staged write into buf, stopping at the first failure.
//
// Parameters:
//   - queue: the queue performing the writes
//   - buf: the palette storage buffer
//   - writes: the writes returned by Stage
//
// Returns:
//   - error: error if a write fails
func Upload(queue BufferWriter, buf *wgpu.Buffer, writes []BufferWrite) error {
	if queue == nil {
		return fmt.Errorf("palette: upload requires a queue")
	}
	for _, w := range writes {
		if len(w.Data) == 0 {
			continue
		}
		if err := queue.WriteBuffer(buf, w.Offset, w.Data); err != nil {
			return fmt.Errorf("palette: write binding %d at offset %d: %w", w.Binding, w.Offset, err)
		}
	}
	return nil
}

var _ Palette = &palette{}

// NewPalette creates a Palette over the given skeleton and joint list.
// Missing inverse bind matrices default to identity. Resolve is called once before returning.
//
// Parameters:
//   - s: the skeleton providing bone matrices
//   - jointNames: the joint names in shader index order
//   - inverseBind: one column-major inverse bind matrix per joint
//   - options: functional options for configuring the palette
//
// Returns:
//   - Palette: the newly created palette
func NewPalette(s skeleton.Skeleton, jointNames []string, inverseBind [][16]float32, options ...PaletteBuilderOption) Palette {
	if s == nil {
		panic("palette: NewPalette requires a non-nil Skeleton")
	}

	p := &palette{
		skeleton:    s,
		jointNames:  append([]string(nil), jointNames...),
		inverseBind: make([]mgl32.Mat4, len(jointNames)),
		bones:       make([]*skeleton.Bone, len(jointNames)),
	}
	for i := range p.inverseBind {
		if i < len(inverseBind) {
			p.inverseBind[i] = mgl32.Mat4(inverseBind[i])
		} else {
			p.inverseBind[i] = mgl32.Ident4()
		}
	}
	for _, opt := range options {
		opt(p)
	}

	p.staging = make([]byte, p.BufferSize())
	p.Resolve()
	return p
}

func (p *palette) Resolve() int {
	found := 0
	for i, name := range p.jointNames {
		p.bones[i] = p.skeleton.Bone(name)
		if p.bones[i] != nil {
			found++
		}
	}
	return found
}

func (p *palette) Stage(stamp common.FrameStamp) []BufferWrite {
	p.skeleton.UpdateBoneMatrices(stamp)

	size := p.matrix.Size()
	for i, b := range p.bones {
		m := mgl32.Ident4()
		if b != nil {
			m = b.MatrixInSkeletonSpace().Mul4(p.inverseBind[i])
		}
		p.matrix.Joint = m
		p.matrix.marshalInto(p.staging[i*size : (i+1)*size])
	}

	return []BufferWrite{{
		Binding: p.binding,
		Offset:  0,
		Data:    p.staging,
	}}
}

func (p *palette) JointCount() int {
	return len(p.jointNames)
}

func (p *palette) BufferSize() uint64 {
	return uint64(len(p.jointNames) * p.matrix.Size())
}

func (p *palette) BufferUsage() wgpu.BufferUsage {
	return wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst
}

func (p *palette) BufferDescriptor(label string) *wgpu.BufferDescriptor {
	return &wgpu.BufferDescriptor{
		Label:            label,
		Size:             p.BufferSize(),
		Usage:            p.BufferUsage(),
		MappedAtCreation: false,
	}
}

func (p *palette) ShaderSource() string {
	return GPUBoneMatrixSource
}
