package palette

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUBoneMatrixSource is the canonical WGSL definition of the BoneMatrix struct.
// Matches GPUBoneMatrix layout exactly (64 bytes, std430 aligned).
//
//go:embed assets/bone_matrix.wgsl
var GPUBoneMatrixSource string

// GPUBoneMatrix is the GPU-aligned skinning matrix of one joint.
// Holds skeletonSpace * inverseBind in column-major order.
// Size: 64 bytes (std430 aligned).
type GPUBoneMatrix struct {
	Joint [16]float32 // offset 0, size 64 (mat4x4<f32>)
}

// Size returns the size of the GPUBoneMatrix struct in bytes.
//
// Returns:
//   - int: The size of the struct in bytes.
func (g *GPUBoneMatrix) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUBoneMatrix struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUBoneMatrix) Marshal() []byte {
	buf := make([]byte, 64)
	g.marshalInto(buf)
	return buf
}

func (g *GPUBoneMatrix) marshalInto(buf []byte) {
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.Joint[i]))
	}
}

// BufferWrite describes a single GPU buffer write targeting a binding at a given byte offset.
type BufferWrite struct {
	Binding int
	Offset  uint64
	Data    []byte
}
