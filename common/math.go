package common

import "github.com/go-gl/mathgl/mgl32"

// ComposeTRS builds a column-major local matrix from a decomposed transform.
// The result is T * R * S, so scale is applied first and translation last.
// A zero-length quaternion is treated as the identity rotation.
//
// Parameters:
//   - translation: the translation (x, y, z)
//   - rotation: the rotation quaternion (x, y, z, w)
//   - scale: the scale factor along each axis
//
// Returns:
//   - mgl32.Mat4: the composed matrix
func ComposeTRS(translation [3]float32, rotation [4]float32, scale [3]float32) mgl32.Mat4 {
	q := mgl32.Quat{W: rotation[3], V: mgl32.Vec3{rotation[0], rotation[1], rotation[2]}}
	if q.Len() < 1e-6 {
		q = mgl32.QuatIdent()
	} else {
		q = q.Normalize()
	}

	t := mgl32.Translate3D(translation[0], translation[1], translation[2])
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(q.Mat4()).Mul4(s)
}

// Translation returns the translation column of a column-major affine matrix.
//
// Parameters:
//   - m: the matrix to read
//
// Returns:
//   - [3]float32: the translation (x, y, z)
func Translation(m mgl32.Mat4) [3]float32 {
	return [3]float32{m[12], m[13], m[14]}
}
