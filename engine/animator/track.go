package animator

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-mw/common"
	"github.com/Carmen-Shannon/oxy-mw/engine/model"
	"github.com/Carmen-Shannon/oxy-mw/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Track tweens the local matrix of one hierarchy node between two poses.
// Translation and scale are tweened per component; rotation is slerped by a tweened factor
// so that the easing function shapes every channel the same way.
type Track struct {
	hierarchy transform.Hierarchy
	node      transform.Handle

	fromRot, toRot mgl32.Quat
	translation    [3]*gween.Tween
	scale          [3]*gween.Tween
	blend          *gween.Tween

	loop bool
	done bool
}

// NewTrack creates a Track driving node from one pose to another.
//
// Parameters:
//   - h: the hierarchy that owns node
//   - node: the node whose local matrix is driven
//   - from: the starting pose
//   - to: the final pose
//   - duration: the tween length in seconds (must be > 0)
//   - fn: the easing function, ease.Linear when nil
//   - loop: whether the track restarts from the beginning once finished
//
// Returns:
//   - *Track: the new track
//   - error: error if the node is not part of h or the duration is not positive
func NewTrack(h transform.Hierarchy, node transform.Handle, from, to model.Transform, duration float32, fn ease.TweenFunc, loop bool) (*Track, error) {
	if h == nil || !h.Valid(node) {
		return nil, fmt.Errorf("animator: track target %d: %w", node, transform.ErrInvalidHandle)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("animator: track duration %v must be positive", duration)
	}
	if fn == nil {
		fn = ease.Linear
	}

	t := &Track{
		hierarchy: h,
		node:      node,
		fromRot:   toQuat(from.Rotation),
		toRot:     toQuat(to.Rotation),
		blend:     gween.New(0, 1, duration, fn),
		loop:      loop,
	}
	for i := range 3 {
		t.translation[i] = gween.New(from.Translation[i], to.Translation[i], duration, fn)
		t.scale[i] = gween.New(from.Scale[i], to.Scale[i], duration, fn)
	}
	return t, nil
}

// Node returns the handle of the driven node.
func (t *Track) Node() transform.Handle {
	return t.node
}

// Done reports whether a non-looping track has reached its final pose.
func (t *Track) Done() bool {
	return t.done
}

// Advance moves the track forward by dt seconds and writes the resulting local matrix.
// Returns true once a non-looping track has finished; looping tracks never finish.
func (t *Track) Advance(dt float32) bool {
	if t.done {
		return true
	}

	var translation, scale [3]float32
	finished := true
	for i := range 3 {
		var f1, f2 bool
		translation[i], f1 = t.translation[i].Update(dt)
		scale[i], f2 = t.scale[i].Update(dt)
		finished = finished && f1 && f2
	}
	factor, f := t.blend.Update(dt)
	finished = finished && f

	q := mgl32.QuatSlerp(t.fromRot, t.toRot, factor)
	m := common.ComposeTRS(translation, [4]float32{q.V[0], q.V[1], q.V[2], q.W}, scale)
	if err := t.hierarchy.SetLocalMatrix(t.node, m); err != nil {
		t.done = true
		return true
	}

	if finished {
		if t.loop {
			t.reset()
			return false
		}
		t.done = true
	}
	return t.done
}

// reset rewinds every tween to its starting value.
func (t *Track) reset() {
	for i := range 3 {
		t.translation[i].Reset()
		t.scale[i].Reset()
	}
	t.blend.Reset()
}

// toQuat converts an (x, y, z, w) quaternion, treating a zero quaternion as identity.
func toQuat(r [4]float32) mgl32.Quat {
	q := mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}}
	if q.Len() < 1e-6 {
		return mgl32.QuatIdent()
	}
	return q.Normalize()
}
