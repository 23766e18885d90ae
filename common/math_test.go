package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestComposeTRSOrder(t *testing.T) {
	q := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1})
	m := ComposeTRS([3]float32{5, 0, 0}, [4]float32{q.V[0], q.V[1], q.V[2], q.W}, [3]float32{2, 2, 2})

	// Scale, then rotate +X onto +Y, then translate.
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{5, 2, 0, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ComposeTRS * (1,0,0) = %v, want %v", got, want)
	}
}

func TestComposeTRSZeroQuatIsIdentity(t *testing.T) {
	got := ComposeTRS([3]float32{1, 2, 3}, [4]float32{}, [3]float32{1, 1, 1})
	if !got.ApproxEqualThreshold(mgl32.Translate3D(1, 2, 3), 1e-6) {
		t.Errorf("ComposeTRS with zero quat = %v, want pure translation", got)
	}
}

func TestTranslation(t *testing.T) {
	got := Translation(mgl32.Translate3D(4, 5, 6).Mul4(mgl32.HomogRotate3DX(1)))
	if got != [3]float32{4, 5, 6} {
		t.Errorf("Translation = %v, want [4 5 6]", got)
	}
}

func TestFrameStampNext(t *testing.T) {
	var f FrameStamp
	f = f.Next(0.5).Next(0.25)
	if f.FrameNumber != 2 || f.SimulationTime != 0.75 {
		t.Errorf("Next twice = %+v, want frame 2 at 0.75s", f)
	}
}
