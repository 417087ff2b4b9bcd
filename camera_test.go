package vox

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/vox/pga"
)

func TestPositionCameraMatchesTranslationMotor(t *testing.T) {
	pos := mgl32.Vec3{-5, 1.5, 2}
	proj := testProjection()
	motorCam := MotorCamera{Motor: pga.Translation(pos), Projection: proj}
	posCam := PositionCamera{Position: pos, Projection: proj}

	points := []mgl32.Vec3{
		{0, 0, 0},
		{1, 2, 3},
		{-0.5, 0.5, -0.5},
		{10, -4, 7},
	}
	for _, world := range points {
		a := motorCam.ViewTransform(pga.PointFromVec3(world)).Vec3()
		b := posCam.ViewTransform(pga.PointFromVec3(world)).Vec3()
		if math32.Abs(a.X()-b.X()) > 1e-5 ||
			math32.Abs(a.Y()-b.Y()) > 1e-5 ||
			math32.Abs(a.Z()-b.Z()) > 1e-5 {
			t.Errorf("view of %v: motor %v != position %v", world, a, b)
		}
	}
}

func TestMotorCameraRotatedView(t *testing.T) {
	// A camera turned a quarter in the xz plane sees a point on its
	// rotated forward axis as straight ahead.
	cam := MotorCamera{
		Motor:      pga.RotationXZ(math32.Pi / 2),
		Projection: testProjection(),
	}

	forward := pga.PointFromVec3(mgl32.Vec3{1, 0, 0}).Transform(cam.Motor).Vec3()
	view := cam.ViewTransform(pga.PointFromVec3(forward)).Vec3()

	want := mgl32.Vec3{1, 0, 0}
	if math32.Abs(view.X()-want.X()) > 1e-5 ||
		math32.Abs(view.Y()-want.Y()) > 1e-5 ||
		math32.Abs(view.Z()-want.Z()) > 1e-5 {
		t.Errorf("view of rotated forward = %v, want %v", view, want)
	}
}

func TestCameraPose(t *testing.T) {
	m := pga.Translation(mgl32.Vec3{1, 2, 3}).Mul(pga.RotationXY(0.5))
	if got := (MotorCamera{Motor: m}).Pose(); got != m {
		t.Errorf("MotorCamera.Pose = %+v, want %+v", got, m)
	}
	pos := mgl32.Vec3{4, 5, 6}
	if got, want := (PositionCamera{Position: pos}).Pose(), pga.Translation(pos); got != want {
		t.Errorf("PositionCamera.Pose = %+v, want %+v", got, want)
	}
}
