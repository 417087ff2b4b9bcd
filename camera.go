package vox

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/vox/pga"
)

// Camera supplies the view transform and projection parameters for a
// draw. Implementations must be safe for concurrent reads; the
// pipeline never mutates them.
type Camera interface {
	// ViewTransform maps a world-space point into camera-local space,
	// in which local +X is forward.
	ViewTransform(world pga.Point) pga.Point

	// Pose returns the camera's world pose as a normalized motor.
	Pose() pga.Motor

	// Proj returns the scalar projection parameters.
	Proj() Projection
}

// MotorCamera is a camera with a full rigid-body pose: rotation and
// translation as a single motor. The view transform applies the
// pose's reverse, so the motor is the camera-to-world motion.
type MotorCamera struct {
	Motor      pga.Motor
	Projection Projection
}

func (c MotorCamera) ViewTransform(world pga.Point) pga.Point {
	return world.Transform(c.Motor.Reverse())
}

func (c MotorCamera) Pose() pga.Motor { return c.Motor }

func (c MotorCamera) Proj() Projection { return c.Projection }

// PositionCamera is the translation-only variant: a plain position
// with no rotation. The view transform is vector subtraction, cheaper
// than the motor sandwich when the camera never turns.
type PositionCamera struct {
	Position   mgl32.Vec3
	Projection Projection
}

func (c PositionCamera) ViewTransform(world pga.Point) pga.Point {
	return pga.PointFromVec3(world.Vec3().Sub(c.Position))
}

func (c PositionCamera) Pose() pga.Motor { return pga.Translation(c.Position) }

func (c PositionCamera) Proj() Projection { return c.Projection }
