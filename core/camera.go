package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a Y-up perspective camera looking from Position at Target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32 // degrees
	Aspect   float32
	Near     float32
	Far      float32
}

func NewCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{0, 8, 20},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     75,
		Aspect:   16.0 / 9.0,
		Near:     0.1,
		Far:      1000,
	}
}

func (c *Camera) GetForward() mgl32.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

func (c *Camera) GetRight() mgl32.Vec3 {
	return c.GetForward().Cross(c.Up).Normalize()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

// PickRay unprojects a normalized device coordinate (x right, y up, both in [-1, 1])
// into a world-space ray starting on the near plane.
func (c *Camera) PickRay(ndc mgl32.Vec2) Ray {
	inv := c.GetViewProjection().Inv()
	near := unproject(inv, mgl32.Vec3{ndc.X(), ndc.Y(), -1})
	far := unproject(inv, mgl32.Vec3{ndc.X(), ndc.Y(), 1})
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// Project maps a world point to normalized device coordinates. It reports false for
// points behind the camera.
func (c *Camera) Project(p mgl32.Vec3) (mgl32.Vec2, bool) {
	clip := c.GetViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}, true
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec3) mgl32.Vec3 {
	v := inv.Mul4x1(ndc.Vec4(1))
	return v.Vec3().Mul(1 / v.W())
}
