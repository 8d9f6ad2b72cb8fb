package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAABB_IntersectsIsInclusive(t *testing.T) {
	a := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	touching := AABB{Min: mgl32.Vec3{1, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}
	apart := AABB{Min: mgl32.Vec3{1.01, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}

	if !a.Intersects(touching) || !touching.Intersects(a) {
		t.Errorf("touching boxes should intersect")
	}
	if a.Intersects(apart) {
		t.Errorf("separated boxes should not intersect")
	}
	if a.Intersects(EmptyAABB()) {
		t.Errorf("empty box should never intersect")
	}
}

func TestAABB_UnionAndTransform(t *testing.T) {
	box := EmptyAABB().
		ExpandByPoint(mgl32.Vec3{-1, 0, 0}).
		ExpandByPoint(mgl32.Vec3{1, 2, 0})
	if box.Min != (mgl32.Vec3{-1, 0, 0}) || box.Max != (mgl32.Vec3{1, 2, 0}) {
		t.Fatalf("unexpected bounds %v", box)
	}

	if got := box.Union(EmptyAABB()); got != box {
		t.Errorf("union with empty changed the box: %v", got)
	}

	moved := box.Transform(mgl32.Translate3D(10, 0, 0))
	if !near(moved.Min, mgl32.Vec3{9, 0, 0}, 1e-4) || !near(moved.Max, mgl32.Vec3{11, 2, 0}, 1e-4) {
		t.Errorf("unexpected translated bounds %v", moved)
	}

	// A quarter turn around Y swaps the X and Z extents.
	turned := BoxAround(mgl32.Vec3{}, mgl32.Vec3{2, 1, 0.5}).Transform(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	if !near(turned.Max, mgl32.Vec3{0.5, 1, 2}, 1e-4) {
		t.Errorf("unexpected rotated bounds %v", turned)
	}
}

func TestAABB_CenterSizeContains(t *testing.T) {
	box := BoxAround(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 1, 1})
	if box.Center() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("center = %v", box.Center())
	}
	if box.Size() != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("size = %v", box.Size())
	}
	if !box.ContainsPoint(mgl32.Vec3{2, 3, 4}) {
		t.Errorf("corner should be contained")
	}
	if box.ContainsPoint(mgl32.Vec3{2.5, 2, 3}) {
		t.Errorf("outside point reported as contained")
	}
	if EmptyAABB().Size() != (mgl32.Vec3{}) {
		t.Errorf("empty box should have zero size")
	}
}

func near(a, b mgl32.Vec3, tol float32) bool {
	for i := 0; i < 3; i++ {
		if mgl32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
