package geometry

import (
	"math"

	"github.com/df07/go-blinn-raytracer/pkg/core"
	"github.com/df07/go-blinn-raytracer/pkg/material"
)

// Box represents an axis-aligned box defined by two opposite corners
type Box struct {
	Min core.Vec3 // Component-wise <= Max (not enforced)
	Max core.Vec3
	Mat material.Material
}

// Face normals by axis. These are fixed constants, not sign-corrected
// for the ray direction; in particular both Z faces report (0,0,-1).
var faceNormals = [3]core.Vec3{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: -1},
}

// NewBox creates a new axis-aligned box
func NewBox(min, max core.Vec3, mat material.Material) *Box {
	return &Box{Min: min, Max: max, Mat: mat}
}

// Material returns the box's surface material
func (b *Box) Material() material.Material {
	return b.Mat
}

// Intersect tests if a ray intersects the box using the slab method,
// intersecting the per-axis entry/exit intervals
func (b *Box) Intersect(ray core.Ray) (Intersection, bool) {
	mins := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dirs := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	tnear := math.Inf(-1)
	tfar := math.Inf(1)
	normal := faceNormals[0]

	for axis := 0; axis < 3; axis++ {
		if dirs[axis] == 0 {
			// Parallel to this slab: a miss when the origin lies
			// outside it, otherwise the axis constrains nothing
			if origins[axis] < mins[axis] || origins[axis] > maxs[axis] {
				return Intersection{}, false
			}
			continue
		}

		t1 := (mins[axis] - origins[axis]) / dirs[axis]
		t2 := (maxs[axis] - origins[axis]) / dirs[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tnear {
			tnear = t1
			normal = faceNormals[axis]
		}
		if t2 < tfar {
			tfar = t2
		}
		if tnear > tfar || tfar < 0 {
			return Intersection{}, false
		}
	}

	return Intersection{
		Point:    ray.At(tnear),
		Normal:   normal,
		T:        tnear,
		Material: b.Mat,
	}, true
}
