package geometry

import (
	"math"

	"github.com/df07/go-blinn-raytracer/pkg/core"
	"github.com/df07/go-blinn-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal,
// shaded with a procedural checkerboard pattern in the X-Z plane
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector, expected unit length (not enforced)
	Mat    material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{Point: point, Normal: normal, Mat: mat}
}

// Material returns the plane's surface material without the
// checkerboard applied
func (p *Plane) Material() material.Material {
	return p.Mat
}

// Intersect tests if a ray intersects the plane
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if denominator == 0 {
		return Intersection{}, false // ray is parallel to the plane
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= 0 {
		return Intersection{}, false
	}

	point := ray.At(t)

	// Checkerboard of half-unit tiles: even parity zeroes the base
	// color, odd parity keeps it. The specular color is unaffected.
	mat := p.Mat
	parity := math.Mod(math.Floor(2*point.Z)+math.Floor(2*point.X), 2)
	mat.Color = mat.Color.Multiply(math.Abs(parity))

	return Intersection{
		Point:    point,
		Normal:   p.Normal,
		T:        t,
		Material: mat,
	}, true
}
