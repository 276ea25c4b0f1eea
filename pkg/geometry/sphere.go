package geometry

import (
	"math"

	"github.com/df07/go-blinn-raytracer/pkg/core"
	"github.com/df07/go-blinn-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64 // Must be > 0 (not enforced)
	Mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Material returns the sphere's surface material
func (s *Sphere) Material() material.Material {
	return s.Mat
}

// Intersect tests if a ray intersects the sphere by projecting the
// center onto the ray
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	l := s.Center.Subtract(ray.Origin)

	// Projection of the center onto the ray; negative means the
	// sphere is entirely behind the origin
	tca := l.Dot(ray.Direction)
	if tca < 0 {
		return Intersection{}, false
	}

	// Squared distance from the center to the closest approach
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return Intersection{}, false
	}

	// Entry and exit points along the ray
	thc := math.Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t0 < 0 && t1 < 0 {
		return Intersection{}, false
	}

	// Prefer the entry point, falling back to the exit point when the
	// ray starts inside the sphere
	t := t0
	if t0 < 0 {
		t = t1
	}

	point := ray.At(t)
	return Intersection{
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(), // always outward from center
		T:        t,
		Material: s.Mat,
	}, true
}
