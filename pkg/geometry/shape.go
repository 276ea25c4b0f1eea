package geometry

import (
	"github.com/df07/go-blinn-raytracer/pkg/core"
	"github.com/df07/go-blinn-raytracer/pkg/material"
)

// Intersection contains information about a ray-object intersection.
// Intersections are ephemeral: produced by a single Intersect call and
// consumed immediately by the shader, never persisted.
type Intersection struct {
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Unit surface normal, not necessarily front-facing
	T        float64           // Distance along the (unit) ray direction
	Material material.Material // Material resolved at the hit point
}

// Shape is the capability set shared by all primitives: a ray
// intersection test and an associated surface material.
type Shape interface {
	Intersect(ray core.Ray) (Intersection, bool)
	Material() material.Material
}
