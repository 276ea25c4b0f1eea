package material

import (
	"github.com/df07/go-blinn-raytracer/pkg/core"
)

// Material describes how a surface responds to light under the
// Blinn-Phong model. Materials are plain values: every shape owns its
// own copy and intersection results may carry a modified copy.
type Material struct {
	Shininess     float64   // Specular exponent, must be > 0
	SpecularColor core.Vec3 // Color of specular highlights
	Color         core.Vec3 // Diffuse base color
	Reflection    float64   // In [0,1]: 0 = fully diffuse, 1 = perfect mirror
}

// NewBasic creates a matte material with the given base color,
// a white specular highlight and no reflection.
func NewBasic(color core.Vec3) Material {
	return Material{
		Shininess:     16.0,
		SpecularColor: core.NewVec3(1, 1, 1),
		Color:         color,
		Reflection:    0,
	}
}

// NewMirror creates a white, mostly reflective material.
func NewMirror() Material {
	return Material{
		Shininess:     32.0,
		SpecularColor: core.NewVec3(1, 1, 1),
		Color:         core.NewVec3(1, 1, 1),
		Reflection:    0.7,
	}
}
