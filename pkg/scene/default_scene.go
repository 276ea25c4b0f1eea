package scene

import (
	"github.com/df07/go-blinn-raytracer/pkg/core"
	"github.com/df07/go-blinn-raytracer/pkg/geometry"
	"github.com/df07/go-blinn-raytracer/pkg/material"
)

// NewDefaultScene creates the default scene: three small colored
// spheres, a red checkered ground plane, two boxes (one mirrored) and
// a large mirror sphere, lit by a single white light up and behind the
// camera
func NewDefaultScene() *Scene {
	s := New()
	s.Camera = Camera{
		Position:  core.NewVec3(0.5, 2.5, -1),
		Up:        core.NewVec3(0, 1, 0.2).Normalize(),
		Right:     core.NewVec3(1.33, 0, 0),
		FocalDist: 2.0,
	}

	red := material.NewBasic(core.NewVec3(1, 0, 0))
	red.Shininess = 64.0
	blue := material.NewBasic(core.NewVec3(0, 0, 1))
	green := material.NewBasic(core.NewVec3(0, 1, 0))
	mirror := material.NewMirror()

	s.Add(geometry.NewSphere(core.NewVec3(-2, 1.5, 7), 0.5, red))
	s.Add(geometry.NewSphere(core.NewVec3(-1, -0.5, 8), 0.5, blue))
	s.Add(geometry.NewSphere(core.NewVec3(-3, -0.5, 5), 0.5, green))
	s.Add(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), red))
	s.Add(geometry.NewBox(core.NewVec3(-2.5, -1, 6), core.NewVec3(-1.5, 1, 10), mirror))
	s.Add(geometry.NewBox(core.NewVec3(2, -1, 5), core.NewVec3(3, 1, 6), green))
	s.Add(geometry.NewSphere(core.NewVec3(1, 0, 8), 1.0, mirror))

	s.Lights = []Light{
		{Position: core.NewVec3(20, 20, -20), Color: core.NewVec3(1, 1, 1)},
	}

	return s
}

// NewThreeSpheresScene creates a minimal scene with three matte
// spheres above a checkered plane, seen from the origin
func NewThreeSpheresScene() *Scene {
	s := New()
	s.Camera = Camera{
		Position:  core.NewVec3(0, 0, -1),
		Up:        core.NewVec3(0, 1, 0),
		Right:     core.NewVec3(1.33, 0, 0),
		FocalDist: 2.0,
	}

	s.Add(geometry.NewSphere(core.NewVec3(-1.5, 0, 6), 0.75, material.NewBasic(core.NewVec3(1, 0, 0))))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0.25, 7), 1.0, material.NewBasic(core.NewVec3(0, 1, 0))))
	s.Add(geometry.NewSphere(core.NewVec3(1.5, 0, 6), 0.75, material.NewBasic(core.NewVec3(0, 0, 1))))
	s.Add(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), material.NewBasic(core.NewVec3(1, 1, 1))))

	s.Lights = []Light{
		{Position: core.NewVec3(10, 15, -10), Color: core.NewVec3(1, 1, 1)},
	}

	return s
}
