package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-blinn-raytracer/pkg/core"
	"github.com/df07/go-blinn-raytracer/pkg/material"
)

func testBox() *Box {
	return NewBox(core.NewVec3(-1, -1, 4), core.NewVec3(1, 1, 6), material.NewBasic(core.NewVec3(0, 1, 0)))
}

func TestBox_Intersect_FaceNormals(t *testing.T) {
	box := testBox()

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "front face along z",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			// The z face normal is a fixed constant, so the far face
			// viewed from behind reports the same (0,0,-1)
			name:           "back face along -z",
			rayOrigin:      core.NewVec3(0, 0, 10),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "x face",
			rayOrigin:      core.NewVec3(5, 0, 5),
			rayDirection:   core.NewVec3(-1, 0, 0),
			expectedT:      4.0,
			expectedNormal: core.NewVec3(1, 0, 0),
		},
		{
			name:           "y face",
			rayOrigin:      core.NewVec3(0, -5, 5),
			rayDirection:   core.NewVec3(0, 1, 0),
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			isect, ok := box.Intersect(ray)
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(isect.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, isect.T)
			}
			if isect.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, isect.Normal)
			}
		})
	}
}

func TestBox_Intersect_Miss(t *testing.T) {
	box := testBox()

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
	}{
		{"pointing away", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)},
		{"passing beside the box", core.NewVec3(3, 0, 0), core.NewVec3(0, 1, 1).Normalize()},
		{"axis-parallel outside x slab", core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 1)},
		{"axis-parallel outside y slab", core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 1)},
		{"axis-parallel outside z slab", core.NewVec3(0, 0, 2), core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			if isect, ok := box.Intersect(ray); ok {
				t.Errorf("Expected miss, but got hit at t=%f", isect.T)
			}
		})
	}
}

func TestBox_Intersect_ParallelInsideSlab(t *testing.T) {
	// A ray with a zero direction component whose origin lies inside
	// that slab is constrained only by the other two axes
	box := testBox()
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, 1))

	isect, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(isect.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", isect.T)
	}
}

func TestBox_Intersect_DiagonalRay(t *testing.T) {
	// Unit cube straddling the origin, hit along a diagonal
	box := NewBox(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5), material.NewBasic(core.NewVec3(0, 1, 0)))
	ray := core.NewRay(core.NewVec3(-2, -2, -2), core.NewVec3(1, 1, 1).Normalize())

	isect, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	// Entry at corner (-0.5,-0.5,-0.5), 1.5*sqrt(3) along the ray
	expectedT := 1.5 * math.Sqrt(3)
	if math.Abs(isect.T-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, isect.T)
	}
}
