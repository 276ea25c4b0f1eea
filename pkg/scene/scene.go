package scene

import (
	"github.com/df07/go-blinn-raytracer/pkg/core"
	"github.com/df07/go-blinn-raytracer/pkg/geometry"
)

// Camera defines the image plane for primary ray generation.
// Up and Right should be non-parallel, and ideally orthogonal for an
// undistorted image (not enforced).
type Camera struct {
	Position  core.Vec3
	Up        core.Vec3
	Right     core.Vec3
	FocalDist float64 // Distance from the position to the image plane
}

// Forward derives the view direction from the camera frame
func (c Camera) Forward() core.Vec3 {
	return c.Right.Cross(c.Up).Normalize()
}

// Light is a point light with no attenuation
type Light struct {
	Position core.Vec3
	Color    core.Vec3
}

// Scene aggregates the camera, lights and objects for a render.
// A scene is assembled once and treated as read-only while tracing;
// object order matters only when two intersections tie exactly, in
// which case the earlier object wins.
type Scene struct {
	Camera  Camera
	Lights  []Light
	Objects []geometry.Shape
}

// New creates an empty scene with a neutral camera at z=-1 looking
// toward +Z with a 4:3 image plane
func New() *Scene {
	return &Scene{
		Camera: Camera{
			Position:  core.NewVec3(0, 0, -1),
			Up:        core.NewVec3(0, 1, 0),
			Right:     core.NewVec3(1.33, 0, 0),
			FocalDist: 2.0,
		},
	}
}

// Add appends a shape to the scene
func (s *Scene) Add(shape geometry.Shape) {
	s.Objects = append(s.Objects, shape)
}
