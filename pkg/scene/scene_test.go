package scene

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-blinn-raytracer/pkg/core"
)

func TestCamera_Forward(t *testing.T) {
	tests := []struct {
		name     string
		camera   Camera
		expected core.Vec3
	}{
		{
			name: "axis-aligned frame looks toward +z",
			camera: Camera{
				Position: core.NewVec3(0, 0, 0),
				Up:       core.NewVec3(0, 1, 0),
				Right:    core.NewVec3(1, 0, 0),
			},
			expected: core.NewVec3(0, 0, 1),
		},
		{
			name: "forward is normalized regardless of right length",
			camera: Camera{
				Position: core.NewVec3(0, 0, -1),
				Up:       core.NewVec3(0, 1, 0),
				Right:    core.NewVec3(1.33, 0, 0),
			},
			expected: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forward := tt.camera.Forward()
			tolerance := 1e-12
			if math.Abs(forward.X-tt.expected.X) > tolerance ||
				math.Abs(forward.Y-tt.expected.Y) > tolerance ||
				math.Abs(forward.Z-tt.expected.Z) > tolerance {
				t.Errorf("Expected forward %v, got %v", tt.expected, forward)
			}
		})
	}
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"three-spheres scene", "three-spheres", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CreateScene(tt.sceneName)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene %q, but got none", tt.sceneName)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene %q: %v", tt.sceneName, err)
			}
			if len(s.Objects) == 0 {
				t.Error("Expected scene to contain objects")
			}
			if len(s.Lights) == 0 {
				t.Error("Expected scene to contain at least one light")
			}
			if s.Camera.FocalDist <= 0 {
				t.Errorf("Expected positive focal distance, got %f", s.Camera.FocalDist)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	names := make([]string, 0)
	for _, info := range ListScenes() {
		if info.Description == "" {
			t.Errorf("Scene %q has no description", info.Name)
		}
		names = append(names, info.Name)
	}

	expected := []string{"default", "three-spheres"}
	if diff := cmp.Diff(expected, names); diff != "" {
		t.Errorf("ListScenes names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultScene_Contents(t *testing.T) {
	s := NewDefaultScene()

	if s.Camera.Position != core.NewVec3(0.5, 2.5, -1) {
		t.Errorf("Unexpected camera position %v", s.Camera.Position)
	}
	if got := len(s.Objects); got != 7 {
		t.Errorf("Expected 7 objects in the default scene, got %d", got)
	}
	if got := len(s.Lights); got != 1 {
		t.Errorf("Expected 1 light in the default scene, got %d", got)
	}
}
