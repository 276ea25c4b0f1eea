package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-blinn-raytracer/pkg/renderer"
	"github.com/df07/go-blinn-raytracer/pkg/scene"
)

func TestWriteOutput(t *testing.T) {
	s, err := scene.CreateScene("three-spheres")
	if err != nil {
		t.Fatalf("Creating scene: %v", err)
	}
	rt := renderer.NewRaytracer(s, 4, 3, renderer.Config{MaxDepth: 1, NumWorkers: 1}, nil)
	pixels := rt.Render()

	tests := []struct {
		name        string
		format      string
		filename    string
		expectError bool
	}{
		{"ppm output", "ppm", "out.ppm", false},
		{"png output", "png", "out.png", false},
		{"unknown format", "bmp", "out.bmp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			err := writeOutput(tt.format, path, rt, pixels)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for format %q, but got none", tt.format)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for format %q: %v", tt.format, err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Output file missing: %v", err)
			}
			if info.Size() == 0 {
				t.Error("Output file is empty")
			}
		})
	}
}

func TestWriteOutput_PPMHeader(t *testing.T) {
	s, _ := scene.CreateScene("three-spheres")
	rt := renderer.NewRaytracer(s, 2, 2, renderer.Config{MaxDepth: 1, NumWorkers: 1}, nil)
	pixels := rt.Render()

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := writeOutput("ppm", path, rt, pixels); err != nil {
		t.Fatalf("writeOutput failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3 2 2 255 ") {
		t.Errorf("Unexpected PPM header: %q", string(data[:20]))
	}
}
