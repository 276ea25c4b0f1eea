package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/glog"

	"github.com/df07/go-blinn-raytracer/pkg/core"
	"github.com/df07/go-blinn-raytracer/pkg/ppm"
	"github.com/df07/go-blinn-raytracer/pkg/renderer"
	"github.com/df07/go-blinn-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene to render (see -list)")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	out := flag.String("out", "raytracing.ppm", "Output file path")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	depth := flag.Int("depth", 3, "Maximum reflection bounces")
	workers := flag.Int("workers", 0, "Parallel render workers (0 = CPU count)")
	list := flag.Bool("list", false, "List available scenes and exit")
	flag.Parse()
	defer glog.Flush()

	if *list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("%-14s %s\n", info.Name, info.Description)
		}
		return
	}

	s, err := scene.CreateScene(*sceneName)
	if err != nil {
		glog.Exitf("Selecting scene: %v", err)
	}

	config := renderer.Config{MaxDepth: *depth, NumWorkers: *workers}
	rt := renderer.NewRaytracer(s, *width, *height, config, renderer.NewDefaultLogger())

	glog.Infof("Rendering scene %q at %dx%d", *sceneName, *width, *height)
	start := time.Now()
	pixels := rt.Render()
	glog.Infof("Render completed in %v", time.Since(start))

	if err := writeOutput(*format, *out, rt, pixels); err != nil {
		glog.Exitf("Writing output: %v", err)
	}
	glog.Infof("Render saved as %s", *out)
}

// writeOutput serializes the framebuffer in the requested format
func writeOutput(format, path string, rt *renderer.Raytracer, pixels []core.Vec3) error {
	switch format {
	case "png":
		return gg.SavePNG(path, rt.ToImage(pixels))
	case "ppm":
		w, h := rt.Size()
		return ppm.WriteFile(path, pixels, w, h)
	default:
		return fmt.Errorf("unknown output format %q (want 'ppm' or 'png')", format)
	}
}
