package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-blinn-raytracer/pkg/core"
	"github.com/df07/go-blinn-raytracer/pkg/geometry"
	"github.com/df07/go-blinn-raytracer/pkg/scene"
)

const (
	// Offset applied to secondary ray origins to avoid immediately
	// re-intersecting the originating surface
	epsilonBias = 1e-3

	ambientStrength = 0.1
)

// Flat sky color returned whenever a ray escapes the scene
var backgroundColor = core.NewVec3(0, 0.4, 1.0)

// Config contains rendering configuration
type Config struct {
	MaxDepth   int // Maximum reflective bounces per primary ray
	NumWorkers int // Parallel row workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   3,
		NumWorkers: 0,
	}
}

// Raytracer renders a scene with recursive Blinn-Phong shading
type Raytracer struct {
	scene  *scene.Scene
	width  int
	height int
	config Config
	logger core.Logger
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// NewRaytracer creates a new raytracer for the given scene and image size
func NewRaytracer(s *scene.Scene, width, height int, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  s,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// Size returns the image dimensions in pixels
func (rt *Raytracer) Size() (width, height int) {
	return rt.width, rt.height
}

// Cast finds the nearest intersection of the ray with the scene.
// Selection is by strict less-than on distance, so the first object in
// scene order wins exact ties.
func (rt *Raytracer) Cast(ray core.Ray) (geometry.Intersection, bool) {
	closest := math.Inf(1)
	var nearest geometry.Intersection
	found := false

	for _, obj := range rt.scene.Objects {
		if isect, ok := obj.Intersect(ray); ok && isect.T < closest {
			closest = isect.T
			nearest = isect
			found = true
		}
	}

	return nearest, found
}

// blinnPhong computes the direct lighting term for one light: a
// Lambertian diffuse term plus a half-vector specular term. The view
// direction is taken as looking from the world origin, not from the
// camera position.
func blinnPhong(lightDir core.Vec3, isect geometry.Intersection) core.Vec3 {
	mat := isect.Material

	diffuse := math.Max(0, lightDir.Dot(isect.Normal))
	specular := 0.0
	if diffuse > 0 {
		viewDir := isect.Point.Negate().Normalize()
		halfDir := lightDir.Add(viewDir).Normalize()
		specAngle := math.Max(0, halfDir.Dot(isect.Normal))
		specular = math.Pow(specAngle, mat.Shininess)
	}

	return mat.Color.Multiply(diffuse).Add(mat.SpecularColor.Multiply(specular))
}

// Shade computes the color seen along a ray, recursing into mirror
// reflections until the depth budget is exhausted. The returned color
// is not clamped.
func (rt *Raytracer) Shade(ray core.Ray, depth int) core.Vec3 {
	isect, ok := rt.Cast(ray)
	if !ok {
		return backgroundColor
	}

	pixel := core.Vec3{}
	for _, light := range rt.scene.Lights {
		lightDir := light.Position.Subtract(isect.Point).Normalize()

		// Occluded lights contribute nothing beyond ambient
		shadowRay := core.NewRay(isect.Point.Add(lightDir.Multiply(epsilonBias)), lightDir)
		if _, blocked := rt.Cast(shadowRay); !blocked {
			pixel = pixel.Add(blinnPhong(lightDir, isect))
		}

		pixel = pixel.Add(isect.Material.Color.Multiply(ambientStrength))

		if isect.Material.Reflection > 0 && depth > 0 {
			dir := ray.Direction
			reflectDir := dir.Subtract(isect.Normal.Multiply(2 * dir.Dot(isect.Normal)))
			reflectRay := core.NewRay(isect.Point.Add(reflectDir.Multiply(epsilonBias)), reflectDir)
			// The reflected color replaces, rather than adds to,
			// the light accumulated so far.
			pixel = rt.Shade(reflectRay, depth-1).Multiply(isect.Material.Reflection)
		}
	}

	return pixel
}

// renderRow traces every pixel of image row y into the framebuffer.
// Row order is flipped so that +Y in world space is up in the image.
func (rt *Raytracer) renderRow(y int, pixels []core.Vec3) {
	camera := rt.scene.Camera
	forward := camera.Forward()

	for x := 0; x < rt.width; x++ {
		u := float64(x)*2/float64(rt.width) - 1
		v := float64(y)*2/float64(rt.height) - 1

		pointOnPlane := camera.Position.
			Add(forward.Multiply(camera.FocalDist)).
			Add(camera.Right.Multiply(u)).
			Add(camera.Up.Multiply(v))
		ray := core.NewRay(camera.Position, pointOnPlane.Subtract(camera.Position).Normalize())

		pixels[(rt.height-1-y)*rt.width+x] = rt.Shade(ray, rt.config.MaxDepth)
	}
}

// Render traces the whole image and returns a row-major framebuffer
// with row 0 at the top. Rows are distributed across the worker pool;
// every pixel depends only on the immutable scene, so the result is
// identical to a sequential render.
func (rt *Raytracer) Render() []core.Vec3 {
	pixels := make([]core.Vec3, rt.width*rt.height)

	pool := NewWorkerPool(rt, rt.config.NumWorkers)
	start := time.Now()
	pool.Render(pixels)
	rt.logger.Printf("Rendered %dx%d with %d workers in %v\n",
		rt.width, rt.height, pool.NumWorkers(), time.Since(start))

	return pixels
}

// ToImage converts a framebuffer into an RGBA image for PNG output
func (rt *Raytracer) ToImage(pixels []core.Vec3) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			r, g, b := pixels[y*rt.width+x].ToRGB8()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
