// Package ppm serializes framebuffers into the plain-text PPM (P3)
// image format.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-blinn-raytracer/pkg/core"
)

// Encode writes the framebuffer as plain PPM: a header with the format
// tag, dimensions and maximum channel value, then three 8-bit channel
// values per pixel in row-major order, all space-separated on one line
func Encode(w io.Writer, pixels []core.Vec3, width, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("framebuffer has %d pixels, want %d for %dx%d", len(pixels), width*height, width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3 %d %d 255", width, height); err != nil {
		return err
	}
	for _, p := range pixels {
		r, g, b := p.ToRGB8()
		if _, err := fmt.Fprintf(bw, " %d %d %d", r, g, b); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile encodes the framebuffer into a new file at path.
// Failure to create the output artifact is the caller's fatal
// condition to handle.
func WriteFile(path string, pixels []core.Vec3, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, pixels, width, height); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
