package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-blinn-raytracer/pkg/core"
)

// WorkerPool fans image rows out to parallel workers. Each row writes
// a disjoint slice of the framebuffer, so no synchronization beyond
// the task channel is needed and the output is bit-identical to a
// sequential render. One worker degenerates to the sequential model.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
	rowQueue   chan int
	wg         sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of
// workers (0 or less means one per CPU)
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
		rowQueue:   make(chan int, raytracer.height),
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Render dispatches every image row to the workers and blocks until
// the framebuffer is complete
func (wp *WorkerPool) Render(pixels []core.Vec3) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(pixels)
	}

	for y := 0; y < wp.raytracer.height; y++ {
		wp.rowQueue <- y
	}
	close(wp.rowQueue)

	wp.wg.Wait()
}

// run is the main worker loop
func (wp *WorkerPool) run(pixels []core.Vec3) {
	defer wp.wg.Done()
	for y := range wp.rowQueue {
		wp.raytracer.renderRow(y, pixels)
	}
}
