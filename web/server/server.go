package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/df07/go-blinn-raytracer/pkg/renderer"
	"github.com/df07/go-blinn-raytracer/pkg/scene"
)

// Renders larger than this are rejected rather than queued
const maxDimension = 4096

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// New creates a new render server
func New(port int) *Server {
	return &Server{port: port}
}

// Start runs the server until it fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	glog.Infof("Starting render server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler builds the route table, split out so tests can drive the
// server through httptest
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scene.ListScenes()); err != nil {
		glog.Errorf("Encoding scene list: %v", err)
	}
}

// renderParams are the query parameters accepted by /api/render
type renderParams struct {
	scene  string
	width  int
	height int
	depth  int
}

func parseRenderParams(query url.Values) (renderParams, error) {
	params := renderParams{scene: "default", width: 800, height: 600, depth: 3}

	if v := query.Get("scene"); v != "" {
		params.scene = v
	}
	for _, p := range []struct {
		key   string
		value *int
	}{
		{"width", &params.width},
		{"height", &params.height},
		{"depth", &params.depth},
	} {
		v := query.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, fmt.Errorf("invalid %s %q", p.key, v)
		}
		*p.value = n
	}

	if params.width < 1 || params.width > maxDimension ||
		params.height < 1 || params.height > maxDimension {
		return params, fmt.Errorf("dimensions %dx%d out of range [1,%d]", params.width, params.height, maxDimension)
	}
	if params.depth < 0 {
		return params, fmt.Errorf("depth %d must not be negative", params.depth)
	}
	return params, nil
}

// glogLogger adapts glog to the renderer's Logger interface
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	params, err := parseRenderParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sc, err := scene.CreateScene(params.scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	glog.Infof("[%s] rendering %q at %dx%d depth %d", requestID, params.scene, params.width, params.height, params.depth)
	start := time.Now()

	config := renderer.Config{MaxDepth: params.depth}
	rt := renderer.NewRaytracer(sc, params.width, params.height, config, glogLogger{})
	img := rt.ToImage(rt.Render())

	glog.Infof("[%s] render completed in %v", requestID, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Request-Id", requestID)
	if err := png.Encode(w, img); err != nil {
		glog.Errorf("[%s] encoding response: %v", requestID, err)
	}
}
