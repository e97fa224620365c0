// Package server exposes the optics engine over a small JSON API: the
// component catalog for the workspace UI, the trace endpoint, a health check
// and Prometheus metrics.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opticslab/paraxial/pkg/catalog"
	"github.com/opticslab/paraxial/pkg/optics"
)

// Server handles web requests for the paraxial tracing workspace.
type Server struct {
	logger  *slog.Logger
	metrics *metrics
}

// Config holds the server's wiring options.
type Config struct {
	Logger    *slog.Logger
	StaticDir string // directory with the workspace UI; defaults to "static"
}

// traceRequest mirrors the JSON body of POST /api/trace. Fields are decoded
// weakly so that clients sending numeric parameters as strings or integers
// still trace. Absent fields decode to empty chains/ray sets.
type traceRequest struct {
	Components []componentPayload `mapstructure:"components"`
	Rays       []rayPayload       `mapstructure:"rays"`
}

type componentPayload struct {
	Kind   string             `mapstructure:"type"`
	Params map[string]float64 `mapstructure:"params"`
}

type rayPayload struct {
	Height float64 `mapstructure:"height"`
	Angle  float64 `mapstructure:"angle"`
}

// NewHandler builds the HTTP handler for the workspace.
func NewHandler(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}

	s := &Server{
		logger:  cfg.Logger,
		metrics: newMetrics(),
	}

	r := chi.NewRouter()
	r.Get("/api/components", s.handleComponents)
	r.Post("/api/trace", s.handleTrace)
	r.Get("/api/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	return r
}

// handleHealth provides a simple health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleComponents returns metadata about available optical components.
func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Library())
}

// handleTrace computes ray tracing results for a posted chain and ray set.
func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.metrics.traces.WithLabelValues("bad_request").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req, err := decodeTraceRequest(raw)
	if err != nil {
		s.metrics.traces.WithLabelValues("bad_request").Inc()
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	components := make([]optics.ComponentSpec, len(req.Components))
	for i, c := range req.Components {
		components[i] = optics.ComponentSpec{Kind: c.Kind, Params: c.Params}
	}
	rays := make([]optics.Ray, len(req.Rays))
	for i, ray := range req.Rays {
		rays[i] = optics.Ray{Height: ray.Height, Angle: ray.Angle}
	}

	result := optics.Trace(components, rays)

	s.metrics.traces.WithLabelValues("ok").Inc()
	s.metrics.traceDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("trace",
		"components", len(components),
		"rays", len(rays),
	)

	writeJSON(w, http.StatusOK, result)
}

// decodeTraceRequest maps the loosely-typed JSON body onto the request shape,
// coercing string and integer numerics to float64.
func decodeTraceRequest(raw map[string]any) (*traceRequest, error) {
	var req traceRequest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &req,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}
	return &req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("response encode failed", "error", err)
	}
}
