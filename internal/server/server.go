// Package server exposes the planning pipeline over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/geoio"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/pipeline"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/report"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/validation"
)

// maxBodyBytes caps uploaded settlement collections.
const maxBodyBytes = 64 << 20

// Server serves planning runs against one parameter set.
type Server struct {
	cfg     *params.Config
	port    int
	workers int
	log     *zap.Logger
}

// New creates a server for the given configuration.
func New(cfg *params.Config, port, workers int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:     cfg,
		port:    port,
		workers: workers,
		log:     log,
	}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/config", s.handleConfig)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("POST /api/run", s.handleRun)
	mux.HandleFunc("POST /api/summary", s.handleSummary)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("server starting", zap.String("addr", "http://localhost"+addr))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, `Least-cost settlement electrification

GET  /api/config      active parameter set
GET  /api/validation  parameter validation report
POST /api/run         GeoJSON settlements in, planned GeoJSON out
POST /api/summary     GeoJSON settlements in, per-technology summary out

POST query parameters: crs, drop_null_geometry, workers
`)
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, validation.ValidateParams(s.cfg))
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	c, _, ok := s.plan(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	if err := geoio.Encode(w, c); err != nil {
		s.log.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	_, summary, ok := s.plan(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// plan decodes the request body and runs the pipeline. It writes the error
// response itself and reports ok=false on failure.
func (s *Server) plan(w http.ResponseWriter, r *http.Request) (*geoio.Collection, *report.Summary, bool) {
	q := r.URL.Query()
	opts := geoio.Options{CRS: q.Get("crs")}
	if v := q.Get("drop_null_geometry"); v != "" {
		drop, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("drop_null_geometry: %w", err))
			return nil, nil, false
		}
		opts.DropNullGeometry = drop
	}
	workers := s.workers
	if v := q.Get("workers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("workers must be a positive integer, got %q", v))
			return nil, nil, false
		}
		workers = n
	}

	c, err := geoio.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), opts)
	if err != nil {
		writeError(w, decodeStatus(err), err)
		return nil, nil, false
	}
	if rep := validation.ValidateSettlements(c.Records); !rep.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, rep)
		return nil, nil, false
	}

	summary := pipeline.Run(c.Records, s.cfg, pipeline.Options{Workers: workers, Logger: s.log})
	summary.Skipped = c.Skipped
	s.log.Info("request planned",
		zap.String("path", r.URL.Path),
		zap.Int("settlements", len(c.Records)),
		zap.Int("skipped", c.Skipped),
	)
	return c, summary, true
}

// decodeStatus separates input contract violations from malformed bodies.
func decodeStatus(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, settlement.ErrMissingColumn),
		errors.Is(err, settlement.ErrNegativePopulation),
		errors.Is(err, settlement.ErrNullGeometry),
		errors.Is(err, settlement.ErrUnsupportedGeometry):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
