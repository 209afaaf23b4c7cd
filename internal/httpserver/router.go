package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/textscope/textscope/internal/models"
	"github.com/textscope/textscope/internal/monitoring"
	"github.com/textscope/textscope/internal/pipeline"
)

type Router struct {
	pipeline *pipeline.Pipeline
	checkers []monitoring.HealthChecker
}

func NewRouter(p *pipeline.Pipeline, checkers []monitoring.HealthChecker) http.Handler {
	r := &Router{pipeline: p, checkers: checkers}
	mux := chi.NewRouter()

	mux.Use(RequestID)
	mux.Use(RequestLogger)
	// The frontend is served from another origin, mirror its headers.
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	mux.Get("/", r.handleHome)
	mux.Get("/health", r.handleHealth)
	mux.Post("/analyze", r.wrap(r.handleAnalyze))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("internal server error: %v", err),
			})
		}
	}
}

// GET /
func (r *Router) handleHome(w http.ResponseWriter, req *http.Request) {
	w.Write([]byte("NLP server is running!"))
}

// GET /health
//
// Runs every analyzer against the fixed sample string; 503 when any
// dependency fails.
func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	status := monitoring.RunChecks(req.Context(), r.checkers)

	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// POST /analyze
// Body: {"text": "..."}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body models.AnalysisRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return nil
	}

	resp, err := r.pipeline.Analyze(body.Text)
	if errors.Is(err, pipeline.ErrNoText) || errors.Is(err, pipeline.ErrEmptyText) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return nil
	}
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, resp)
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
