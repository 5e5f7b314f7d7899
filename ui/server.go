// Package ui exposes the evaluation pipeline over HTTP.
package ui

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"randomcheck/domain/core"
	"randomcheck/domain/verdict"
	"randomcheck/internal/logging"
	"randomcheck/internal/report"
	"randomcheck/ports"
)

// Server hosts the JSON and HTML evaluation endpoints.
type Server struct {
	router    *chi.Mux
	evaluator ports.EvaluatorPort
	ledger    ports.RunLedgerPort // optional
	log       *logging.Logger
}

// NewServer wires the routes.
func NewServer(evaluator ports.EvaluatorPort, ledger ports.RunLedgerPort, log *logging.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		evaluator: evaluator,
		ledger:    ledger,
		log:       log,
	}
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/api/evaluate", s.handleEvaluate)
	s.router.Get("/api/runs", s.handleRuns)
	return s
}

// Handler returns the root http handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the given port.
func (s *Server) ListenAndServe(port string) error {
	s.log.Info("listening on :%s", port)
	return http.ListenAndServe(":"+port, s.router)
}

type evaluateRequest struct {
	Name      string             `json:"name"`
	Lines     []string           `json:"lines"`
	Tests     []verdict.Toggle   `json:"tests"`
	Weights   map[string]float64 `json:"weights"`
	Threshold float64            `json:"threshold"`
	Alpha     float64            `json:"alpha"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.evaluator.Evaluate(r.Context(), ports.EvaluationRequest{
		InputName: req.Name,
		Lines:     req.Lines,
		Suite:     verdict.SuiteConfig{Tests: req.Tests, Weights: req.Weights},
		Threshold: req.Threshold,
		Alpha:     req.Alpha,
	})
	if err != nil {
		s.writeEvaluationError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(report.BuildHTML(result, report.Meta{InputPath: req.Name}))
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.ledger == nil {
		s.writeError(w, http.StatusNotFound, "run history is not configured")
		return
	}
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	records, err := s.ledger.Recent(r.Context(), limit)
	if err != nil {
		s.log.Error("reading run history: %v", err)
		s.writeError(w, http.StatusInternalServerError, "could not read run history")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"runs": records})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeEvaluationError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsConfigurationError(err), core.IsClassificationError(err), core.IsAggregationError(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrInputTooLarge):
		status = http.StatusRequestEntityTooLarge
	}
	s.writeError(w, status, err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encoding response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
