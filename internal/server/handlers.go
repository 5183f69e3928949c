package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/brand-checker/internal/audit"
	"github.com/jonathan/brand-checker/internal/batch"
	"github.com/jonathan/brand-checker/internal/engine"
	"github.com/jonathan/brand-checker/internal/types"
)

// BatchRequest represents the request body for /check/batch.
type BatchRequest struct {
	Items []types.CheckRequest `json:"items"`
}

// BatchResponse represents the response for /check/batch.
type BatchResponse struct {
	Results []*types.Verdict `json:"results"`
	Summary batch.Summary    `json:"summary"`
}

// HealthResponse represents the response for /health.
type HealthResponse struct {
	Status         string `json:"status"`
	Engine         string `json:"engine"`
	Profile        string `json:"profile"`
	ProfileVersion string `json:"profileVersion"`
}

// handleCheck evaluates one content item against the loaded profile.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req types.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	verdict, err := engine.Evaluate(req.Content, s.profile)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.recordAudit(verdict)
	s.jsonResponse(w, http.StatusOK, verdict)
}

// handleCheckBatch evaluates a list of content items and returns the verdicts
// with an aggregate summary.
func (s *Server) handleCheckBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Items) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "items is required")
		return
	}

	contents := make([]string, len(req.Items))
	for i, item := range req.Items {
		if err := item.Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		contents[i] = item.Content
	}

	verdicts, err := batch.EvaluateAll(r.Context(), contents, s.profile)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	for _, verdict := range verdicts {
		s.recordAudit(verdict)
	}
	s.jsonResponse(w, http.StatusOK, BatchResponse{
		Results: verdicts,
		Summary: batch.Summarize(verdicts),
	})
}

// handleHealth returns the liveness payload with profile identity.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:         "ok",
		Engine:         "brand-checker",
		Profile:        s.profile.Name,
		ProfileVersion: s.profile.Version,
	})
}

// handleProfile echoes the loaded profile snapshot.
func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.profile)
}

// recordAudit writes an audit entry if a recorder is configured. Audit
// failures are logged, never surfaced to the caller.
func (s *Server) recordAudit(verdict *types.Verdict) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(audit.NewEntry(s.profile, verdict)); err != nil {
		log.Printf("Failed to record audit entry: %v", err)
	}
}
