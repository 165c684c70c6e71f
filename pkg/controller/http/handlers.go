package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
	"github.com/privacy-lab/tikun13/pkg/report"
	"github.com/privacy-lab/tikun13/pkg/repository/memory"
	"github.com/privacy-lab/tikun13/pkg/utils/errutil"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	if errors.Is(err, memory.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sections": s.uc.Catalog().Sections(),
	})
}

// handleEvaluate scores a raw answer set without creating a session
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers model.AnswerSet `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, s.uc.Assessment.Evaluate(req.Answers))
}

func (s *Server) handleStartAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := s.uc.Assessment.Start(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	list, err := s.uc.Assessment.List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"assessments": list})
}

func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	id := model.AssessmentID(chi.URLParam(r, "assessmentID"))
	a, err := s.uc.Assessment.Get(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleDeleteAssessment(w http.ResponseWriter, r *http.Request) {
	id := model.AssessmentID(chi.URLParam(r, "assessmentID"))
	if err := s.uc.Assessment.Delete(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveAnswer(w http.ResponseWriter, r *http.Request) {
	id := model.AssessmentID(chi.URLParam(r, "assessmentID"))
	questionID := types.QuestionID(chi.URLParam(r, "questionID"))

	var answer model.Answer
	if err := json.NewDecoder(r.Body).Decode(&answer); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid answer body"), http.StatusBadRequest)
		return
	}

	a, err := s.uc.Assessment.SaveAnswer(r.Context(), id, questionID, answer)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleSetProgress(w http.ResponseWriter, r *http.Request) {
	id := model.AssessmentID(chi.URLParam(r, "assessmentID"))

	var req struct {
		CurrentSectionIndex int `json:"currentSectionIndex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	a, err := s.uc.Assessment.SetProgress(r.Context(), id, req.CurrentSectionIndex)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	id := model.AssessmentID(chi.URLParam(r, "assessmentID"))
	a, err := s.uc.Assessment.Complete(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleAssessmentReport(w http.ResponseWriter, r *http.Request) {
	id := model.AssessmentID(chi.URLParam(r, "assessmentID"))
	a, err := s.uc.Assessment.Get(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}
	if a.Result == nil {
		errutil.HandleHTTP(r.Context(), w, goerr.New("assessment is not completed"), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.RenderHTML(w, a.Result); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("request requires a url field"), http.StatusBadRequest)
		return
	}

	result, err := s.uc.Scan.ScanURL(r.Context(), req.URL)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	list, err := s.uc.Scan.List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scans": list})
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	id := model.ScanID(chi.URLParam(r, "scanID"))
	result, err := s.uc.Scan.Get(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDeleteScan(w http.ResponseWriter, r *http.Request) {
	id := model.ScanID(chi.URLParam(r, "scanID"))
	if err := s.uc.Scan.Delete(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleScanReport(w http.ResponseWriter, r *http.Request) {
	id := model.ScanID(chi.URLParam(r, "scanID"))
	result, err := s.uc.Scan.Get(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.RenderScanHTML(w, result); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}
