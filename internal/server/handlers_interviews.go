package server

import (
	"net/http"

	"github.com/jonathan/hireflow/internal/types"
)

// ---------------------------------------------------------------------
// Interview Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	filters, err := parseInterviewFilters(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ivs, err := s.svc.ListInterviews(r.Context(), filters)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ivs)
}

func (s *Server) handleInterviewStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.GetInterviewStats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	iv, err := s.svc.GetInterview(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, iv, "interview")
}

func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	var in types.InterviewInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}

	iv, err := s.svc.CreateInterview(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, iv)
}

func (s *Server) handleUpdateInterview(w http.ResponseWriter, r *http.Request) {
	var patch types.InterviewPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}

	iv, err := s.svc.UpdateInterview(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, iv, "interview")
}

func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.svc.DeleteInterview(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "interview not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var in types.FeedbackInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}

	iv, err := s.svc.SubmitInterviewFeedback(r.Context(), r.PathValue("id"), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, iv, "interview")
}

func (s *Server) handleAvailableSlots(w http.ResponseWriter, r *http.Request) {
	day, err := parseDay(r.URL.Query(), "date")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	slots, err := s.svc.AvailableSlots(r.Context(), r.PathValue("id"), day)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func (s *Server) handleCreateSlot(w http.ResponseWriter, r *http.Request) {
	var in types.SlotInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	in.InterviewerID = r.PathValue("id")

	slot, err := s.svc.CreateSlot(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}
