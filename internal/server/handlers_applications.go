package server

import (
	"net/http"

	"github.com/jonathan/hireflow/internal/types"
)

// ---------------------------------------------------------------------
// Application Handlers
// ---------------------------------------------------------------------

type statusRequest struct {
	Status types.ApplicationStatus `json:"status"`
}

type ratingRequest struct {
	Rating *int `json:"rating"`
}

type bulkUpdateRequest struct {
	IDs     []string               `json:"ids"`
	Updates types.ApplicationPatch `json:"updates"`
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	filters, err := parseApplicationFilters(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	apps, err := s.svc.ListApplications(r.Context(), filters)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (s *Server) handleApplicationStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.GetApplicationStats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := s.svc.GetApplication(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, app, "application")
}

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var in types.ApplicationInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}

	app, err := s.svc.CreateApplication(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	app, err := s.svc.UpdateApplicationStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, app, "application")
}

func (s *Server) handleUpdateApplicationRating(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Rating == nil {
		s.fail(w, r, &ErrValidation{Field: "rating", Message: "is required"})
		return
	}

	app, err := s.svc.UpdateApplicationRating(r.Context(), r.PathValue("id"), *req.Rating)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, app, "application")
}

func (s *Server) handleBulkUpdateApplications(w http.ResponseWriter, r *http.Request) {
	var req bulkUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	apps, err := s.svc.BulkUpdateApplications(r.Context(), req.IDs, req.Updates)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (s *Server) handleListApplicationNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.svc.ListApplicationNotes(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleAddApplicationNote(w http.ResponseWriter, r *http.Request) {
	var in types.NoteInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	if in.AuthorID == "" {
		in.AuthorID = callerID(r)
	}

	note, err := s.svc.AddApplicationNote(r.Context(), r.PathValue("id"), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, note, "application")
}
