package server

import (
	"net/http"

	"github.com/jonathan/hireflow/internal/types"
)

// ---------------------------------------------------------------------
// Job Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	filters, err := parseJobFilters(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	jobs, err := s.svc.ListJobs(r.Context(), filters)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.svc.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, job, "job")
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var in types.JobInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	if in.PostedBy == "" {
		in.PostedBy = callerID(r)
	}

	job, err := s.svc.CreateJob(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	var patch types.JobPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}

	job, err := s.svc.UpdateJob(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, job, "job")
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.svc.DeleteJob(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecordJobView(w http.ResponseWriter, r *http.Request) {
	job, err := s.svc.RecordJobView(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, job, "job")
}
