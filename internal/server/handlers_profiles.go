package server

import (
	"net/http"

	"github.com/jonathan/hireflow/internal/types"
)

// ---------------------------------------------------------------------
// Candidate Profile and User Handlers
// ---------------------------------------------------------------------

func (s *Server) handleSearchProfiles(w http.ResponseWriter, r *http.Request) {
	p := newParams(r.URL.Query())
	search, skills := p.str("q"), p.list("skills")

	profiles, err := s.svc.SearchProfiles(r.Context(), search, skills)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.svc.GetProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, profile, "profile")
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var in types.ProfileInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	if in.UserID == "" {
		in.UserID = callerID(r)
	}
	if !s.actingAs(w, r, in.UserID) {
		return
	}

	profile, err := s.svc.CreateProfile(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch types.ProfilePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}

	id := r.PathValue("id")
	current, err := s.svc.Repositories().Profiles.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if current == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if !s.actingAs(w, r, current.UserID) {
		return
	}

	profile, err := s.svc.UpdateProfile(r.Context(), id, patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, profile, "profile")
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.userService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, user, "user")
}
