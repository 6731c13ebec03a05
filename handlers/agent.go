package handlers

import (
	"net/http"

	"github.com/user/yt-summarizer/errors"
	"github.com/user/yt-summarizer/models"
)

// AgentStatusHandler reports the analysis agent's diagnostic snapshot.
func (s *Server) AgentStatusHandler(w http.ResponseWriter, r *http.Request) {
	const op = "Server.AgentStatusHandler"

	status, err := s.summaryService.Status(r.Context())
	if err != nil {
		s.respondError(w, r, errors.Internal(op, err, "Could not get agent status: "+err.Error()))
		return
	}

	s.respondJSON(w, http.StatusOK, status)
}

// AgentResetHandler discards the current agent and mints a fresh one.
func (s *Server) AgentResetHandler(w http.ResponseWriter, r *http.Request) {
	const op = "Server.AgentResetHandler"

	newID, err := s.summaryService.Reset(r.Context())
	if err != nil {
		s.respondError(w, r, errors.Internal(op, err, "Could not reset agent: "+err.Error()))
		return
	}

	s.respondJSON(w, http.StatusOK, models.AgentResetResponse{
		Status:     "Agent reset successfully",
		NewAgentID: newID,
	})
}
