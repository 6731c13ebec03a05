package handlers

import (
	"net/http"

	"github.com/user/yt-summarizer/models"
	"github.com/user/yt-summarizer/validation"
)

const maxSummarizeBody = 1 << 20 // 1MB

// SummarizeHandler runs the full video analysis for a submitted URL.
func (s *Server) SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: maxSummarizeBody,
		AllowedMethods:   []string{http.MethodPost},
		RequireJSON:      true,
	}); err != nil {
		s.respondError(w, r, err)
		return
	}

	// ContentLength is -1 for chunked bodies, so the validator's length
	// check alone is not enough; cap the read itself.
	r.Body = http.MaxBytesReader(w, r.Body, maxSummarizeBody)

	var req models.SummarizeRequest
	if err := readJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	result, err := s.summaryService.Summarize(r.Context(), req.URL)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}
