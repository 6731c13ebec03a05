package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/user/yt-summarizer/errors"
	"github.com/user/yt-summarizer/middleware"
)

// respondJSON writes a payload at the top level of the response body.
func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

// respondError maps an error onto the failure body. AppError carries its
// own status code and client-facing fields; anything else becomes an
// opaque 500 so internals never leak to clients.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.Internal("handlers.respondError", err, "Internal server error")
	}

	entry := s.logger.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(r.Context()),
		"op":         appErr.Op,
		"status":     appErr.Code,
		"path":       r.URL.Path,
	})
	if appErr.Code >= http.StatusInternalServerError {
		entry.WithError(err).Error("Request failed")
	} else {
		entry.WithError(err).Warn("Request rejected")
	}

	s.respondJSON(w, appErr.Code, appErr)
}

// readJSON decodes a request body into dst, rejecting unknown fields.
func readJSON(r *http.Request, dst interface{}) error {
	const op = "handlers.readJSON"

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			return errors.InvalidInput(op, err, "Request body too large")
		}
		return errors.InvalidInput(op, err, "Invalid request body")
	}
	return nil
}
