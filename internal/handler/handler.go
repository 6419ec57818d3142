package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopkart/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code. Encoding
// failures cannot be reported once the header is written.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps a service error onto the HTTP response. Domain errors
// carry their own status and stable code; anything else is an internal
// error with no detail leaked to the client.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		logger.Warn().
			Str("code", domainErr.Code).
			Int("status", domainErr.Status).
			Msg(domainErr.Message)
		writeJSON(w, domainErr.Status, model.ErrorResponse{
			Error:   domainErr.Code,
			Message: domainErr.Message,
		})
		return
	}

	logger.Error().Err(err).Msg("handler error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:   model.ErrCodeInternalError,
		Message: "Something went wrong",
	})
}

// writeBadRequest writes a 400 with the given code and message.
func writeBadRequest(w http.ResponseWriter, code, message string) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: code, Message: message})
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// methodNotAllowed writes a 405 response.
func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{
		Error:   "METHOD_NOT_ALLOWED",
		Message: "Method not allowed",
	})
}

// notFound writes a 404 response for unmatched routes.
func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, model.ErrorResponse{
		Error:   "NOT_FOUND",
		Message: "Route not found",
	})
}
