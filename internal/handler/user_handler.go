package handler

import (
	"net/http"

	"shopkart/internal/model"
	"shopkart/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles admin user management HTTP requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// List handles GET /api/admin/users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	users, err := h.service.ListUsers(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// updateUserRequest is the payload for admin user edits. Either field
// may be omitted to leave it unchanged.
type updateUserRequest struct {
	Role   model.Role       `json:"role"`
	Status model.UserStatus `json:"status"`
}

// Update handles PUT /api/admin/users/{id} requests.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}

	id, ok := pathID(r.URL.Path, "/api/admin/users/", "")
	if !ok {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid user ID")
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, req.Role, req.Status)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /api/admin/users/{id} requests.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}

	id, ok := pathID(r.URL.Path, "/api/admin/users/", "")
	if !ok {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid user ID")
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
