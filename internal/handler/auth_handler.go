package handler

import (
	"net/http"
	"strings"

	"shopkart/internal/middleware"
	"shopkart/internal/model"
	"shopkart/internal/service"
	"shopkart/internal/validation"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// AuthHandler handles registration, login and profile HTTP requests.
// Logins return the user's public profile; session handling is left to
// the client.
type AuthHandler struct {
	service  service.UserService
	validate *validatorv10.Validate
	logger   zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.UserService, validate *validatorv10.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		validate: validate,
		logger:   logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /api/auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := validation.Check(h.validate, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := validation.Check(h.validate, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// AdminLogin handles POST /api/auth/admin/login requests.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := validation.Check(h.validate, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	user, err := h.service.AuthenticateAdmin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/auth/profile requests. Users may only
// update their own profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}

	var req model.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	caller := middleware.UserFrom(r.Context())
	if req.Email == "" {
		req.Email = caller.Email
	}

	if err := validation.Check(h.validate, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if !strings.EqualFold(req.Email, caller.Email) && caller.Role != model.RoleAdmin {
		writeError(w, model.ErrForbidden, h.logger)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
