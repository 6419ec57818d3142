package handler

import (
	"net/http"

	"shopkart/internal/middleware"
	"shopkart/internal/model"
	"shopkart/internal/service"
	"shopkart/internal/validation"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service  service.OrderService
	validate *validatorv10.Validate
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, validate *validatorv10.Validate, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validate,
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

// Place handles POST /api/orders/place requests.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req model.PlaceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	// The payload may omit userId; it then defaults to the caller's own
	// identity. Only admins may place an order on another user's account.
	caller := middleware.UserFrom(r.Context())
	if req.UserID == "" {
		req.UserID = caller.ID.String()
	} else if req.UserID != caller.ID.String() && caller.Role != model.RoleAdmin {
		writeError(w, model.ErrForbidden, h.logger)
		return
	}

	if err := validation.Check(h.validate, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListMine handles GET /api/orders/my requests.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	user := middleware.UserFrom(r.Context())

	orders, err := h.service.ListByUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// ListAll handles GET /api/orders/all requests (admin only).
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	orders, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/api/orders/", "")
	if !ok {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid order ID")
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders/{id}/status requests (admin only).
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}

	id, ok := pathID(r.URL.Path, "/api/orders/", "/status")
	if !ok {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid order ID")
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Cancel handles PUT /api/orders/{id}/cancel requests.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}

	id, ok := pathID(r.URL.Path, "/api/orders/", "/cancel")
	if !ok {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid order ID")
		return
	}

	// The body is optional; an absent or empty reason gets the default.
	var req model.CancelOrderRequest
	_ = decodeJSON(r, &req)

	order, err := h.service.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Delete handles DELETE /api/orders/{id} requests. Only the order's
// owner or an admin may delete.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/api/orders/", "")
	if !ok {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid order ID")
		return
	}

	user := middleware.UserFrom(r.Context())

	if err := h.service.Delete(r.Context(), id, user); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}
