package handler

import (
	"net/http"

	"shopkart/internal/middleware"
	"shopkart/internal/model"
	"shopkart/internal/service"
	"shopkart/internal/validation"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests. All cart routes act on
// the authenticated user's own cart.
type CartHandler struct {
	service  service.CartService
	validate *validatorv10.Validate
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, validate *validatorv10.Validate, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validate,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	user := middleware.UserFrom(r.Context())

	cart, err := h.service.GetCart(r.Context(), user.ID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// Add handles POST /api/cart/add requests. Adding a product already in
// the cart merges quantities.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req model.AddCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := validation.Check(h.validate, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	user := middleware.UserFrom(r.Context())

	cart, err := h.service.AddItem(r.Context(), user.ID, productID, req.Quantity)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// Update handles PUT /api/cart/update requests. A quantity of zero or
// less removes the item.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}

	var req model.UpdateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	user := middleware.UserFrom(r.Context())

	cart, err := h.service.UpdateItemQuantity(r.Context(), user.ID, productID, req.Quantity)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// Remove handles DELETE /api/cart/remove requests. POST is accepted as
// an alias for clients that cannot send a DELETE body. Removing a
// product not in the cart succeeds without change.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req model.RemoveCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	user := middleware.UserFrom(r.Context())

	cart, err := h.service.RemoveItem(r.Context(), user.ID, productID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}
