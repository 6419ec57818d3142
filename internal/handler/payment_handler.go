package handler

import (
	"net/http"

	"shopkart/internal/model"
	"shopkart/internal/payment"
	"shopkart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentHandler handles payment gateway HTTP requests for online orders.
type PaymentHandler struct {
	gateway payment.Gateway
	orders  service.OrderService
	logger  zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(gateway payment.Gateway, orders service.OrderService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		gateway: gateway,
		orders:  orders,
		logger:  logger.With().Str("handler", "payment").Logger(),
	}
}

// createPaymentOrderRequest is the payload for POST /api/payment/order.
type createPaymentOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// verifyPaymentRequest is the payload for POST /api/payment/verify. The
// gateway fields come from the payment widget callback; OrderID is the
// storefront order being paid.
type verifyPaymentRequest struct {
	OrderID string `json:"orderId"`
	payment.Verification
}

// CreateOrder handles POST /api/payment/order requests.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req createPaymentOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if req.Amount <= 0 {
		writeBadRequest(w, model.ErrCodeMissingField, "A positive amount is required")
		return
	}

	order, err := h.gateway.CreateOrder(r.Context(), req.Amount, req.Currency)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// Verify handles POST /api/payment/verify requests. The order's payment
// status moves to paid or failed depending on the signature check.
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req verifyPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid order ID")
		return
	}

	ok, err := h.gateway.Verify(r.Context(), req.Verification)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	order, err := h.orders.MarkPaymentResult(r.Context(), orderID, req.PaymentID, ok)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
