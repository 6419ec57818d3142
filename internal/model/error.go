package model

import "net/http"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeIncompleteAddress = "INCOMPLETE_ADDRESS"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeCartNotFound      = "CART_NOT_FOUND"
	ErrCodeItemNotFound      = "ITEM_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodeEmailTaken        = "EMAIL_TAKEN"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeOrderDelivered    = "ORDER_DELIVERED"
	ErrCodeOrderCancelled    = "ORDER_CANCELLED"
	ErrCodeOrderTerminal     = "ORDER_TERMINAL"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-logic error carrying a stable code and the
// HTTP status it maps to at the API boundary.
type DomainError struct {
	Code    string
	Message string
	Status  int
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// Common domain errors
var (
	ErrMissingField      = NewDomainError(ErrCodeMissingField, "Missing required fields", http.StatusBadRequest)
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero", http.StatusBadRequest)
	ErrIncompleteAddress = NewDomainError(ErrCodeIncompleteAddress, "Complete address is required", http.StatusBadRequest)
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found", http.StatusNotFound)
	ErrCartNotFound      = NewDomainError(ErrCodeCartNotFound, "Cart not found", http.StatusNotFound)
	ErrItemNotFound      = NewDomainError(ErrCodeItemNotFound, "Item not found in cart", http.StatusNotFound)
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found", http.StatusNotFound)
	ErrUserNotFound      = NewDomainError(ErrCodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailTaken        = NewDomainError(ErrCodeEmailTaken, "User already exists", http.StatusBadRequest)
	ErrInvalidStatus     = NewDomainError(ErrCodeInvalidStatus, "Invalid status value", http.StatusBadRequest)
	ErrOrderDelivered    = NewDomainError(ErrCodeOrderDelivered, "Cannot cancel delivered order", http.StatusBadRequest)
	ErrOrderCancelled    = NewDomainError(ErrCodeOrderCancelled, "Order is already cancelled", http.StatusBadRequest)
	ErrOrderTerminal     = NewDomainError(ErrCodeOrderTerminal, "Order is in a terminal state", http.StatusBadRequest)
	ErrPaymentSettled    = NewDomainError(ErrCodeOrderTerminal, "Payment result already recorded", http.StatusBadRequest)
	ErrInvalidCreds      = NewDomainError(ErrCodeUnauthorised, "Invalid credentials", http.StatusUnauthorized)
	ErrForbidden         = NewDomainError(ErrCodeForbidden, "Not authorized to perform this action", http.StatusForbidden)
)
