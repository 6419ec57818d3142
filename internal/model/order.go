package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies how an order is paid.
type PaymentMethod string

const (
	PaymentMethodRazorpay PaymentMethod = "razorpay"
	PaymentMethodCOD      PaymentMethod = "cod"
)

// Valid reports whether the method is one of the known methods.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodRazorpay || m == PaymentMethodCOD
}

// PaymentStatus identifies the payment lifecycle state of an order.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCODPending PaymentStatus = "cod_pending"
)

// Valid reports whether the status is one of the known statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCODPending:
		return true
	}
	return false
}

// Awaiting reports whether the status still awaits a payment result.
func (s PaymentStatus) Awaiting() bool {
	return s == PaymentStatusPending || s == PaymentStatusCODPending
}

// OrderStatus identifies the fulfilment lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Address is a delivery address. Country defaults to "India" when omitted;
// all other fields are required for checkout.
type Address struct {
	Street     string `json:"street" db:"street"`
	City       string `json:"city" db:"city"`
	State      string `json:"state" db:"state"`
	PostalCode string `json:"postalCode" db:"postal_code"`
	Country    string `json:"country" db:"country"`
}

// Complete reports whether all required address fields are present.
func (a Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.PostalCode != ""
}

// Order represents a placed order. Orders snapshot cart contents and
// prices at checkout time and are immutable apart from their status
// fields and cancellation reason.
type Order struct {
	ID                 uuid.UUID     `json:"id" db:"id"`
	UserID             uuid.UUID     `json:"user" db:"user_id"`
	OrderNumber        string        `json:"orderNumber" db:"order_number"`
	TotalAmount        float64       `json:"totalAmount" db:"total_amount"`
	Address            Address       `json:"address"`
	PaymentMethod      PaymentMethod `json:"paymentMethod" db:"payment_method"`
	PaymentID          *string       `json:"paymentId,omitempty" db:"payment_id"`
	PaymentStatus      PaymentStatus `json:"paymentStatus" db:"payment_status"`
	OrderStatus        OrderStatus   `json:"orderStatus" db:"order_status"`
	DeliveryDate       time.Time     `json:"deliveryDate" db:"delivery_date"`
	CancellationReason *string       `json:"cancellationReason,omitempty" db:"cancellation_reason"`
	CreatedAt          time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time     `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a line item snapshot taken at checkout. Price and product
// name are copied from the submitted payload so later catalog edits do
// not retroactively alter historical orders.
type OrderItem struct {
	ID          uuid.UUID `json:"-" db:"id"`
	OrderID     uuid.UUID `json:"-" db:"order_id"`
	ProductID   uuid.UUID `json:"productId" db:"product_id"`
	ProductName string    `json:"productName" db:"product_name"`
	Price       float64   `json:"price" db:"price"`
	Quantity    int       `json:"quantity" db:"quantity"`
}

// OrderItemView is an order item with its product reference resolved to
// current catalog data where the product still exists.
type OrderItemView struct {
	Product     *Product  `json:"product,omitempty"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

// UserSummary is the subset of user fields exposed on admin order views.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// OrderView is the order shape returned to clients.
type OrderView struct {
	Order
	Items []OrderItemView `json:"items"`
	User  *UserSummary    `json:"userInfo,omitempty"`
}

// PlaceOrderItem is a single submitted checkout item. Price is taken from
// the payload and defaults to 0 when absent; the checkout UI is expected
// to have fetched current prices beforehand.
type PlaceOrderItem struct {
	ProductID string  `json:"product" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price"`
}

// PlaceOrderRequest represents the request payload for POST /api/orders/place.
type PlaceOrderRequest struct {
	UserID        string           `json:"userId" validate:"required"`
	Items         []PlaceOrderItem `json:"items" validate:"required,min=1,dive"`
	TotalAmount   float64          `json:"totalAmount" validate:"required"`
	Address       *Address         `json:"address" validate:"required"`
	PaymentMethod PaymentMethod    `json:"paymentMethod" validate:"required,oneof=razorpay cod"`
	DeliveryDate  *time.Time       `json:"deliveryDate" validate:"required"`
}

// UpdateOrderStatusRequest represents the request payload for admin status updates.
// Either field may be omitted to leave it unchanged.
type UpdateOrderStatusRequest struct {
	OrderStatus   OrderStatus   `json:"orderStatus" validate:"omitempty,oneof=processing confirmed shipped delivered cancelled"`
	PaymentStatus PaymentStatus `json:"paymentStatus" validate:"omitempty,oneof=pending paid failed cod_pending"`
}

// CancelOrderRequest represents the request payload for order cancellation.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}
