// Package payment abstracts the payment gateway used for online orders.
// Cash-on-delivery orders never touch the gateway; online orders create
// a gateway order at checkout and verify the gateway's signature on the
// client callback.
package payment

import "context"

// GatewayOrder is a payment order created with the gateway. The client
// uses its ID to drive the payment widget.
type GatewayOrder struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Verification is the gateway callback payload submitted by the client
// after the payment widget completes.
type Verification struct {
	OrderID   string `json:"razorpayOrderId"`
	PaymentID string `json:"razorpayPaymentId"`
	Signature string `json:"razorpaySignature"`
}

// Gateway defines the interface for the payment provider.
type Gateway interface {
	// CreateOrder registers a payment order for the given amount with the
	// provider and returns its reference.
	CreateOrder(ctx context.Context, amount float64, currency string) (*GatewayOrder, error)

	// Verify checks the provider signature on a completed payment.
	// Returns true when the payment is genuine and settled.
	Verify(ctx context.Context, v Verification) (bool, error)
}
