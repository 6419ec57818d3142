package model

import (
	"time"

	"github.com/google/uuid"
)

// Cart represents a user's shopping cart. Each user has at most one cart.
type Cart struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CartItem represents a line item in a cart. A cart holds at most one
// item per distinct product; adding the same product again merges quantities.
type CartItem struct {
	CartID    uuid.UUID `json:"-" db:"cart_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
}

// CartItemView is a cart item with its product reference resolved to
// current catalog data. Items whose product no longer exists are filtered
// out before a view is built.
type CartItemView struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartView is the cart shape returned to clients. A user without a
// persisted cart gets an empty view rather than an error.
type CartView struct {
	UserID uuid.UUID      `json:"user"`
	Items  []CartItemView `json:"items"`
}

// TotalItems returns the total quantity across all items.
func (v *CartView) TotalItems() int {
	total := 0
	for _, item := range v.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the cart total at current catalog prices.
func (v *CartView) TotalPrice() float64 {
	total := 0.0
	for _, item := range v.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// AddCartItemRequest represents the request payload for adding an item
// to the authenticated user's cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents the request payload for setting an item quantity.
type UpdateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// RemoveCartItemRequest represents the request payload for removing an item.
type RemoveCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}
