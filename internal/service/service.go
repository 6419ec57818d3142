package service

import (
	"context"

	"shopkart/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalog management.
type ProductService interface {
	// GetAll retrieves products with pagination, optionally filtered by category.
	GetAll(ctx context.Context, limit, offset int, category string) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create adds a new product to the catalog.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update edits an existing product.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartService defines operations for a user's cart. All reads resolve
// product references to current catalog data and silently drop items
// whose product no longer exists.
type CartService interface {
	// GetCart returns the user's cart, or an empty cart shape when the
	// user has no cart yet.
	GetCart(ctx context.Context, userID uuid.UUID) (*model.CartView, error)

	// AddItem adds quantity of a product to the cart, creating the cart
	// when absent and merging with an existing line for the same product.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartView, error)

	// UpdateItemQuantity sets (not adds) the quantity of an existing item.
	// A quantity of zero or less removes the item.
	UpdateItemQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartView, error)

	// RemoveItem removes a product from the cart. Removing a product not
	// present is a no-op.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*model.CartView, error)
}

// OrderService defines operations for order placement and lifecycle.
type OrderService interface {
	// PlaceOrder validates the checkout payload, snapshots items and
	// prices, and persists a new order in processing state.
	PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest) (*model.OrderView, error)

	// GetByID retrieves an order with its items and resolved products.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderView, error)

	// ListByUser retrieves a user's orders, newest first. Returns an
	// empty list rather than an error when the user has no orders.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.OrderView, error)

	// ListAll retrieves all orders with owning user info resolved.
	ListAll(ctx context.Context) ([]model.OrderView, error)

	// UpdateStatus applies an explicit order/payment status update.
	// Transitions out of a terminal order status are rejected.
	UpdateStatus(ctx context.Context, id uuid.UUID, req *model.UpdateOrderStatusRequest) (*model.OrderView, error)

	// Cancel cancels an order that is not delivered and not already
	// cancelled, recording the supplied reason.
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*model.OrderView, error)

	// Delete hard-deletes an order. Only the order's owner or an admin
	// may delete it.
	Delete(ctx context.Context, id uuid.UUID, requester *model.User) error

	// MarkPaymentResult records the gateway verification outcome for an
	// order still awaiting payment.
	MarkPaymentResult(ctx context.Context, id uuid.UUID, paymentID string, success bool) (*model.OrderView, error)
}

// UserService defines operations for registration, authentication and
// account administration.
type UserService interface {
	// Register creates a new user account with a hashed password.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)

	// Authenticate verifies credentials and returns the user's public
	// profile. Lookup failure and password mismatch are indistinguishable
	// to the caller.
	Authenticate(ctx context.Context, email, password string) (*model.User, error)

	// AuthenticateAdmin is Authenticate restricted to admin accounts.
	AuthenticateAdmin(ctx context.Context, email, password string) (*model.User, error)

	// UpdateProfile updates name and/or password for the account with
	// the given email.
	UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.User, error)

	// GetByID retrieves a single user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// ListUsers retrieves all users with pagination.
	ListUsers(ctx context.Context, limit, offset int) ([]model.User, error)

	// UpdateUser applies an admin edit of a user's role and status.
	UpdateUser(ctx context.Context, id uuid.UUID, role model.Role, status model.UserStatus) (*model.User, error)

	// DeleteUser hard-deletes a user account.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
