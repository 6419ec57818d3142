package repository

import (
	"context"
	"time"

	"shopkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a single user by ID. Returns nil without error
	// when no user exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail retrieves a single user by email (case-insensitive).
	// Returns nil without error when no user exists.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetAll retrieves all users with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.User, error)

	// Update persists changes to name, email, password hash, role and status.
	Update(ctx context.Context, user *model.User) error

	// UpdateLastLogin records a successful login time.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// Delete hard-deletes a user.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves products with pagination support, optionally
	// filtered by category.
	GetAll(ctx context.Context, limit, offset int, category string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil without
	// error when no product exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs. Missing IDs are
	// silently omitted from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *model.Product) error

	// Upsert inserts a product or updates it in place if the ID exists.
	// Used by catalog seeding.
	Upsert(ctx context.Context, product *model.Product) error

	// Delete hard-deletes a product. Cart items referencing it are
	// removed by cascade; order item snapshots are untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartRepository defines the interface for cart data access operations.
type CartRepository interface {
	// GetByUserID retrieves a user's cart. Returns nil without error when
	// the user has no cart yet.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// GetOrCreate retrieves the user's cart, creating it atomically when
	// absent. At most one cart exists per user.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// GetResolvedItems retrieves cart items joined with current product
	// data. Items whose product no longer exists are not returned.
	GetResolvedItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItemView, error)

	// UpsertItem adds quantity to the item for productID, inserting the
	// item when absent. The increment is a single atomic statement.
	UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// SetItemQuantity sets (not adds) the quantity of an existing item.
	// Returns false when no such item exists.
	SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (bool, error)

	// RemoveItem deletes the item for productID if present.
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error

	// Clear deletes all items in the cart.
	Clear(ctx context.Context, cartID uuid.UUID) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. Returns
	// nil without error when no order exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// ListAll retrieves all orders, newest first.
	ListAll(ctx context.Context) ([]model.Order, error)

	// ItemsForOrders retrieves items for multiple orders keyed by order ID.
	ItemsForOrders(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]model.OrderItem, error)

	// Update persists changes to the mutable order fields: statuses,
	// payment ID and cancellation reason.
	Update(ctx context.Context, order *model.Order) error

	// Delete hard-deletes an order and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
