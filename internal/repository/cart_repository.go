package repository

import (
	"context"
	"fmt"

	"shopkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// GetByUserID retrieves a user's cart.
func (r *cartRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	query := `SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`

	var c model.Cart
	err := r.pool.QueryRow(ctx, query, userID).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("user_id", userID.String()).Msg("cart not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	return &c, nil
}

// GetOrCreate retrieves the user's cart, creating it atomically when absent.
// The unique constraint on user_id guarantees at most one cart per user even
// under concurrent first adds.
func (r *cartRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	query := `
		INSERT INTO carts (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = CURRENT_TIMESTAMP
		RETURNING id, user_id, created_at, updated_at
	`

	var c model.Cart
	err := r.pool.QueryRow(ctx, query, uuid.New(), userID).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get or create cart")
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	return &c, nil
}

// GetResolvedItems retrieves cart items joined with current product data.
// The inner join drops items whose product has been deleted from the
// catalog, so callers never see dangling product references.
func (r *cartRepository) GetResolvedItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItemView, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.category, p.stock,
		       p.rating_average, p.rating_count, p.status, p.created_at, p.updated_at,
		       ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY p.name
	`

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItemView
	for rows.Next() {
		var v model.CartItemView
		err := rows.Scan(
			&v.Product.ID,
			&v.Product.Name,
			&v.Product.Description,
			&v.Product.Price,
			&v.Product.Category,
			&v.Product.Stock,
			&v.Product.Rating.Average,
			&v.Product.Rating.Count,
			&v.Product.Status,
			&v.Product.CreatedAt,
			&v.Product.UpdatedAt,
			&v.Quantity,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, v)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// UpsertItem adds quantity to the item for productID, inserting the item
// when absent. The increment happens inside a single statement so that
// concurrent adds for the same product cannot lose updates.
func (r *cartRepository) UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity
	`

	_, err := r.pool.Exec(ctx, query, cartID, productID, quantity)
	if err != nil {
		r.logger.Error().Err(err).
			Str("cart_id", cartID.String()).
			Str("product_id", productID.String()).
			Msg("failed to upsert cart item")
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return nil
}

// SetItemQuantity sets the quantity of an existing item.
func (r *cartRepository) SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (bool, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3
		WHERE cart_id = $1 AND product_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, cartID, productID, quantity)
	if err != nil {
		r.logger.Error().Err(err).
			Str("cart_id", cartID.String()).
			Str("product_id", productID.String()).
			Msg("failed to set cart item quantity")
		return false, fmt.Errorf("failed to set cart item quantity: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// RemoveItem deletes the item for productID if present. Removing an
// absent item is a no-op.
func (r *cartRepository) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`

	_, err := r.pool.Exec(ctx, query, cartID, productID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("cart_id", cartID.String()).
			Str("product_id", productID.String()).
			Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return nil
}

// Clear deletes all items in the cart.
func (r *cartRepository) Clear(ctx context.Context, cartID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	r.logger.Debug().Str("cart_id", cartID.String()).Msg("cart cleared")

	return nil
}
