package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the DDL for all tables. Statements are idempotent so Migrate
// can run on every startup.
//
// order_items.product_id deliberately has no foreign key: order items are
// snapshots and must survive product deletion. cart_items cascades instead,
// so a deleted product disappears from carts.
const Schema = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		last_login TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price DECIMAL(12, 2) NOT NULL CHECK (price >= 0),
		category VARCHAR(100) NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		rating_average DECIMAL(3, 2) NOT NULL DEFAULT 0,
		rating_count INTEGER NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);

	CREATE TABLE IF NOT EXISTS carts (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS cart_items (
		cart_id UUID NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
		product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		PRIMARY KEY (cart_id, product_id)
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		order_number VARCHAR(40) NOT NULL UNIQUE,
		total_amount DECIMAL(12, 2) NOT NULL,
		street VARCHAR(255) NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		postal_code VARCHAR(20) NOT NULL,
		country VARCHAR(100) NOT NULL DEFAULT 'India',
		payment_method VARCHAR(20) NOT NULL,
		payment_id VARCHAR(255),
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		order_status VARCHAR(20) NOT NULL DEFAULT 'processing',
		delivery_date TIMESTAMPTZ NOT NULL,
		cancellation_reason TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders (user_id);

	CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id UUID NOT NULL,
		product_name VARCHAR(255) NOT NULL,
		price DECIMAL(12, 2) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity >= 1)
	);

	CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id);
`

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("database schema applied")

	return nil
}
