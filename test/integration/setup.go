package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"shopkart/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, connects a pool and
// applies the schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedProducts inserts test product data and returns the generated IDs in
// insertion order.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []uuid.UUID {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name     string
		price    float64
		category string
		stock    int
	}{
		{"Wireless Mouse", 799.00, "Electronics", 40},
		{"Mechanical Keyboard", 3499.00, "Electronics", 15},
		{"Water Bottle", 299.00, "Home", 120},
		{"Desk Lamp", 1299.00, "Home", 30},
		{"Running Shoes", 2599.00, "Sports", 25},
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		id := uuid.New()
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, price, category, stock, status)
			 VALUES ($1, $2, $3, $4, $5, 'active')`,
			id, p.name, p.price, p.category, p.stock,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		ids = append(ids, id)
	}

	return ids
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "cart_items", "carts", "products", "users"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
