// Package seed loads an initial product catalog into the database on
// startup. The seed file is a JSON array of products, read from the
// local file system or from AWS S3 and applied as upserts so reseeding
// an existing database is safe.
package seed

import (
	"context"

	"shopkart/internal/model"
)

// Loader defines the interface for loading a product seed file.
type Loader interface {
	// Load reads a seed file and returns the products it contains.
	Load(ctx context.Context, location string) ([]model.Product, error)
}
