package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopkart/internal/model"
	"shopkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// seedProduct is the on-disk seed file shape. The ID is optional; when
// absent a deterministic ID is derived from the product name so that
// reseeding upserts the same rows instead of duplicating them.
type seedProduct struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Category    string              `json:"category"`
	Stock       int                 `json:"stock"`
	Status      model.ProductStatus `json:"status"`
	Rating      *model.Rating       `json:"rating"`
}

// seedNamespace namespaces derived product IDs.
var seedNamespace = uuid.MustParse("5bd3ff20-89a1-4a28-9f3e-0c7a57ce1d88")

// parseProducts decodes a JSON seed document into catalog products.
func parseProducts(data []byte) ([]model.Product, error) {
	var raw []seedProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid seed JSON: %w", err)
	}

	now := time.Now()
	products := make([]model.Product, 0, len(raw))
	for i, sp := range raw {
		if sp.Name == "" || sp.Category == "" {
			return nil, fmt.Errorf("seed product %d: name and category are required", i)
		}

		id := uuid.NewSHA1(seedNamespace, []byte(sp.Name))
		if sp.ID != "" {
			parsed, err := uuid.Parse(sp.ID)
			if err != nil {
				return nil, fmt.Errorf("seed product %d: invalid id %q: %w", i, sp.ID, err)
			}
			id = parsed
		}

		status := sp.Status
		if status == "" {
			status = model.ProductStatusActive
		}
		if !status.Valid() {
			return nil, fmt.Errorf("seed product %d: invalid status %q", i, sp.Status)
		}

		p := model.Product{
			ID:          id,
			Name:        sp.Name,
			Description: sp.Description,
			Price:       sp.Price,
			Category:    sp.Category,
			Stock:       sp.Stock,
			Status:      status,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if sp.Rating != nil {
			p.Rating = *sp.Rating
		}
		products = append(products, p)
	}

	return products, nil
}

// Seeder applies a loaded seed catalog to the product store.
type Seeder struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewSeeder creates a new catalog seeder.
func NewSeeder(productRepo repository.ProductRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		productRepo: productRepo,
		logger:      logger.With().Str("component", "seeder").Logger(),
	}
}

// Apply upserts each product. Products already present are updated in
// place; nothing is deleted.
func (s *Seeder) Apply(ctx context.Context, products []model.Product) error {
	for i := range products {
		if err := s.productRepo.Upsert(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
	}

	s.logger.Info().Int("product_count", len(products)).Msg("catalog seeded")

	return nil
}
