package service

import (
	"context"
	"fmt"
	"time"

	"shopkart/internal/model"
	"shopkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves products with pagination, optionally filtered by category.
func (s *productService) GetAll(ctx context.Context, limit, offset int, category string) ([]model.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.productRepo.GetAll(ctx, limit, offset, category)
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// Create adds a new product to the catalog.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if req == nil || req.Name == "" || req.Category == "" {
		return nil, model.ErrMissingField
	}

	status := req.Status
	if status == "" {
		status = model.ProductStatusActive
	}
	if !status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	now := time.Now()
	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

// Update edits an existing product. Ratings are not editable through
// this path.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if req == nil || req.Name == "" || req.Category == "" {
		return nil, model.ErrMissingField
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Category = req.Category
	product.Stock = req.Stock
	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, model.ErrInvalidStatus
		}
		product.Status = req.Status
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID.String()).Msg("product updated")

	return product, nil
}

// Delete removes a product from the catalog. Cart lines referencing it
// disappear with it; order snapshots keep their copied name and price.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}
