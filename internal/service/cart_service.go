package service

import (
	"context"

	"shopkart/internal/model"
	"shopkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// GetCart returns the user's cart with product data joined in, or an
// empty cart shape when no cart exists yet.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*model.CartView, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cart == nil {
		return &model.CartView{UserID: userID, Items: []model.CartItemView{}}, nil
	}

	return s.buildView(ctx, userID, cart.ID)
}

// AddItem adds quantity of a product to the cart. An existing line for
// the same product has the quantity added to it, not replaced.
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartView, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		s.logger.Warn().Str("product_id", productID.String()).Msg("add to cart for unknown product")
		return nil, model.ErrProductNotFound
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpsertItem(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("product_id", productID.String()).
		Int("quantity", quantity).
		Msg("item added to cart")

	return s.buildView(ctx, userID, cart.ID)
}

// UpdateItemQuantity sets the quantity of an existing item. A quantity
// of zero or less removes the item.
func (s *cartService) UpdateItemQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartView, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, model.ErrCartNotFound
	}

	if quantity <= 0 {
		if err := s.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
			return nil, err
		}
		return s.buildView(ctx, userID, cart.ID)
	}

	found, err := s.cartRepo.SetItemQuantity(ctx, cart.ID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrItemNotFound
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("product_id", productID.String()).
		Int("quantity", quantity).
		Msg("cart item quantity updated")

	return s.buildView(ctx, userID, cart.ID)
}

// RemoveItem removes a product from the cart. Removing a product that is
// not in the cart leaves the cart unchanged.
func (s *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*model.CartView, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, model.ErrCartNotFound
	}

	if err := s.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("product_id", productID.String()).
		Msg("item removed from cart")

	return s.buildView(ctx, userID, cart.ID)
}

// buildView assembles the client-facing cart shape. Dangling product
// references are already filtered by the repository join.
func (s *cartService) buildView(ctx context.Context, userID, cartID uuid.UUID) (*model.CartView, error) {
	items, err := s.cartRepo.GetResolvedItems(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []model.CartItemView{}
	}

	return &model.CartView{UserID: userID, Items: items}, nil
}
