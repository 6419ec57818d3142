package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopkart/internal/model"
	"shopkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultCancellationReason is recorded when a cancel request carries no reason.
const DefaultCancellationReason = "Cancelled by user"

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// newOrderNumber generates a unique human-readable order number of the
// form ORD<unix-millis><5 random chars>.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:5]
	return fmt.Sprintf("ORD%d%s", now.UnixMilli(), suffix)
}

// PlaceOrder validates the checkout payload, snapshots submitted items
// and prices, and persists the order with a freshly generated order
// number. The source cart is cleared afterwards as a separate best-effort
// step: a failure there leaves already-ordered items in the cart but
// never fails the placed order.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest) (*model.OrderView, error) {
	if req == nil || req.UserID == "" || len(req.Items) == 0 || req.TotalAmount == 0 ||
		req.Address == nil || req.PaymentMethod == "" || req.DeliveryDate == nil {
		return nil, model.ErrMissingField
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, model.ErrMissingField
	}

	if !req.PaymentMethod.Valid() {
		return nil, model.ErrInvalidStatus
	}

	address := *req.Address
	if !address.Complete() {
		s.logger.Warn().Str("user_id", req.UserID).Msg("checkout with incomplete address")
		return nil, model.ErrIncompleteAddress
	}
	if address.Country == "" {
		address.Country = "India"
	}

	// cod settles at delivery; everything else awaits gateway verification
	paymentStatus := model.PaymentStatusPending
	if req.PaymentMethod == model.PaymentMethodCOD {
		paymentStatus = model.PaymentStatusCODPending
	}

	now := time.Now()
	order := &model.Order{
		ID:            uuid.New(),
		UserID:        userID,
		OrderNumber:   newOrderNumber(now),
		TotalAmount:   req.TotalAmount,
		Address:       address,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: paymentStatus,
		OrderStatus:   model.OrderStatusProcessing,
		DeliveryDate:  *req.DeliveryDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Snapshot items from the payload. The price is whatever the caller
	// submitted, defaulting to 0; product names are captured from the
	// catalog where the product still resolves.
	productIDs := make([]uuid.UUID, 0, len(req.Items))
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, model.ErrMissingField
		}
		if item.Quantity < 1 {
			return nil, model.ErrInvalidQuantity
		}
		productIDs = append(productIDs, productID)
		items = append(items, model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: productID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}
	byID := productsByID(products)
	for i := range items {
		if p, ok := byID[items[i].ProductID]; ok {
			items[i].ProductName = p.Name
		}
	}

	// Persist order and items in one transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Str("payment_method", string(order.PaymentMethod)).
		Int("item_count", len(items)).
		Msg("order placed successfully")

	// Clear the source cart outside the order transaction. The order
	// stands even if this fails; stale items stay in the cart.
	s.clearCart(ctx, userID)

	return s.viewFor(order, items, byID, nil), nil
}

// clearCart is the post-checkout follow-up. Errors are logged, not returned.
func (s *orderService) clearCart(ctx context.Context, userID uuid.UUID) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to look up cart after checkout")
		return
	}
	if cart == nil {
		return
	}
	if err := s.cartRepo.Clear(ctx, cart.ID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart after checkout")
	}
}

// GetByID retrieves an order with its items and resolved products.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderView, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	byID, err := s.resolveProducts(ctx, items)
	if err != nil {
		return nil, err
	}

	user := s.userSummary(ctx, order.UserID)

	return s.viewFor(order, items, byID, user), nil
}

// ListByUser retrieves a user's orders, newest first. A user with no
// orders gets an empty list, not an error.
func (s *orderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.OrderView, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.buildViews(ctx, orders, false)
}

// ListAll retrieves all orders with owning user info resolved.
func (s *orderService) ListAll(ctx context.Context) ([]model.OrderView, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.buildViews(ctx, orders, true)
}

// UpdateStatus applies an explicit status update. Orders in a terminal
// state (delivered or cancelled) cannot change order status.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, req *model.UpdateOrderStatusRequest) (*model.OrderView, error) {
	if req == nil || (req.OrderStatus == "" && req.PaymentStatus == "") {
		return nil, model.ErrMissingField
	}

	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if req.OrderStatus != "" {
		if !req.OrderStatus.Valid() {
			return nil, model.ErrInvalidStatus
		}
		if order.OrderStatus.Terminal() && req.OrderStatus != order.OrderStatus {
			return nil, model.ErrOrderTerminal
		}
		order.OrderStatus = req.OrderStatus
	}

	if req.PaymentStatus != "" {
		if !req.PaymentStatus.Valid() {
			return nil, model.ErrInvalidStatus
		}
		order.PaymentStatus = req.PaymentStatus
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_status", string(order.OrderStatus)).
		Str("payment_status", string(order.PaymentStatus)).
		Msg("order status updated")

	byID, err := s.resolveProducts(ctx, items)
	if err != nil {
		return nil, err
	}

	return s.viewFor(order, items, byID, nil), nil
}

// Cancel cancels an order. Delivered orders cannot be cancelled, and
// cancelling an already-cancelled order is an error, not a no-op.
func (s *orderService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*model.OrderView, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if order.OrderStatus == model.OrderStatusDelivered {
		return nil, model.ErrOrderDelivered
	}
	if order.OrderStatus == model.OrderStatusCancelled {
		return nil, model.ErrOrderCancelled
	}

	if reason == "" {
		reason = DefaultCancellationReason
	}

	order.OrderStatus = model.OrderStatusCancelled
	order.CancellationReason = &reason

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("reason", reason).
		Msg("order cancelled")

	byID, err := s.resolveProducts(ctx, items)
	if err != nil {
		return nil, err
	}

	return s.viewFor(order, items, byID, nil), nil
}

// Delete hard-deletes an order. Only the order's owner or an admin may
// delete it.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID, requester *model.User) error {
	order, _, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return model.ErrOrderNotFound
	}

	if requester == nil || (requester.Role != model.RoleAdmin && requester.ID != order.UserID) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Msg("unauthorised order delete attempt")
		return model.ErrForbidden
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")

	return nil
}

// MarkPaymentResult records the gateway verification outcome. Only
// orders still awaiting payment can transition to paid or failed.
func (s *orderService) MarkPaymentResult(ctx context.Context, id uuid.UUID, paymentID string, success bool) (*model.OrderView, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !order.PaymentStatus.Awaiting() {
		return nil, model.ErrPaymentSettled
	}

	if success {
		order.PaymentStatus = model.PaymentStatusPaid
	} else {
		order.PaymentStatus = model.PaymentStatusFailed
	}
	if paymentID != "" {
		order.PaymentID = &paymentID
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("payment_status", string(order.PaymentStatus)).
		Msg("payment result recorded")

	byID, err := s.resolveProducts(ctx, items)
	if err != nil {
		return nil, err
	}

	return s.viewFor(order, items, byID, nil), nil
}

// resolveProducts loads current catalog data for the products referenced
// by the given items. Deleted products are simply absent from the result.
func (s *orderService) resolveProducts(ctx context.Context, items []model.OrderItem) (map[uuid.UUID]model.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}

	return productsByID(products), nil
}

// userSummary resolves the owning user for admin views. A missing user
// is tolerated; the view simply omits the info.
func (s *orderService) userSummary(ctx context.Context, userID uuid.UUID) *model.UserSummary {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil
	}
	return &model.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}

func (s *orderService) buildViews(ctx context.Context, orders []model.Order, withUsers bool) ([]model.OrderView, error) {
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	itemsByOrder, err := s.orderRepo.ItemsForOrders(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	var allItems []model.OrderItem
	for _, items := range itemsByOrder {
		allItems = append(allItems, items...)
	}

	byID, err := s.resolveProducts(ctx, allItems)
	if err != nil {
		return nil, err
	}

	userCache := make(map[uuid.UUID]*model.UserSummary)
	views := make([]model.OrderView, 0, len(orders))
	for i := range orders {
		order := orders[i]
		var user *model.UserSummary
		if withUsers {
			cached, ok := userCache[order.UserID]
			if !ok {
				cached = s.userSummary(ctx, order.UserID)
				userCache[order.UserID] = cached
			}
			user = cached
		}
		views = append(views, *s.viewFor(&order, itemsByOrder[order.ID], byID, user))
	}

	return views, nil
}

// viewFor assembles the client-facing order shape, attaching current
// product data to each snapshot item where the product still exists.
func (s *orderService) viewFor(order *model.Order, items []model.OrderItem, products map[uuid.UUID]model.Product, user *model.UserSummary) *model.OrderView {
	itemViews := make([]model.OrderItemView, 0, len(items))
	for _, item := range items {
		view := model.OrderItemView{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		}
		if p, ok := products[item.ProductID]; ok {
			product := p
			view.Product = &product
		}
		itemViews = append(itemViews, view)
	}

	return &model.OrderView{
		Order: *order,
		Items: itemViews,
		User:  user,
	}
}

func productsByID(products []model.Product) map[uuid.UUID]model.Product {
	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}
