package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stylecart/backend/internal/order/models"
	"github.com/stylecart/backend/internal/order/repo"
	"github.com/stylecart/backend/internal/order/transport"
	"github.com/stylecart/backend/pkg/cartclient"
	"github.com/stylecart/backend/pkg/logging"
)

var (
	ErrValidation        = errors.New("validation")          // 400
	ErrNotFound          = errors.New("not found")           // 404
	ErrEmptyCart         = errors.New("cart is empty")       // 400
	ErrCartUnavailable   = errors.New("cart unavailable")    // 500
	ErrInvalidTransition = errors.New("invalid transition")  // 400
)

type OrderService struct {
	Repo *repo.GormRepo
	Cart *cartclient.Client
}

// PlaceOrder turns the user's current cart into a committed order.
//
// The order and its item snapshots are written atomically; the cart is
// cleared afterwards as a best-effort step. A failed clear is logged and
// swallowed: the two stores share no transaction, and a committed order
// with a stale cart is the accepted outcome, never a rolled-back order.
// A persistence failure, on the other hand, leaves the cart untouched so
// the caller can retry.
func (svc *OrderService) PlaceOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if req.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: paymentMethod is required", ErrValidation)
	}
	if req.ShippingAddress == "" {
		return nil, fmt.Errorf("%w: shippingAddress is required", ErrValidation)
	}

	cart, err := svc.Cart.GetCart(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCartUnavailable, err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID:    line.Product.ID,
			ProductName:  line.Product.Name,
			ProductPrice: line.Product.Price,
			Quantity:     line.Quantity,
			ItemTotal:    line.ItemTotal,
		})
	}

	order := &models.Order{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		TotalAmount:     cart.Total,
		Status:          models.StatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
	}

	order, err = svc.Repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := svc.Cart.ClearCart(ctx, req.UserID); err != nil {
		logging.FromContext(ctx).Warn("cart_clear_failed",
			"user_id", req.UserID, "order_id", order.ID, "error", err)
	}

	return order, nil
}

func (svc *OrderService) GetUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return svc.Repo.ListOrders(ctx, userID)
}

func (svc *OrderService) GetOrderDetails(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := svc.Repo.GetOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	return order, err
}

// UpdateOrderStatus moves the order along the transition graph. Unknown
// statuses and illegal moves are rejected.
func (svc *OrderService) UpdateOrderStatus(ctx context.Context, orderID, newStatus string) (*models.Order, error) {
	status, ok := models.ParseStatus(newStatus)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, newStatus)
	}

	order, err := svc.Repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := svc.Repo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	return svc.Repo.GetOrder(ctx, orderID)
}
