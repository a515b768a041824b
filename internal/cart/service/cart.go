package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stylecart/backend/internal/cart/models"
	"github.com/stylecart/backend/internal/cart/repo"
	"github.com/stylecart/backend/internal/cart/transport"
	"github.com/stylecart/backend/pkg/catalogclient"
	"github.com/stylecart/backend/pkg/logging"
)

var (
	ErrValidation = errors.New("validation")           // 400
	ErrNotFound   = errors.New("not found")            // 404
	ErrUpstream   = errors.New("upstream unavailable") // 500
)

type CartService struct {
	Repo    *repo.GormRepo
	Catalog *catalogclient.Client
}

// GetCart returns the user's lines enriched with live product data.
// Lines whose product lookup fails are dropped from items and total but
// still counted in itemCount; mutation paths stay fail-fast while reads
// stay lossy-tolerant.
func (s *CartService) GetCart(ctx context.Context, userID string) (*transport.CartResponse, error) {
	items, err := s.Repo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	l := logging.FromContext(ctx)

	resp := &transport.CartResponse{Items: []transport.EnrichedItem{}}
	for _, item := range items {
		resp.ItemCount += item.Quantity

		product, err := s.Catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			l.Warn("cart_enrichment_dropped_line",
				"user_id", userID, "product_id", item.ProductID, "error", err)
			continue
		}

		itemTotal := product.Price * int64(item.Quantity)
		resp.Total += itemTotal
		resp.Items = append(resp.Items, transport.EnrichedItem{
			ID:        item.ID,
			Product:   product,
			Quantity:  item.Quantity,
			ItemTotal: itemTotal,
			AddedAt:   item.AddedAt,
		})
	}

	return resp, nil
}

// AddItem verifies the product exists before touching storage, then
// performs the atomic increment-or-create.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity uint) (*models.CartItem, error) {
	if productID == "" {
		return nil, fmt.Errorf("product id required: %w", ErrValidation)
	}
	if quantity == 0 {
		return nil, fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}

	if _, err := s.Catalog.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, catalogclient.ErrNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("catalog lookup: %v: %w", err, ErrUpstream)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.Repo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem sets the quantity exactly; zero or negative removes the
// line and reports removed=true.
func (s *CartService) UpdateItem(ctx context.Context, userID string, itemID string, quantity int) (removed bool, item *models.CartItem, err error) {
	if itemID == "" {
		return false, nil, fmt.Errorf("item id required: %w", ErrValidation)
	}

	if quantity <= 0 {
		if err := s.Repo.DeleteItem(ctx, userID, itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
			}
			return false, nil, err
		}
		return true, nil, nil
	}

	if err := s.Repo.SetQuantity(ctx, userID, itemID, uint(quantity)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
		}
		return false, nil, err
	}

	item, err = s.Repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return false, nil, err
	}
	return false, item, nil
}

// RemoveItem deletes the line. A retry after success sees not-found;
// callers treat that as already removed.
func (s *CartService) RemoveItem(ctx context.Context, userID string, itemID string) error {
	err := s.Repo.DeleteItem(ctx, userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return err
}

// ClearCart succeeds even when the cart is already empty.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.Repo.DeleteAll(ctx, userID)
}
