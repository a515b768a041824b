package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/stylecart/backend/internal/order/models"
)

type GormRepo struct {
	DB *gorm.DB
}

// CreateOrder persists the order and all its items in one transaction.
// The total must equal the sum of the item totals; this is checked once,
// at write time.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	var sum int64
	for _, item := range order.Items {
		sum += item.ItemTotal
	}
	if sum != order.TotalAmount {
		return nil, fmt.Errorf("order total %d does not match item totals %d", order.TotalAmount, sum)
	}

	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Items").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Where("id = ?", orderID).
		Preload("Items").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) UpdateStatus(ctx context.Context, orderID string, status models.Status) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
