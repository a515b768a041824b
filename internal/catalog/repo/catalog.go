package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/stylecart/backend/internal/catalog/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, category string, limit int) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})

	if category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	items := []models.Product{}
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) CreateProducts(ctx context.Context, products []models.Product) error {
	return r.DB.WithContext(ctx).Create(&products).Error
}
