package service

import (
	"context"

	"github.com/stylecart/backend/internal/catalog/models"
	"github.com/stylecart/backend/internal/catalog/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, category string, limit int) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, category, limit)
}
