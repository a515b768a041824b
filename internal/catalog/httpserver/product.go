package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/stylecart/backend/internal/catalog/service"
	"github.com/stylecart/backend/internal/catalog/util"
	"github.com/stylecart/backend/pkg/logging"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id := c.Param("id")

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_product_failed", "status", 404, "product_id", id)
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "cannot get product"})
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	category := c.QueryParam("category")
	limit := util.ParseIntDefault(c.QueryParam("limit"), 0)

	products, err := h.Svc.ListProducts(ctx, category, limit)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "cannot list products"})
	}

	l.Info("get_products_success", "count", len(products))
	return c.JSON(http.StatusOK, products)
}
