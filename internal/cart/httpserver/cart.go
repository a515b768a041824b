package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stylecart/backend/internal/cart/service"
	"github.com/stylecart/backend/internal/cart/transport"
	"github.com/stylecart/backend/pkg/logging"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	userID := c.Param("userID")

	cart, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	userID := c.Param("userID")

	var req transport.AddItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.ProductID == "" {
		l.Warn("add_to_cart_error", "status", 400, "reason", "missing product id")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product ID is required"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.Svc.AddItem(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		default:
			l.Error("add_to_cart_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
	}

	l.Info("add_to_cart_success", "user_id", userID, "product_id", req.ProductID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_cart_item")

	userID := c.Param("userID")

	var req transport.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_item_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.ItemID == "" || req.Quantity == nil {
		l.Warn("update_cart_item_error", "status", 400, "reason", "missing item id or quantity")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Item ID and quantity are required"})
	}

	removed, item, err := h.Svc.UpdateItem(ctx, userID, req.ItemID, *req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_cart_item_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_cart_item_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Cart item not found"})
		default:
			l.Error("update_cart_item_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
	}

	if removed {
		l.Info("update_cart_item_removed", "user_id", userID, "item_id", req.ItemID)
		return c.JSON(http.StatusOK, map[string]string{"message": "Cart updated successfully"})
	}
	l.Info("update_cart_item_success", "user_id", userID, "item_id", req.ItemID)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_from_cart")

	userID := c.Param("userID")

	itemID := c.Param("itemID")

	if err := h.Svc.RemoveItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Cart item not found"})
		}
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	l.Info("remove_from_cart_success", "user_id", userID, "item_id", itemID)
	return c.JSON(http.StatusOK, map[string]string{"message": "Item removed from cart"})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear_cart")

	userID := c.Param("userID")

	if err := h.Svc.ClearCart(ctx, userID); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	l.Info("clear_cart_success", "user_id", userID)
	return c.JSON(http.StatusOK, map[string]string{"message": "Cart cleared successfully"})
}
