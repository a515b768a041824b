package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stylecart/backend/internal/order/service"
	"github.com/stylecart/backend/internal/order/transport"
	"github.com/stylecart/backend/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	order, err := h.Svc.PlaceOrder(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_order_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyCart):
			l.Warn("create_order_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cart is empty"})
		case errors.Is(err, service.ErrCartUnavailable):
			l.Error("create_order_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "cart service unavailable"})
		default:
			l.Error("create_order_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
	}

	l.Info("create_order_success", "order_id", order.ID, "user_id", order.UserID)
	return c.JSON(http.StatusCreated, transport.OrderResponse{
		Message: "Order created successfully",
		Order:   order,
	})
}

func (h *OrderHTTP) GetUserOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_user_orders")

	userID := c.Param("userID")

	orders, err := h.Svc.GetUserOrders(ctx, userID)
	if err != nil {
		l.Error("get_user_orders_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrderDetails(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order_details")

	orderID := c.Param("orderID")

	order, err := h.Svc.GetOrderDetails(ctx, orderID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_order_details_error", "status", 404, "order_id", orderID)
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		l.Error("get_order_details_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_order_status")

	orderID := c.Param("orderID")

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_status_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.Status == "" {
		l.Warn("update_order_status_error", "status", 400, "reason", "missing status")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Status is required"})
	}

	order, err := h.Svc.UpdateOrderStatus(ctx, orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_order_status_error", "status", 404, "order_id", orderID)
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidTransition):
			l.Warn("update_order_status_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			l.Error("update_order_status_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
	}

	l.Info("update_order_status_success", "order_id", orderID, "new_status", req.Status)
	return c.JSON(http.StatusOK, transport.OrderResponse{
		Message: "Order status updated successfully",
		Order:   order,
	})
}
