package transport

import "github.com/stylecart/backend/internal/order/models"

type CreateOrderRequest struct {
	UserID          string `json:"userId"`
	PaymentMethod   string `json:"paymentMethod"`
	ShippingAddress string `json:"shippingAddress"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	Message string        `json:"message"`
	Order   *models.Order `json:"order"`
}
