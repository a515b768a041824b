package models

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// transitions is the closed graph of legal status moves. delivered and
// cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	_, ok := transitions[st]
	return st, ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Order's user, total and items are immutable after creation; only
// Status and UpdatedAt change afterwards.
type Order struct {
	ID              string      `gorm:"primaryKey"          json:"id"`
	UserID          string      `gorm:"index;not null"      json:"userId"`
	TotalAmount     int64       `gorm:"not null"            json:"totalAmount"`
	Status          Status      `gorm:"not null;default:pending" json:"status"`
	PaymentMethod   string      `json:"paymentMethod"`
	ShippingAddress string      `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Items           []OrderItem `gorm:"foreignKey:OrderID"  json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots product name and price as observed at checkout;
// later catalog changes never alter it.
type OrderItem struct {
	ID           uint   `gorm:"primaryKey"     json:"id"`
	OrderID      string `gorm:"index;not null" json:"orderId"`
	ProductID    string `gorm:"not null"       json:"productId"`
	ProductName  string `gorm:"not null"       json:"productName"`
	ProductPrice int64  `gorm:"not null"       json:"productPrice"`
	Quantity     uint   `gorm:"not null;check:quantity>0" json:"quantity"`
	ItemTotal    int64  `gorm:"not null"       json:"itemTotal"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
