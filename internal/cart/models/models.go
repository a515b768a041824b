package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem holds one line per (user, product) pair; the unique index is
// what the add-item upsert conflicts against.
type CartItem struct {
	ID        string    `gorm:"primaryKey"                                 json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"userId"`
	ProductID string    `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"productId"`
	Quantity  uint      `gorm:"default:1;check:quantity>0"                 json:"quantity"`
	AddedAt   time.Time `gorm:"autoCreateTime"                             json:"addedAt"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}
