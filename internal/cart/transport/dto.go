package transport

import (
	"time"

	"github.com/stylecart/backend/pkg/catalogclient"
)

type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  uint   `json:"quantity"`
}

// Quantity is a pointer so an absent field is distinguishable from an
// explicit zero; only the latter removes the line.
type UpdateItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity *int   `json:"quantity"`
}

// EnrichedItem is a cart line joined with its live product record.
type EnrichedItem struct {
	ID        string                 `json:"id"`
	Product   *catalogclient.Product `json:"product"`
	Quantity  uint                   `json:"quantity"`
	ItemTotal int64                  `json:"itemTotal"`
	AddedAt   time.Time              `json:"addedAt"`
}

type CartResponse struct {
	Items     []EnrichedItem `json:"items"`
	Total     int64          `json:"total"`
	ItemCount uint           `json:"itemCount"`
}
