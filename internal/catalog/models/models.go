package models

// Product ids are opaque, externally assigned strings such as "m-1".
// Prices are integer minor units.
type Product struct {
	ID            string  `gorm:"primaryKey"     json:"id"`
	Name          string  `gorm:"not null"       json:"name"`
	Brand         string  `gorm:"not null"       json:"brand"`
	Price         int64   `gorm:"not null"       json:"price"`
	OriginalPrice int64   `json:"originalPrice"`
	Image         string  `json:"image"`
	Rating        float64 `gorm:"default:0"      json:"rating"`
	RatingCount   int     `gorm:"default:0"      json:"ratingCount"`
	Discount      int     `json:"discount"`
	Category      string  `gorm:"index;not null" json:"category"`
	Description   string  `json:"description"`
	Stock         int     `gorm:"default:0"      json:"stock"`
}

func (Product) TableName() string {
	return "products"
}
