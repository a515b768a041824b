package repo

import (
	"context"

	"github.com/stylecart/backend/internal/catalog/models"
)

var sampleProducts = []models.Product{
	{ID: "m-1", Name: "Classic Cotton Shirt", Brand: "StyleCraft", Price: 1299, OriginalPrice: 2199,
		Image: "men-product.jpg", Rating: 4.3, RatingCount: 248, Discount: 41, Category: "Men",
		Description: "A timeless cotton shirt perfect for both casual and formal occasions.", Stock: 50},
	{ID: "m-2", Name: "Casual Denim Jeans", Brand: "StyleCraft", Price: 1699, OriginalPrice: 2499,
		Image: "men-product-2.jpg", Rating: 4.2, RatingCount: 312, Discount: 32, Category: "Men",
		Description: "Classic denim jeans with a modern fit. Durable and comfortable for everyday wear.", Stock: 40},
	{ID: "m-3", Name: "Slim Fit Chinos", Brand: "UrbanMode", Price: 1499, OriginalPrice: 2299,
		Image: "product-1.jpg", Rating: 4.4, RatingCount: 198, Discount: 35, Category: "Men",
		Description: "Versatile slim-fit chinos crafted for all-day comfort.", Stock: 45},
	{ID: "w-1", Name: "Summer Floral Dress", Brand: "FashionForward", Price: 1899, OriginalPrice: 2799,
		Image: "women-product-1.jpg", Rating: 4.6, RatingCount: 221, Discount: 32, Category: "Women",
		Description: "Beautiful summer dress with elegant floral patterns for casual outings and parties.", Stock: 30},
	{ID: "w-2", Name: "High-Rise Jeans", Brand: "DenimCo", Price: 1799, OriginalPrice: 2599,
		Image: "product-2.jpg", Rating: 4.4, RatingCount: 356, Discount: 31, Category: "Women",
		Description: "Flattering high-rise jeans with stretch comfort.", Stock: 35},
	{ID: "k-1", Name: "Graphic Tee", Brand: "Playful", Price: 599, OriginalPrice: 899,
		Image: "kids-products-1.jpg", Rating: 4.2, RatingCount: 140, Discount: 33, Category: "Kids",
		Description: "Soft cotton tee with a fun graphic print.", Stock: 80},
	{ID: "k-2", Name: "Kids Joggers", Brand: "ActiveKids", Price: 799, OriginalPrice: 1199,
		Image: "kids-product-2.jpg", Rating: 4.3, RatingCount: 96, Discount: 33, Category: "Kids",
		Description: "Comfy joggers for everyday adventures.", Stock: 70},
	{ID: "k-3", Name: "Printed Dress", Brand: "TinyTrends", Price: 999, OriginalPrice: 1499,
		Image: "kids-product-3.jpg", Rating: 4.5, RatingCount: 122, Discount: 33, Category: "Kids",
		Description: "Cute printed dress for playful days.", Stock: 50},
	{ID: "a-1", Name: "Leather Belt", Brand: "Crafted", Price: 799, OriginalPrice: 1299,
		Image: "accessories-1.jpg", Rating: 4.2, RatingCount: 210, Discount: 38, Category: "Accessories",
		Description: "Genuine leather belt with a classic buckle.", Stock: 60},
	{ID: "a-2", Name: "Analog Watch", Brand: "TimeLine", Price: 2499, OriginalPrice: 3999,
		Image: "accessories-2.jpg", Rating: 4.6, RatingCount: 310, Discount: 38, Category: "Accessories",
		Description: "Minimal analog watch with a leather strap.", Stock: 25},
}

// SeedSampleData inserts the demo catalog once, on first boot against an
// empty table.
func (r *GormRepo) SeedSampleData(ctx context.Context) error {
	total, err := r.CountProducts(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	return r.CreateProducts(ctx, sampleProducts)
}
