package request

import "github.com/shopway/shopway/domain"

type Product struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug" binding:"required,slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Stock       int64   `json:"stock" binding:"gte=0"`
	CategoryID  int64   `json:"category_id"`
	BrandID     int64   `json:"brand_id"`
	ImageURL    string  `json:"image_url"`
}

// ToDomain: Request -> Domain
func (r *Product) ToDomain() domain.Product {
	return domain.Product{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		CategoryID:  r.CategoryID,
		BrandID:     r.BrandID,
		ImageURL:    r.ImageURL,
	}
}

type StockAdjustment struct {
	Delta int64 `json:"delta" binding:"required"`
}
