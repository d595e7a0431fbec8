package response

import "github.com/shopway/shopway/domain"

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ProductSummary is the minimal product shape embedded in comment responses.
type ProductSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url,omitempty"`
}

// NewProductFromDomain: Domain -> Response
func NewProductFromDomain(p *domain.Product) Product {
	res := Product{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:   p.UpdatedAt.Format(DateTimeFormat),
	}
	if p.Category != nil {
		res.Category = p.Category.Name
	}
	if p.Brand != nil {
		res.Brand = p.Brand.Name
	}
	return res
}

func NewProductSummaryFromDomain(p *domain.Product) *ProductSummary {
	if p == nil {
		return nil
	}
	return &ProductSummary{
		ID:       p.ID,
		Name:     p.Name,
		Slug:     p.Slug,
		ImageURL: p.ImageURL,
	}
}
