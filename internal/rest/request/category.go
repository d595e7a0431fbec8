package request

import "github.com/shopway/shopway/domain"

type Category struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required,slug"`
	ImageURL string `json:"image_url"`
}

// ToDomain: Request -> Domain
func (r *Category) ToDomain() domain.Category {
	return domain.Category{
		Name:     r.Name,
		Slug:     r.Slug,
		ImageURL: r.ImageURL,
	}
}

type Brand struct {
	Name    string `json:"name" binding:"required"`
	Slug    string `json:"slug" binding:"required,slug"`
	LogoURL string `json:"logo_url"`
}

// ToDomain: Request -> Domain
func (r *Brand) ToDomain() domain.Brand {
	return domain.Brand{
		Name:    r.Name,
		Slug:    r.Slug,
		LogoURL: r.LogoURL,
	}
}
