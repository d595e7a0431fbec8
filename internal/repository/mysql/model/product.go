package model

import (
	"time"

	"github.com/shopway/shopway/domain"
)

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:255;not null"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(12,2);not null"`
	Stock       int64     `gorm:"not null;default:0"`
	CategoryID  int64     `gorm:"column:category_id;index"`
	BrandID     int64     `gorm:"column:brand_id;index"`
	ImageURL    string    `gorm:"column:image_url;size:512"`
	IsDeleted   bool      `gorm:"column:is_deleted;not null;default:0"`
	CreatedAt   time.Time `gorm:"type:datetime"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
}

func (Product) TableName() string {
	return "product"
}

func NewProductFromDomain(p *domain.Product) *Product {
	return &Product{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		ImageURL:    p.ImageURL,
		IsDeleted:   p.IsDeleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *Product) ToDomain() domain.Product {
	return domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		CategoryID:  m.CategoryID,
		BrandID:     m.BrandID,
		ImageURL:    m.ImageURL,
		IsDeleted:   m.IsDeleted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
