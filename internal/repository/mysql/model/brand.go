package model

import (
	"time"

	"github.com/shopway/shopway/domain"
)

type Brand struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255;not null"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex"`
	LogoURL   string    `gorm:"column:logo_url;size:512"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Brand) TableName() string {
	return "brand"
}

func NewBrandFromDomain(b *domain.Brand) *Brand {
	return &Brand{
		ID:        b.ID,
		Name:      b.Name,
		Slug:      b.Slug,
		LogoURL:   b.LogoURL,
		IsDeleted: b.IsDeleted,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (m *Brand) ToDomain() domain.Brand {
	return domain.Brand{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		LogoURL:   m.LogoURL,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
