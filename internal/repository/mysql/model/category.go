package model

import (
	"time"

	"github.com/shopway/shopway/domain"
)

type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255;not null"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex"`
	ImageURL  string    `gorm:"column:image_url;size:512"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Category) TableName() string {
	return "category"
}

func NewCategoryFromDomain(c *domain.Category) *Category {
	return &Category{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		ImageURL:  c.ImageURL,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *Category) ToDomain() domain.Category {
	return domain.Category{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		ImageURL:  m.ImageURL,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
