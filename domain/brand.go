package domain

import (
	"context"
	"time"
)

// Brand is a product manufacturer.
type Brand struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	LogoURL   string    `json:"logo_url"`
	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BrandRepository defines the contract for brand data persistence.
type BrandRepository interface {
	GetByID(ctx context.Context, id int64) (Brand, error)
	GetBySlug(ctx context.Context, slug string) (Brand, error)
	FetchAll(ctx context.Context) ([]Brand, error)

	// Store creates a new brand.
	// Returns ErrConflict when the slug is already taken.
	Store(ctx context.Context, b *Brand) error
	Update(ctx context.Context, b *Brand) error
	SoftDelete(ctx context.Context, id int64) error
}

// BrandUsecase defines the business logic contract for brand CRUD.
type BrandUsecase interface {
	GetBySlug(ctx context.Context, slug string) (Brand, error)
	FetchAll(ctx context.Context) ([]Brand, error)
	Store(ctx context.Context, b *Brand) error
	Update(ctx context.Context, b *Brand) error
	Delete(ctx context.Context, id int64) error
}
