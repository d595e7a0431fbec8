package domain

import (
	"context"
	"time"
)

// Product is representing the Product data struct
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int64     `json:"stock"`
	CategoryID  int64     `json:"category_id"`
	BrandID     int64     `json:"brand_id"`
	ImageURL    string    `json:"image_url"`
	IsDeleted   bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category *Category `json:"category,omitempty"`
	Brand    *Brand    `json:"brand,omitempty"`
}

// ProductFilter narrows a product search. Zero values mean "no constraint".
type ProductFilter struct {
	Search     string // case-insensitive substring match on name
	CategoryID int64
	BrandID    int64
	MinPrice   float64
	MaxPrice   float64
}

// ProductRepository defines the contract for product data persistence.
type ProductRepository interface {
	// GetByID retrieves a live product by its ID.
	// Returns ErrNotFound if the product doesn't exist or is soft-deleted.
	GetByID(ctx context.Context, id int64) (Product, error)

	// GetByIDs retrieves live products for the given IDs in one query.
	GetByIDs(ctx context.Context, ids []int64) ([]Product, error)

	// GetBySlug retrieves a live product by its slug.
	GetBySlug(ctx context.Context, slug string) (Product, error)

	// Fetch returns one page of live products matching the filter plus the
	// total count for the same filter.
	Fetch(ctx context.Context, filter ProductFilter, page PageQuery) ([]Product, int64, error)

	// Store creates a new product. Backfills the ID on success.
	Store(ctx context.Context, p *Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, p *Product) error

	// SoftDelete marks the product deleted.
	// Returns ErrNotFound when absent or already deleted.
	SoftDelete(ctx context.Context, id int64) error

	// AdjustStock applies stock = stock + delta atomically.
	// Returns ErrBadParamInput when the adjustment would drive stock negative.
	AdjustStock(ctx context.Context, id int64, delta int64) error
}

// ProductUsecase defines the business logic contract for catalog operations.
type ProductUsecase interface {
	GetByID(ctx context.Context, id int64) (Product, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
	Search(ctx context.Context, filter ProductFilter, page PageQuery) ([]Product, PageInfo, error)
	Store(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, delta int64) (Product, error)
}
