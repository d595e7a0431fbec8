package domain

import (
	"context"
	"time"
)

// Category groups products for navigation and reporting.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ImageURL  string    `json:"image_url"`
	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryRepository defines the contract for category data persistence.
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (Category, error)
	GetBySlug(ctx context.Context, slug string) (Category, error)
	FetchAll(ctx context.Context) ([]Category, error)

	// Store creates a new category.
	// Returns ErrConflict when the slug is already taken.
	Store(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	SoftDelete(ctx context.Context, id int64) error
}

// CategoryUsecase defines the business logic contract for category CRUD.
type CategoryUsecase interface {
	GetBySlug(ctx context.Context, slug string) (Category, error)
	FetchAll(ctx context.Context) ([]Category, error)
	Store(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}
