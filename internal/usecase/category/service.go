package category

import (
	"context"
	"strings"

	"github.com/shopway/shopway/domain"
)

// Service implements domain.CategoryUsecase.
type Service struct {
	categoryRepo domain.CategoryRepository
}

func NewService(categoryRepo domain.CategoryRepository) *Service {
	return &Service{categoryRepo: categoryRepo}
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}

func (s *Service) FetchAll(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.FetchAll(ctx)
}

func (s *Service) Store(ctx context.Context, c *domain.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Slug = strings.TrimSpace(c.Slug)
	if c.Name == "" || c.Slug == "" {
		return domain.ErrBadParamInput
	}
	return s.categoryRepo.Store(ctx, c)
}

func (s *Service) Update(ctx context.Context, c *domain.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Slug = strings.TrimSpace(c.Slug)
	if c.Name == "" || c.Slug == "" {
		return domain.ErrBadParamInput
	}
	if _, err := s.categoryRepo.GetByID(ctx, c.ID); err != nil {
		return err
	}
	return s.categoryRepo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.categoryRepo.SoftDelete(ctx, id)
}
