package brand

import (
	"context"
	"strings"

	"github.com/shopway/shopway/domain"
)

// Service implements domain.BrandUsecase.
type Service struct {
	brandRepo domain.BrandRepository
}

func NewService(brandRepo domain.BrandRepository) *Service {
	return &Service{brandRepo: brandRepo}
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (domain.Brand, error) {
	return s.brandRepo.GetBySlug(ctx, slug)
}

func (s *Service) FetchAll(ctx context.Context) ([]domain.Brand, error) {
	return s.brandRepo.FetchAll(ctx)
}

func (s *Service) Store(ctx context.Context, b *domain.Brand) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Slug = strings.TrimSpace(b.Slug)
	if b.Name == "" || b.Slug == "" {
		return domain.ErrBadParamInput
	}
	return s.brandRepo.Store(ctx, b)
}

func (s *Service) Update(ctx context.Context, b *domain.Brand) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Slug = strings.TrimSpace(b.Slug)
	if b.Name == "" || b.Slug == "" {
		return domain.ErrBadParamInput
	}
	if _, err := s.brandRepo.GetByID(ctx, b.ID); err != nil {
		return err
	}
	return s.brandRepo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.brandRepo.SoftDelete(ctx, id)
}
