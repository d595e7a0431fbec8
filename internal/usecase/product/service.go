package product

import (
	"context"
	"strings"

	"github.com/shopway/shopway/domain"
)

type Service struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	brandRepo    domain.BrandRepository
}

var _ domain.ProductUsecase = (*Service)(nil)

// NewService will create a new product service object
func NewService(p domain.ProductRepository, c domain.CategoryRepository, b domain.BrandRepository) *Service {
	return &Service{
		productRepo:  p,
		categoryRepo: c,
		brandRepo:    b,
	}
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func normalizePage(page domain.PageQuery) domain.PageQuery {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 || page.Limit > MaxLimit {
		page.Limit = DefaultLimit
	}
	return page
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, domain.ErrBadParamInput
	}

	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	s.fillRefs(ctx, &p)
	return p, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return domain.Product{}, domain.ErrBadParamInput
	}

	p, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Product{}, err
	}
	s.fillRefs(ctx, &p)
	return p, nil
}

func (s *Service) Search(ctx context.Context, filter domain.ProductFilter, page domain.PageQuery) ([]domain.Product, domain.PageInfo, error) {
	page = normalizePage(page)

	res, total, err := s.productRepo.Fetch(ctx, filter, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return res, domain.NewPageInfo(total, page), nil
}

func (s *Service) Store(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Slug) == "" || p.Price < 0 {
		return domain.ErrBadParamInput
	}

	if existing, err := s.productRepo.GetBySlug(ctx, p.Slug); err == nil && existing.ID != 0 {
		return domain.ErrConflict
	}

	if p.CategoryID != 0 {
		if _, err := s.categoryRepo.GetByID(ctx, p.CategoryID); err != nil {
			return err
		}
	}
	if p.BrandID != 0 {
		if _, err := s.brandRepo.GetByID(ctx, p.BrandID); err != nil {
			return err
		}
	}

	return s.productRepo.Store(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *domain.Product) error {
	if p.ID <= 0 {
		return domain.ErrBadParamInput
	}
	return s.productRepo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrBadParamInput
	}
	return s.productRepo.SoftDelete(ctx, id)
}

func (s *Service) AdjustStock(ctx context.Context, id int64, delta int64) (domain.Product, error) {
	if id <= 0 || delta == 0 {
		return domain.Product{}, domain.ErrBadParamInput
	}

	if err := s.productRepo.AdjustStock(ctx, id, delta); err != nil {
		return domain.Product{}, err
	}
	return s.productRepo.GetByID(ctx, id)
}

// fillRefs attaches category/brand summaries; failures leave them nil.
func (s *Service) fillRefs(ctx context.Context, p *domain.Product) {
	if p.CategoryID != 0 {
		if cat, err := s.categoryRepo.GetByID(ctx, p.CategoryID); err == nil {
			p.Category = &cat
		}
	}
	if p.BrandID != 0 {
		if b, err := s.brandRepo.GetByID(ctx, p.BrandID); err == nil {
			p.Brand = &b
		}
	}
}
