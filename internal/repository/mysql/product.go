package mysql

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/shopway/shopway/domain"
	"github.com/shopway/shopway/internal/repository/mysql/model"
)

type productRepository struct {
	DB *gorm.DB
}

var _ domain.ProductRepository = (*productRepository)(nil)

func NewProductRepository(db *gorm.DB) *productRepository {
	return &productRepository{
		DB: db,
	}
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	var m model.Product
	err := r.DB.WithContext(ctx).First(&m, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, err
	}
	return m.ToDomain(), nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var rows []model.Product
	err := r.DB.WithContext(ctx).
		Where("id IN ? AND is_deleted = ?", ids, false).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.Product, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	var m model.Product
	err := r.DB.WithContext(ctx).First(&m, "slug = ? AND is_deleted = ?", slug, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, err
	}
	return m.ToDomain(), nil
}

func (r *productRepository) filtered(ctx context.Context, f domain.ProductFilter) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&model.Product{}).Where("is_deleted = ?", false)
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+escapeLike(f.Search)+"%")
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.BrandID != 0 {
		q = q.Where("brand_id = ?", f.BrandID)
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	return q
}

func (r *productRepository) Fetch(ctx context.Context, f domain.ProductFilter, page domain.PageQuery) ([]domain.Product, int64, error) {
	var (
		total int64
		rows  []model.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, f).Count(&total).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, f).
			Order("created_at DESC").
			Offset(int(page.Offset())).
			Limit(int(page.Limit)).
			Find(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	res := make([]domain.Product, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, total, nil
}

func (r *productRepository) Store(ctx context.Context, p *domain.Product) error {
	m := model.NewProductFromDomain(p)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	m := model.NewProductFromDomain(p)
	result := r.DB.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND is_deleted = ?", p.ID, false).
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) AdjustStock(ctx context.Context, id int64, delta int64) error {
	// Guard in the WHERE clause keeps the adjustment atomic and refuses to
	// drive the stock negative.
	result := r.DB.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND is_deleted = ? AND stock + ? >= 0", id, false, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing product from an underflow.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrBadParamInput
	}
	return nil
}
