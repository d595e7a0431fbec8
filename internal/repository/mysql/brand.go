package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shopway/shopway/domain"
	"github.com/shopway/shopway/internal/repository/mysql/model"
)

type brandRepository struct {
	DB *gorm.DB
}

var _ domain.BrandRepository = (*brandRepository)(nil)

func NewBrandRepository(db *gorm.DB) *brandRepository {
	return &brandRepository{
		DB: db,
	}
}

func (r *brandRepository) GetByID(ctx context.Context, id int64) (domain.Brand, error) {
	var m model.Brand
	err := r.DB.WithContext(ctx).First(&m, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Brand{}, domain.ErrNotFound
		}
		return domain.Brand{}, err
	}
	return m.ToDomain(), nil
}

func (r *brandRepository) GetBySlug(ctx context.Context, slug string) (domain.Brand, error) {
	var m model.Brand
	err := r.DB.WithContext(ctx).First(&m, "slug = ? AND is_deleted = ?", slug, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Brand{}, domain.ErrNotFound
		}
		return domain.Brand{}, err
	}
	return m.ToDomain(), nil
}

func (r *brandRepository) FetchAll(ctx context.Context) ([]domain.Brand, error) {
	var rows []model.Brand
	err := r.DB.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.Brand, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *brandRepository) Store(ctx context.Context, b *domain.Brand) error {
	if _, err := r.GetBySlug(ctx, b.Slug); err == nil {
		return domain.ErrConflict
	}

	m := model.NewBrandFromDomain(b)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	b.ID = m.ID
	return nil
}

func (r *brandRepository) Update(ctx context.Context, b *domain.Brand) error {
	m := model.NewBrandFromDomain(b)
	result := r.DB.WithContext(ctx).Model(&model.Brand{}).
		Where("id = ? AND is_deleted = ?", b.ID, false).
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *brandRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).Model(&model.Brand{}).
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
