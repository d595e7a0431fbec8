package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shopway/shopway/domain"
	"github.com/shopway/shopway/internal/repository/mysql/model"
)

type categoryRepository struct {
	DB *gorm.DB
}

var _ domain.CategoryRepository = (*categoryRepository)(nil)

func NewCategoryRepository(db *gorm.DB) *categoryRepository {
	return &categoryRepository{
		DB: db,
	}
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (domain.Category, error) {
	var m model.Category
	err := r.DB.WithContext(ctx).First(&m, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, err
	}
	return m.ToDomain(), nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	var m model.Category
	err := r.DB.WithContext(ctx).First(&m, "slug = ? AND is_deleted = ?", slug, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, err
	}
	return m.ToDomain(), nil
}

func (r *categoryRepository) FetchAll(ctx context.Context) ([]domain.Category, error) {
	var rows []model.Category
	err := r.DB.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.Category, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *categoryRepository) Store(ctx context.Context, c *domain.Category) error {
	if _, err := r.GetBySlug(ctx, c.Slug); err == nil {
		return domain.ErrConflict
	}

	m := model.NewCategoryFromDomain(c)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	m := model.NewCategoryFromDomain(c)
	result := r.DB.WithContext(ctx).Model(&model.Category{}).
		Where("id = ? AND is_deleted = ?", c.ID, false).
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).Model(&model.Category{}).
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
