package mysql

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/shopway/shopway/domain"
	"github.com/shopway/shopway/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	m := model.NewCommentFromDomain(c)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Comment, error) {
	q := r.DB.WithContext(ctx)
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var m model.Comment
	if err := q.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	res := m.ToDomain()
	return &res, nil
}

// filtered builds a fresh query chain for the given filter. Each caller gets
// its own chain so count and page fetch can run on concurrent goroutines.
func (r *commentRepository) filtered(ctx context.Context, f domain.CommentFilter) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&model.Comment{})
	if !f.IncludeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	if f.ProductID != 0 {
		q = q.Where("product_id = ?", f.ProductID)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.ParentID != nil {
		q = q.Where("parent_id = ?", *f.ParentID)
	} else if f.TopLevelOnly {
		q = q.Where("parent_id IS NULL")
	}
	if f.Search != "" {
		q = q.Where("LOWER(content) LIKE ?", "%"+escapeLike(f.Search)+"%")
	}
	return q
}

func (r *commentRepository) Fetch(ctx context.Context, f domain.CommentFilter, page domain.PageQuery) ([]*domain.Comment, int64, error) {
	var (
		total int64
		rows  []model.Comment
	)

	order := "created_at DESC"
	if f.OldestFirst {
		order = "created_at ASC"
	}

	// Count and page read share the same filter state; issuing them
	// concurrently is an optimization, not a correctness requirement.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, f).Count(&total).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, f).
			Order(order).
			Offset(int(page.Offset())).
			Limit(int(page.Limit)).
			Find(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	res := make([]*domain.Comment, len(rows))
	for i := range rows {
		c := rows[i].ToDomain()
		res[i] = &c
	}
	return res, total, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	result := r.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, id int64) error {
	// The is_deleted guard makes a second delete of the same id report
	// NotFound instead of re-deleting.
	result := r.DB.WithContext(ctx).Model(&model.Comment{}).
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

func (r *commentRepository) IncrementReplyCount(ctx context.Context, id int64, delta int64) error {
	return r.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		UpdateColumn("reply_count", gorm.Expr("reply_count + ?", delta)).Error
}

func (r *commentRepository) RecountReplies(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("parent_id = ? AND is_deleted = ?", parentID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	err = r.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", parentID).
		UpdateColumn("reply_count", count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *commentRepository) GroupByProduct(ctx context.Context) ([]domain.ProductCommentCount, error) {
	var res []domain.ProductCommentCount
	err := r.DB.WithContext(ctx).
		Table("comment AS c").
		Select("c.product_id AS product_id, p.name AS product_name, p.slug AS product_slug, COUNT(*) AS comment_count").
		Joins("JOIN product p ON p.id = c.product_id").
		Where("c.is_deleted = ? AND c.parent_id IS NULL AND p.is_deleted = ?", false, false).
		Group("c.product_id, p.name, p.slug").
		Order("comment_count DESC").
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *commentRepository) GroupByProductInCategory(ctx context.Context, categorySlug string) ([]domain.ProductCommentCount, error) {
	var res []domain.ProductCommentCount
	err := r.DB.WithContext(ctx).
		Table("comment AS c").
		Select("c.product_id AS product_id, p.name AS product_name, p.slug AS product_slug, COUNT(*) AS comment_count").
		Joins("JOIN product p ON p.id = c.product_id").
		Joins("JOIN category cat ON cat.id = p.category_id").
		Where("c.is_deleted = ? AND c.parent_id IS NULL AND p.is_deleted = ?", false, false).
		Where("cat.slug = ? AND cat.is_deleted = ?", categorySlug, false).
		Group("c.product_id, p.name, p.slug").
		Order("comment_count DESC").
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}
