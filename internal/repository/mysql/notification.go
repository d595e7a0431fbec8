package mysql

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/shopway/shopway/domain"
	"github.com/shopway/shopway/internal/repository/mysql/model"
)

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (r *notificationRepository) Store(ctx context.Context, n *domain.Notification) error {
	m := model.NewNotificationFromDomain(n)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	return nil
}

func (r *notificationRepository) FetchByUser(ctx context.Context, userID int64, page domain.PageQuery) ([]*domain.Notification, int64, error) {
	var (
		total int64
		rows  []model.Notification
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.DB.WithContext(gctx).Model(&model.Notification{}).
			Where("user_id = ?", userID).
			Count(&total).Error
	})
	g.Go(func() error {
		return r.DB.WithContext(gctx).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Offset(int(page.Offset())).
			Limit(int(page.Limit)).
			Find(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	res := make([]*domain.Notification, len(rows))
	for i := range rows {
		n := rows[i].ToDomain()
		res[i] = &n
	}
	return res, total, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	result := r.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
