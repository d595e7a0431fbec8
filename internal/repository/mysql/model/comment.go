package model

import (
	"time"

	"github.com/shopway/shopway/domain"
)

type Comment struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ProductID  int64     `gorm:"column:product_id;not null;index:idx_product_created"`
	UserID     int64     `gorm:"column:user_id;not null;index:idx_user_created"`
	Content    string    `gorm:"type:text;not null"`
	ParentID   *int64    `gorm:"column:parent_id;index:idx_parent_created"`
	ReplyCount int64     `gorm:"column:reply_count;not null;default:0"`
	IsDeleted  bool      `gorm:"column:is_deleted;not null;default:0"`
	CreatedAt  time.Time `gorm:"type:datetime;index:idx_product_created;index:idx_user_created;index:idx_parent_created"`
	UpdatedAt  time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:         c.ID,
		ProductID:  c.ProductID,
		UserID:     c.UserID,
		Content:    c.Content,
		ParentID:   c.ParentID,
		ReplyCount: c.ReplyCount,
		IsDeleted:  c.IsDeleted,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:         m.ID,
		ProductID:  m.ProductID,
		UserID:     m.UserID,
		Content:    m.Content,
		ParentID:   m.ParentID,
		ReplyCount: m.ReplyCount,
		IsDeleted:  m.IsDeleted,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
