package model

import (
	"time"

	"github.com/shopway/shopway/domain"
)

type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	ActorID   int64     `gorm:"column:actor_id;index"`
	Type      string    `gorm:"size:32;not null"`
	Message   string    `gorm:"type:text;not null"`
	Link      string    `gorm:"size:512"`
	IsRead    bool      `gorm:"column:is_read;not null;default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Notification) TableName() string {
	return "notification"
}

func NewNotificationFromDomain(n *domain.Notification) *Notification {
	return &Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		ActorID:   n.ActorID,
		Type:      string(n.Type),
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		ActorID:   m.ActorID,
		Type:      domain.NotificationType(m.Type),
		Message:   m.Message,
		Link:      m.Link,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
