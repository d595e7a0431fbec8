package domain

import (
	"context"
	"time"
)

type NotificationType string

const (
	NotificationTypeCommentReply NotificationType = "comment_reply"
)

// PreviewLimit is the number of characters of a reply kept in the
// notification message before truncation.
const PreviewLimit = 50

// Notification is a persisted message addressed to one user, optionally
// mirrored to a realtime channel.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"` // receiver
	ActorID   int64            `json:"actor_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Link      string           `json:"link"` // deep link to the product/comment
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`

	Actor *User `json:"actor,omitempty"`
}

// NotificationRepository defines the contract for notification persistence.
type NotificationRepository interface {
	Store(ctx context.Context, n *Notification) error
	FetchByUser(ctx context.Context, userID int64, page PageQuery) ([]*Notification, int64, error)

	// MarkRead flips is_read on the receiver's own notification.
	// Returns ErrNotFound when the record is absent or owned by someone else.
	MarkRead(ctx context.Context, id, userID int64) error
}

// RealtimePublisher pushes a notification to the receiver's live channel.
type RealtimePublisher interface {
	PublishCommentReply(ctx context.Context, n *Notification) error
}

// ReplyNotifier dispatches reply notifications without blocking the caller.
// Send must never fail the surrounding operation; delivery is best effort.
type ReplyNotifier interface {
	Start(ctx context.Context)
	Send(n Notification)
}

// NotificationUsecase defines the business logic contract for the
// notification read surface.
type NotificationUsecase interface {
	FetchByUser(ctx context.Context, userID int64, page PageQuery) ([]*Notification, PageInfo, error)
	MarkRead(ctx context.Context, id, userID int64) error
}
