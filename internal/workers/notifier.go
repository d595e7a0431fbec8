package workers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shopway/shopway/domain"
)

type replyNotifier struct {
	notifRepo domain.NotificationRepository
	publisher domain.RealtimePublisher
	ch        chan domain.Notification
}

var _ domain.ReplyNotifier = (*replyNotifier)(nil)

func NewReplyNotifier(repo domain.NotificationRepository, publisher domain.RealtimePublisher) *replyNotifier {
	return &replyNotifier{
		notifRepo: repo,
		publisher: publisher,
		ch:        make(chan domain.Notification, 1024),
	}
}

// Send enqueues a notification without blocking. Delivery is best effort: a
// full queue drops the notification and the caller never learns about it.
func (n replyNotifier) Send(notif domain.Notification) {
	select {
	case n.ch <- notif:
	default:
		logrus.Info("ReplyNotifier's channel is full, notification dropped")
	}
}

func (n replyNotifier) Start(ctx context.Context) {
	for {
		select {
		case notif := <-n.ch:
			n.dispatch(ctx, notif)
		case <-ctx.Done():
			logrus.Info("shutting down ReplyNotifier, flushing remaining notifications...")
			n.drain()
			return
		}
	}
}

func (n replyNotifier) drain() {
	for {
		select {
		case notif := <-n.ch:
			n.dispatch(context.Background(), notif)
		default:
			return
		}
	}
}

func (n replyNotifier) dispatch(ctx context.Context, notif domain.Notification) {
	if err := n.notifRepo.Store(ctx, &notif); err != nil {
		logrus.Errorf("failed to store notification for user %d: %v", notif.UserID, err)
		return
	}

	if err := n.publisher.PublishCommentReply(ctx, &notif); err != nil {
		logrus.Warnf("failed to publish realtime notification for user %d: %v", notif.UserID, err)
	}
}
