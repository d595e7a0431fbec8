package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shopway/shopway/domain"
)

const (
	// ChannelUserNotify is the per-user realtime channel pattern. Frontend
	// gateways subscribe to it to push events over websockets.
	ChannelUserNotify = "notify:user:%d"
)

type notificationPublisher struct {
	client *redis.Client
}

var _ domain.RealtimePublisher = (*notificationPublisher)(nil)

func NewNotificationPublisher(client *redis.Client) *notificationPublisher {
	return &notificationPublisher{
		client,
	}
}

func (p *notificationPublisher) PublishCommentReply(ctx context.Context, n *domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	channel := fmt.Sprintf(ChannelUserNotify, n.UserID)
	return p.client.Publish(ctx, channel, payload).Err()
}
