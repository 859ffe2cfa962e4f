package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
)

// Payload is the JSON published on the notification channel.
type Payload struct {
	RecipientKind string    `json:"recipientKind"`
	RecipientID   uint      `json:"recipientId"`
	Message       string    `json:"message"`
	Link          string    `json:"link,omitempty"`
	SentAt        time.Time `json:"sentAt"`
}

// RedisSink publishes notifications so connected clients can be pushed in
// real time.
type RedisSink struct {
	client  *redis.Client
	channel string
	now     func() time.Time
}

func NewRedisSink(client *redis.Client, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel, now: time.Now}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Deliver(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(Payload{
		RecipientKind: string(n.Recipient.Kind),
		RecipientID:   n.Recipient.ID,
		Message:       n.Message,
		Link:          n.Link,
		SentAt:        s.now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.client.Publish(ctx, s.channel, body).Err()
}
