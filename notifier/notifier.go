package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"ticketing_admin/constants"
	"ticketing_admin/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Publisher announces committed mutations on the admin change feed.
type Publisher interface {
	Publish(ctx context.Context, entity, action string, id uint)
}

// Subscriber nhận payload của change feed tới khi ctx kết thúc hoặc gọi close.
type Subscriber interface {
	Subscribe(ctx context.Context) (msgs <-chan string, close func())
}

type RedisNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client, channel: constants.CHANNEL_PERUBAHAN}
}

// Publish không trả lỗi cho caller, lỗi chỉ log.
func (n *RedisNotifier) Publish(ctx context.Context, entity, action string, id uint) {
	payload, err := json.Marshal(model.Perubahan{Entity: entity, Action: action, ID: id})
	if err != nil {
		log.Warn().Err(err).Str("entity", entity).Msg("encode change event")
		return
	}
	if err := n.client.Publish(ctx, n.channel, string(payload)).Err(); err != nil {
		log.Warn().Err(err).Str("entity", entity).Str("action", action).Uint("id", id).Msg("publish change event")
	}
}

func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan string, func()) {
	pubsub := n.client.Subscribe(ctx, n.channel)
	out := make(chan string)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = pubsub.Close() }
}

func (n *RedisNotifier) Ping(ctx context.Context) error {
	if err := n.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Nop dùng khi không cấu hình redis
type Nop struct{}

func (Nop) Publish(context.Context, string, string, uint) {}
