package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisNotifier publica os avisos em um canal Redis; o front assina o canal
// e exibe os toasts.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisNotifier(addr, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  redis.NewClient(&redis.Options{Addr: addr}),
		channel: channel,
	}
}

func (n *RedisNotifier) Notify(ctx context.Context, msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Println("notify marshal error:", err)
		return
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		// entrega é melhor-esforço; nunca derrubar a operação por causa
		// de um toast
		log.Println("notify publish error:", err)
	}
}
