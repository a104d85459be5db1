package realtime

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Publisher pushes best-effort events to per-user rooms over redis pub/sub.
// Delivery failures are logged and never affect appointment or reminder
// state. A nil *Publisher is a no-op, which keeps tests free of redis.
type Publisher struct {
	rdb *redis.Client
}

type envelope struct {
	ID      string    `json:"id"`
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

func New(addr string) *Publisher {
	return &Publisher{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (p *Publisher) Publish(ctx context.Context, room, event string, payload any) {
	if p == nil {
		return
	}

	b, err := json.Marshal(envelope{
		ID:      uuid.NewString(),
		Event:   event,
		Payload: payload,
		At:      time.Now(),
	})
	if err != nil {
		log.Printf("realtime marshal %s: %v", event, err)
		return
	}

	if err := p.rdb.Publish(ctx, room, b).Err(); err != nil {
		log.Printf("realtime publish %s to %s: %v", event, room, err)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.rdb.Close()
}
