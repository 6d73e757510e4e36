package event

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/wisdorage/pkg/logger"
)

// Channel is the Redis pub/sub channel carrying activity-feed events.
const Channel = "wisdorage:events"

// envelope is the wire form of a relayed event.
type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// RedisRelay mirrors events across instances over Redis pub/sub, so every
// server broadcasts the same activity feed regardless of which instance
// handled the originating request.
type RedisRelay struct {
	rdb *redis.Client
}

// NewRedisRelay connects to Redis and verifies with a ping.
func NewRedisRelay(addr, password string) (*RedisRelay, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisRelay{rdb: rdb}, nil
}

// Publish sends an event to the channel. Failures are logged and swallowed;
// the feed is best-effort.
func (r *RedisRelay) Publish(name string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("event relay: marshal", "event", name, "error", err)
		return
	}

	env, _ := json.Marshal(envelope{Event: name, Payload: data})
	if err := r.rdb.Publish(context.Background(), Channel, env).Err(); err != nil {
		logger.Warn("event relay: publish", "event", name, "error", err)
	}
}

// Subscribe runs until ctx is cancelled, invoking fn for every relayed event
// (including ones this instance published).
func (r *RedisRelay) Subscribe(ctx context.Context, fn func(name string, payload json.RawMessage)) {
	sub := r.rdb.Subscribe(ctx, Channel)

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var env envelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					logger.Warn("event relay: decode", "error", err)
					continue
				}
				fn(env.Event, env.Payload)
			}
		}
	}()
}

// Close releases the Redis connection.
func (r *RedisRelay) Close() error {
	return r.rdb.Close()
}
