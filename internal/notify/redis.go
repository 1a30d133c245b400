package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisPublisher публикует события в Redis pub/sub
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

// NewRedisPublisher подключается к Redis по URL и проверяет соединение
func NewRedisPublisher(redisURL, channel string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	if channel == "" {
		channel = DefaultChannel
	}

	log.Info().Str("channel", channel).Msg("connected to redis event channel")

	return &RedisPublisher{rdb: rdb, channel: channel}, nil
}

// Publish сериализует событие в JSON и публикует его в канал
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, p.channel, payload).Err()
}

// Close закрывает клиент Redis
func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
