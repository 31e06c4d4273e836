package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/model"
)

// redisSink appends one stream entry per row, with the JSON record under
// the "data" field.
type redisSink struct {
	name   string
	runID  string
	stream string
	client *redis.Client
}

func newRedis(ctx context.Context, name, runID string, s settings) (Sink, error) {
	db, err := s.integer("redis", "db", 0)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(&redis.Options{
		Addr:         s.get("addr", "localhost:6379"),
		Password:     s.get("password", ""),
		DB:           db,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &redisSink{name: name, runID: runID, stream: s.get("stream", "volsweep"), client: client}, nil
}

func (r *redisSink) Name() string { return r.name }

func (r *redisSink) Publish(ctx context.Context, table *model.Table) error {
	records := Records(r.runID, table)
	if len(records) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		pipe.XAdd(ctx, &redis.XAddArgs{Stream: r.stream, Values: map[string]any{"data": b}})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append to stream %s: %w", r.stream, err)
	}

	ctxlog.FromContext(ctx).Debug("Stream entries added.", "sink", r.name, "stream", r.stream, "rows", len(records))
	return nil
}

func (r *redisSink) Close() error {
	return r.client.Close()
}
