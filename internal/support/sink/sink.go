// Package sink records queries no handler understood, for offline analysis.
package sink

import (
	"context"
	"fmt"
	"os"

	"github.com/brysenPfingsten/PirateEase/internal/core/errx"
	"github.com/redis/go-redis/v9"
)

// Recorder is an append-only log of unmatched queries.
type Recorder interface {
	Record(ctx context.Context, query string) error
}

// FileRecorder appends unmatched queries to a local file, one per line.
type FileRecorder struct {
	path string
}

func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path}
}

func (r *FileRecorder) Record(_ context.Context, query string) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open unmatched log: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(query + "\n"); err != nil {
		return fmt.Errorf("append unmatched query: %w", err)
	}
	return nil
}

// unmatchedKey is the Redis list all unmatched queries are appended to.
const unmatchedKey = "unmatched:queries"

// RedisRecorder appends unmatched queries to a shared Redis list.
type RedisRecorder struct {
	rdb redis.Cmdable
}

func NewRedisRecorder(rdb redis.Cmdable) *RedisRecorder {
	return &RedisRecorder{rdb: rdb}
}

func (r *RedisRecorder) Record(ctx context.Context, query string) error {
	if err := r.rdb.RPush(ctx, unmatchedKey, query).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

var (
	_ Recorder = (*FileRecorder)(nil)
	_ Recorder = (*RedisRecorder)(nil)
)
