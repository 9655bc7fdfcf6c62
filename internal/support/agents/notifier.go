package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brysenPfingsten/PirateEase/internal/core/errx"
	logx "github.com/brysenPfingsten/PirateEase/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// LogNotifier records the handoff in the process log. The in-process fallback
// when no Redis is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, agent string, transcript []string) error {
	logx.Info().Str("agent", agent).Int("lines", len(transcript)).Msg("agent alerted with transcript")
	return nil
}

// RedisNotifier pushes the transcript onto a per-agent handoff list so an
// agent console can pick it up.
type RedisNotifier struct {
	rdb redis.Cmdable
}

func NewRedisNotifier(rdb redis.Cmdable) *RedisNotifier {
	return &RedisNotifier{rdb: rdb}
}

func handoffKey(agent string) string {
	return fmt.Sprintf("handoff:%s", agent)
}

type handoff struct {
	Agent      string    `json:"agent"`
	Transcript []string  `json:"transcript"`
	NotifiedAt time.Time `json:"notified_at"`
}

func (n *RedisNotifier) Notify(ctx context.Context, agent string, transcript []string) error {
	b, err := json.Marshal(handoff{Agent: agent, Transcript: transcript, NotifiedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal handoff: %w", err)
	}
	if err := n.rdb.RPush(ctx, handoffKey(agent), b).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

var (
	_ Notifier = LogNotifier{}
	_ Notifier = (*RedisNotifier)(nil)
)
