package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChatSessionRepo keeps short-lived per-conversation state. It is a fast
// path only; the durable guard is the unique constraint on the lead table.
type ChatSessionRepo struct {
	client *redis.Client
}

func NewChatSessionRepo(client *redis.Client) *ChatSessionRepo {
	return &ChatSessionRepo{client: client}
}

const leadMarkTTL = 24 * time.Hour

func (r *ChatSessionRepo) MarkLeadCaptured(ctx context.Context, sessionId string, intent string) (bool, error) {
	key := fmt.Sprintf("chat:%s:lead:%s", sessionId, intent)

	created, err := r.client.SetNX(ctx, key, 1, leadMarkTTL).Result()
	if err != nil {
		return false, err
	}

	return created, nil
}
