package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/os10prep/os10-backend/internal/config"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// AttemptQueue hands finished attempts to the persistence worker. Quiz
// finalization only touches Redis; the Postgres write happens off the
// request path.
type AttemptQueue struct {
	rdb *redis.Client
}

// NewAttemptQueue creates a queue over the shared Redis client.
func NewAttemptQueue(rdb *redis.Client) *AttemptQueue {
	return &AttemptQueue{rdb: rdb}
}

// Enqueue pushes an attempt onto the persistence queue.
func (q *AttemptQueue) Enqueue(ctx context.Context, attempt *model.QuizAttempt) error {
	raw, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("encode attempt: %w", err)
	}
	if err := q.rdb.RPush(ctx, config.WorkerKey.PersistAttemptsQueue, raw).Err(); err != nil {
		return fmt.Errorf("enqueue attempt: %w", err)
	}
	return nil
}
