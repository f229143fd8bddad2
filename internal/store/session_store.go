// Package store wraps the Redis structures backing live quiz state: the
// per-user session blob, the deadline index the timeout worker scans, the
// finalize-once guard, and the attempt persistence queue.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/os10prep/os10-backend/internal/config"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when a user has no active quiz session.
var ErrNoSession = errors.New("store: no active quiz session")

// sessionTTL bounds how long an orphaned session blob can linger. Well
// above the longest exam (3600s) so the timeout worker always wins.
const sessionTTL = 6 * time.Hour

// SessionStore persists quiz sessions in Redis, one blob per username.
// State is written back wholesale on every mutation; handlers for a given
// user are serialized by the single-device login rule, so no CAS is needed.
type SessionStore struct {
	rdb *redis.Client
}

// NewSessionStore creates a store over the shared Redis client.
func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// Load fetches the user's session blob. Returns ErrNoSession when absent.
func (s *SessionStore) Load(ctx context.Context, username string) (*model.QuizSession, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.QuizSessionKey(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz session: %w", err)
	}

	var session model.QuizSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode quiz session: %w", err)
	}
	return &session, nil
}

// Save writes the session blob and registers its deadline in the index so
// the timeout worker can find it without scanning every key.
func (s *SessionStore) Save(ctx context.Context, session *model.QuizSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode quiz session: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, config.CacheKey.QuizSessionKey(session.Username), raw, sessionTTL)
	pipe.ZAdd(ctx, config.CacheKey.QuizDeadlineIndex(), redis.Z{
		Score:  float64(session.Deadline.Unix()),
		Member: session.Username,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save quiz session: %w", err)
	}
	return nil
}

// Delete removes the session blob and its deadline index entry.
func (s *SessionStore) Delete(ctx context.Context, username string) error {
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, config.CacheKey.QuizSessionKey(username))
	pipe.ZRem(ctx, config.CacheKey.QuizDeadlineIndex(), username)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete quiz session: %w", err)
	}
	return nil
}

// ExpiredUsers returns usernames whose session deadline is at or before now.
func (s *SessionStore) ExpiredUsers(ctx context.Context, now time.Time) ([]string, error) {
	users, err := s.rdb.ZRangeByScore(ctx, config.CacheKey.QuizDeadlineIndex(), &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%d", now.Unix()),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("scan deadline index: %w", err)
	}
	return users, nil
}

// TryFinalize claims the finalize-once guard for a session. It returns true
// exactly once per session ID, no matter how many callers race: the user
// finishing, the timeout worker, and an abandon request all pass through
// here before any attempt is recorded.
func (s *SessionStore) TryFinalize(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, config.CacheKey.QuizFinalizedKey(sessionID), 1, sessionTTL).Result()
	if err != nil {
		return false, fmt.Errorf("claim finalize guard: %w", err)
	}
	return ok, nil
}
