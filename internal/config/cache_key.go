package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key for a user's login session (JTI).
func (r *CacheKeyStruct) UserSessionKey(username string) string {
	return fmt.Sprintf("login:%s", username)
}

// QuizSessionKey returns the cache key for a user's active quiz session blob.
func (r *CacheKeyStruct) QuizSessionKey(username string) string {
	return fmt.Sprintf("user:%s:quiz_session", username)
}

// QuizDeadlineIndex is the sorted-set key indexing active quiz sessions by
// their auto-submit deadline (score = unix seconds, member = username).
func (r *CacheKeyStruct) QuizDeadlineIndex() string {
	return "quiz:deadlines"
}

// QuizFinalizedKey returns the idempotence guard key for a finished quiz
// session. The first caller to set it wins the right to persist the attempt.
func (r *CacheKeyStruct) QuizFinalizedKey(sessionID string) string {
	return fmt.Sprintf("quiz:%s:finalized", sessionID)
}

var CacheKey = NewCacheKeyStruct()
