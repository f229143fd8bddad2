package model

import (
	"time"

	"github.com/google/uuid"
)

// AttemptDetail records the outcome of one answered question. The category
// is resolved against the bank at confirmation time; AI-sourced questions
// fall back to CategoryGeneral.
type AttemptDetail struct {
	QuestionText string `json:"question"`
	Category     string `json:"category"`
	IsCorrect    bool   `json:"is_correct"`
}

// QuizAttempt is one completed (or timed-out) quiz session, persisted as a
// historical record. Never mutated after creation.
//
// Details may be shorter than Total when the session ended by timeout:
// unanswered questions are simply absent. Total stays the authoritative
// denominator for averages.
type QuizAttempt struct {
	ID       uuid.UUID       `json:"id"`
	Username string          `json:"username"`
	TakenAt  time.Time       `json:"taken_at"`
	Topic    string          `json:"topic"`
	Score    int             `json:"score"`
	Total    int             `json:"total"`
	Details  []AttemptDetail `json:"details"`
}
