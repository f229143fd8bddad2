package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionState enumerates quiz session states.
type SessionState string

const (
	// SessionStateActive: a question is presented, awaiting confirmation.
	SessionStateActive SessionState = "ACTIVE"
	// SessionStateAnswered: the current question is confirmed; the only
	// action left is advancing.
	SessionStateAnswered SessionState = "ANSWERED"
)

// Quiz durations in seconds: a module quiz gets 20 minutes, a full exam 60.
const (
	ModuleQuizSeconds = 1200
	FullExamSeconds   = 3600
)

// NoSelection marks LastSelected as cleared; real selections are 0-3.
const NoSelection = -1

// QuizSession is one in-flight quiz attempt. It is stored wholesale as a
// single blob keyed by username and rewritten on every change; there is at
// most one active session per user, and a new start replaces any previous
// one (last writer wins).
type QuizSession struct {
	ID           uuid.UUID       `json:"id"`
	Username     string          `json:"username"`
	Topic        string          `json:"topic"`
	Difficulty   Difficulty      `json:"difficulty"`
	Questions    []Question      `json:"questions"`
	CurrentIndex int             `json:"current_index"`
	State        SessionState    `json:"state"`
	Score        int             `json:"score"`
	Details      []AttemptDetail `json:"details"`
	// LastSelected and LastCorrect describe the most recent confirmed
	// answer. LastSelected is NoSelection outside the ANSWERED state so a
	// cleared value can't be mistaken for option 0.
	LastSelected int       `json:"last_selected"`
	LastCorrect  bool      `json:"last_correct"`
	StartedAt    time.Time `json:"started_at"`
	Deadline     time.Time `json:"deadline"`
}

// RemainingSeconds returns the countdown value at instant now, floored at 0.
func (s *QuizSession) RemainingSeconds(now time.Time) int {
	rem := int(s.Deadline.Sub(now).Seconds())
	if rem < 0 {
		return 0
	}
	return rem
}

// CurrentQuestion returns the question at the session pointer, or nil when
// the pointer has run past the assembled set.
func (s *QuizSession) CurrentQuestion() *Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// StartQuizRequest is the payload for starting a quiz session.
type StartQuizRequest struct {
	Topic      string   `json:"topic" binding:"required,min=1,max=200"`
	Difficulty string   `json:"difficulty" binding:"required,oneof=LOW MEDIUM HIGH"`
	Exclude    []string `json:"exclude_questions"`
}

// AnswerRequest is the payload for confirming an option on the current
// question.
type AnswerRequest struct {
	Selected *int `json:"selected" binding:"required,min=0,max=3"`
}
