package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/os10prep/os10-backend/internal/bank"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/os10prep/os10-backend/internal/store"
	"github.com/rs/zerolog"
)

// Quiz state machine errors.
var (
	ErrNoActiveQuiz    = errors.New("no active quiz session")
	ErrAlreadyAnswered = errors.New("current question already answered")
	ErrNotAnswered     = errors.New("current question not answered yet")
	ErrQuizExpired     = errors.New("quiz time is up")
)

// PassThresholdPercent is the minimum score percentage for a passing verdict.
const PassThresholdPercent = 70

// SessionStore is the live-session persistence surface the quiz service
// needs. Implemented by store.SessionStore.
type SessionStore interface {
	Load(ctx context.Context, username string) (*model.QuizSession, error)
	Save(ctx context.Context, session *model.QuizSession) error
	Delete(ctx context.Context, username string) error
	TryFinalize(ctx context.Context, sessionID string) (bool, error)
}

// AttemptSink receives finished attempts for asynchronous persistence.
// Implemented by store.AttemptQueue.
type AttemptSink interface {
	Enqueue(ctx context.Context, attempt *model.QuizAttempt) error
}

// AnswerResult is the immediate feedback after confirming an option.
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Score         int    `json:"score"`
}

// FinishResult summarizes a finalized session.
type FinishResult struct {
	Attempt *model.QuizAttempt `json:"attempt"`
	Passed  bool               `json:"passed"`
}

// QuizService drives the quiz session state machine: start, answer, advance,
// abandon, and timeout finalization. All state lives in the session store;
// finished attempts are handed to the sink exactly once per session.
type QuizService struct {
	sessions  SessionStore
	attempts  AttemptSink
	assembler *AssemblerService
	bank      *bank.Bank
	log       zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(sessions SessionStore, attempts AttemptSink, assembler *AssemblerService, b *bank.Bank, log zerolog.Logger) *QuizService {
	return &QuizService{
		sessions:  sessions,
		attempts:  attempts,
		assembler: assembler,
		bank:      b,
		log:       log.With().Str("component", "quiz").Logger(),
	}
}

// Start assembles a question set and opens a new session for the user. Any
// previous session is discarded without being recorded: starting over is the
// user's call, and a half-finished set says nothing about their level.
func (s *QuizService) Start(ctx context.Context, username string, req *model.StartQuizRequest) (*model.QuizSession, error) {
	difficulty := model.Difficulty(req.Difficulty)
	questions := s.assembler.Assemble(ctx, req.Topic, difficulty, req.Exclude)
	if len(questions) == 0 {
		return nil, errors.New("assembled an empty question set")
	}

	now := time.Now().UTC()
	session := &model.QuizSession{
		ID:           uuid.New(),
		Username:     username,
		Topic:        req.Topic,
		Difficulty:   difficulty,
		Questions:    questions,
		CurrentIndex: 0,
		State:        model.SessionStateActive,
		LastSelected: model.NoSelection,
		StartedAt:    now,
		Deadline:     now.Add(time.Duration(DurationSeconds(req.Topic)) * time.Second),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("open quiz session: %w", err)
	}

	s.log.Info().Str("username", username).Str("topic", req.Topic).
		Int("questions", len(questions)).Msg("Quiz session started")
	return session, nil
}

// State returns the user's live session. An expired session is finalized on
// the spot and reported as ErrQuizExpired.
func (s *QuizService) State(ctx context.Context, username string) (*model.QuizSession, error) {
	session, err := s.load(ctx, username)
	if err != nil {
		return nil, err
	}
	if s.expired(ctx, session) {
		return nil, ErrQuizExpired
	}
	return session, nil
}

// Answer confirms an option on the current question. The session must be in
// ACTIVE state; answering twice is rejected.
func (s *QuizService) Answer(ctx context.Context, username string, selected int) (*AnswerResult, error) {
	session, err := s.load(ctx, username)
	if err != nil {
		return nil, err
	}
	if s.expired(ctx, session) {
		return nil, ErrQuizExpired
	}
	if session.State != model.SessionStateActive {
		return nil, ErrAlreadyAnswered
	}

	question := session.CurrentQuestion()
	if question == nil {
		return nil, ErrNoActiveQuiz
	}

	correct := selected == question.CorrectAnswer
	if correct {
		session.Score++
	}
	session.Details = append(session.Details, model.AttemptDetail{
		QuestionText: question.QuestionText,
		Category:     s.bank.CategoryOf(question.QuestionText),
		IsCorrect:    correct,
	})
	session.State = model.SessionStateAnswered
	session.LastSelected = selected
	session.LastCorrect = correct

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save quiz session: %w", err)
	}

	return &AnswerResult{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
		Score:         session.Score,
	}, nil
}

// Advance moves past an answered question. When the last question is left
// behind, the session is finalized and the finish summary returned; the
// session pointer otherwise lands on the next question in ACTIVE state.
func (s *QuizService) Advance(ctx context.Context, username string) (*model.QuizSession, *FinishResult, error) {
	session, err := s.load(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if s.expired(ctx, session) {
		return nil, nil, ErrQuizExpired
	}
	if session.State != model.SessionStateAnswered {
		return nil, nil, ErrNotAnswered
	}

	session.CurrentIndex++
	if session.CurrentIndex >= len(session.Questions) {
		finish, err := s.finalize(ctx, session)
		if err != nil {
			return nil, nil, err
		}
		return nil, finish, nil
	}

	session.State = model.SessionStateActive
	session.LastSelected = model.NoSelection
	session.LastCorrect = false
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("save quiz session: %w", err)
	}
	return session, nil, nil
}

// Abandon discards the session without recording an attempt. The finalize
// guard is still claimed so a racing timeout cannot record it either.
func (s *QuizService) Abandon(ctx context.Context, username string) error {
	session, err := s.load(ctx, username)
	if err != nil {
		return err
	}
	if _, err := s.sessions.TryFinalize(ctx, session.ID.String()); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, username); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Str("session_id", session.ID.String()).
		Msg("Quiz session abandoned")
	return nil
}

// Expire finalizes a session whose deadline has passed, recording the
// attempt with whatever was answered so far. Called by the timeout worker
// and by the lazy checks on user-facing operations; only one of them wins.
func (s *QuizService) Expire(ctx context.Context, username string) error {
	session, err := s.sessions.Load(ctx, username)
	if errors.Is(err, store.ErrNoSession) {
		// Blob already gone (TTL or a racing finalize); drop the stale
		// deadline index entry.
		return s.sessions.Delete(ctx, username)
	}
	if err != nil {
		return err
	}
	if time.Now().UTC().Before(session.Deadline) {
		return nil
	}
	_, err = s.finalize(ctx, session)
	return err
}

// load maps a missing session to ErrNoActiveQuiz.
func (s *QuizService) load(ctx context.Context, username string) (*model.QuizSession, error) {
	session, err := s.sessions.Load(ctx, username)
	if errors.Is(err, store.ErrNoSession) {
		return nil, ErrNoActiveQuiz
	}
	return session, err
}

// expired finalizes a past-deadline session inline and reports whether it
// did so.
func (s *QuizService) expired(ctx context.Context, session *model.QuizSession) bool {
	if time.Now().UTC().Before(session.Deadline) {
		return false
	}
	if _, err := s.finalize(ctx, session); err != nil {
		s.log.Error().Err(err).Str("username", session.Username).
			Msg("Failed to finalize expired session")
	}
	return true
}

// finalize records the attempt once and removes the live session. The total
// is the assembled set size even when the timeout left details short, so a
// timed-out attempt scores against everything it was supposed to cover.
func (s *QuizService) finalize(ctx context.Context, session *model.QuizSession) (*FinishResult, error) {
	won, err := s.sessions.TryFinalize(ctx, session.ID.String())
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		ID:       session.ID,
		Username: session.Username,
		TakenAt:  time.Now().UTC(),
		Topic:    session.Topic,
		Score:    session.Score,
		Total:    len(session.Questions),
		Details:  session.Details,
	}

	if won {
		if err := s.attempts.Enqueue(ctx, attempt); err != nil {
			s.log.Error().Err(err).Str("session_id", session.ID.String()).
				Msg("Failed to enqueue finished attempt")
		}
	}
	if err := s.sessions.Delete(ctx, session.Username); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", session.Username).Int("score", attempt.Score).
		Int("total", attempt.Total).Bool("recorded", won).Msg("Quiz session finalized")

	return &FinishResult{
		Attempt: attempt,
		Passed:  attempt.Total > 0 && attempt.Score*100 >= PassThresholdPercent*attempt.Total,
	}, nil
}
