package service

import (
	"context"
	"testing"
	"time"

	"github.com/os10prep/os10-backend/internal/model"
	"github.com/os10prep/os10-backend/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore is an in-memory SessionStore for tests.
type memSessionStore struct {
	sessions  map[string]*model.QuizSession
	finalized map[string]bool
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{
		sessions:  make(map[string]*model.QuizSession),
		finalized: make(map[string]bool),
	}
}

func (m *memSessionStore) Load(_ context.Context, username string) (*model.QuizSession, error) {
	s, ok := m.sessions[username]
	if !ok {
		return nil, store.ErrNoSession
	}
	clone := *s
	return &clone, nil
}

func (m *memSessionStore) Save(_ context.Context, session *model.QuizSession) error {
	clone := *session
	m.sessions[session.Username] = &clone
	return nil
}

func (m *memSessionStore) Delete(_ context.Context, username string) error {
	delete(m.sessions, username)
	return nil
}

func (m *memSessionStore) TryFinalize(_ context.Context, sessionID string) (bool, error) {
	if m.finalized[sessionID] {
		return false, nil
	}
	m.finalized[sessionID] = true
	return true, nil
}

// memSink collects enqueued attempts.
type memSink struct {
	attempts []*model.QuizAttempt
}

func (m *memSink) Enqueue(_ context.Context, attempt *model.QuizAttempt) error {
	m.attempts = append(m.attempts, attempt)
	return nil
}

func newQuizFixture(t *testing.T, questionsPerCategory int) (*QuizService, *memSessionStore, *memSink) {
	t.Helper()
	b := fixtureBank(questionsPerCategory, "Legal", "Privacidad")
	sessions := newMemSessionStore()
	sink := &memSink{}
	assembler := newAssembler(b, nil)
	quiz := NewQuizService(sessions, sink, assembler, b, zerolog.Nop())
	return quiz, sessions, sink
}

func startQuiz(t *testing.T, quiz *QuizService) *model.QuizSession {
	t.Helper()
	session, err := quiz.Start(context.Background(), "guardia1", &model.StartQuizRequest{
		Topic:      "Módulo: Legal",
		Difficulty: "MEDIUM",
	})
	require.NoError(t, err)
	return session
}

func TestStartOpensActiveSessionWithDeadline(t *testing.T) {
	quiz, _, _ := newQuizFixture(t, 10)

	session := startQuiz(t, quiz)

	assert.Equal(t, model.SessionStateActive, session.State)
	assert.Equal(t, 0, session.CurrentIndex)
	assert.Zero(t, session.Score)
	assert.NotEmpty(t, session.Questions)

	remaining := session.RemainingSeconds(time.Now().UTC())
	assert.InDelta(t, model.ModuleQuizSeconds, remaining, 2)
}

func TestAnswerGradesAndBlocksDoubleConfirm(t *testing.T) {
	quiz, sessions, _ := newQuizFixture(t, 10)
	session := startQuiz(t, quiz)

	correctIdx := session.Questions[0].CorrectAnswer
	result, err := quiz.Answer(context.Background(), "guardia1", correctIdx)
	require.NoError(t, err)

	assert.True(t, result.Correct)
	assert.Equal(t, 1, result.Score)
	assert.NotEmpty(t, result.Explanation)

	saved := sessions.sessions["guardia1"]
	assert.Equal(t, model.SessionStateAnswered, saved.State)
	require.Len(t, saved.Details, 1)
	assert.Equal(t, "Legal", saved.Details[0].Category)
	assert.True(t, saved.Details[0].IsCorrect)

	// A second confirm on the same question is rejected.
	_, err = quiz.Answer(context.Background(), "guardia1", correctIdx)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
}

func TestLastSelectedClearsOnAdvance(t *testing.T) {
	quiz, sessions, _ := newQuizFixture(t, 10)
	session := startQuiz(t, quiz)

	// Fresh session: no selection yet, even if option 0 will be picked.
	assert.Equal(t, model.NoSelection, session.LastSelected)

	_, err := quiz.Answer(context.Background(), "guardia1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, sessions.sessions["guardia1"].LastSelected)

	_, _, err = quiz.Advance(context.Background(), "guardia1")
	require.NoError(t, err)

	// Back in ACTIVE state the cleared value must not look like option 0.
	saved := sessions.sessions["guardia1"]
	assert.Equal(t, model.SessionStateActive, saved.State)
	assert.Equal(t, model.NoSelection, saved.LastSelected)
	assert.False(t, saved.LastCorrect)
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	quiz, _, _ := newQuizFixture(t, 10)
	startQuiz(t, quiz)

	_, _, err := quiz.Advance(context.Background(), "guardia1")
	assert.ErrorIs(t, err, ErrNotAnswered)
}

func TestFullRunFinalizesOnceWithVerdict(t *testing.T) {
	quiz, sessions, sink := newQuizFixture(t, 3) // tiny bank → 6-question quiz
	session := startQuiz(t, quiz)
	total := len(session.Questions)

	ctx := context.Background()
	var finish *FinishResult
	for i := 0; i < total; i++ {
		current, err := quiz.State(ctx, "guardia1")
		require.NoError(t, err)
		_, err = quiz.Answer(ctx, "guardia1", current.CurrentQuestion().CorrectAnswer)
		require.NoError(t, err)

		_, f, err := quiz.Advance(ctx, "guardia1")
		require.NoError(t, err)
		finish = f
	}

	require.NotNil(t, finish, "advancing off the last question must finalize")
	assert.Equal(t, total, finish.Attempt.Score)
	assert.Equal(t, total, finish.Attempt.Total)
	assert.Len(t, finish.Attempt.Details, total)
	assert.True(t, finish.Passed)

	// Exactly one attempt recorded; session gone.
	require.Len(t, sink.attempts, 1)
	assert.Empty(t, sessions.sessions)
	_, err := quiz.State(ctx, "guardia1")
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestFailingScoreGetsFailedVerdict(t *testing.T) {
	quiz, _, _ := newQuizFixture(t, 3)
	session := startQuiz(t, quiz)
	total := len(session.Questions)

	ctx := context.Background()
	var finish *FinishResult
	for i := 0; i < total; i++ {
		current, err := quiz.State(ctx, "guardia1")
		require.NoError(t, err)
		// Always pick a wrong option.
		wrong := (current.CurrentQuestion().CorrectAnswer + 1) % 4
		_, err = quiz.Answer(ctx, "guardia1", wrong)
		require.NoError(t, err)

		_, f, err := quiz.Advance(ctx, "guardia1")
		require.NoError(t, err)
		finish = f
	}

	require.NotNil(t, finish)
	assert.Zero(t, finish.Attempt.Score)
	assert.False(t, finish.Passed)
}

func TestExpireRecordsPartialAttempt(t *testing.T) {
	quiz, sessions, sink := newQuizFixture(t, 10)
	session := startQuiz(t, quiz)

	ctx := context.Background()
	_, err := quiz.Answer(ctx, "guardia1", session.Questions[0].CorrectAnswer)
	require.NoError(t, err)
	_, _, err = quiz.Advance(ctx, "guardia1")
	require.NoError(t, err)

	// Force the deadline into the past.
	sessions.sessions["guardia1"].Deadline = time.Now().UTC().Add(-time.Second)

	require.NoError(t, quiz.Expire(ctx, "guardia1"))

	require.Len(t, sink.attempts, 1)
	attempt := sink.attempts[0]
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, len(session.Questions), attempt.Total, "total stays the assembled size")
	assert.Len(t, attempt.Details, 1, "details cover only answered questions")
	assert.Empty(t, sessions.sessions)

	// A second expiry sweep is a no-op.
	require.NoError(t, quiz.Expire(ctx, "guardia1"))
	assert.Len(t, sink.attempts, 1)
}

func TestExpiredSessionRejectsAnswers(t *testing.T) {
	quiz, sessions, sink := newQuizFixture(t, 10)
	startQuiz(t, quiz)

	sessions.sessions["guardia1"].Deadline = time.Now().UTC().Add(-time.Second)

	_, err := quiz.Answer(context.Background(), "guardia1", 0)
	assert.ErrorIs(t, err, ErrQuizExpired)
	// Lazy expiry recorded the (empty) attempt.
	assert.Len(t, sink.attempts, 1)
}

func TestAbandonRecordsNothingAndBlocksLaterFinalize(t *testing.T) {
	quiz, sessions, sink := newQuizFixture(t, 10)
	session := startQuiz(t, quiz)

	ctx := context.Background()
	require.NoError(t, quiz.Abandon(ctx, "guardia1"))

	assert.Empty(t, sink.attempts)
	assert.Empty(t, sessions.sessions)
	// The guard was claimed: even a stale finalize cannot record it now.
	won, err := sessions.TryFinalize(ctx, session.ID.String())
	require.NoError(t, err)
	assert.False(t, won)
}

func TestStartReplacesPreviousSession(t *testing.T) {
	quiz, sessions, sink := newQuizFixture(t, 10)
	first := startQuiz(t, quiz)
	second := startQuiz(t, quiz)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, second.ID, sessions.sessions["guardia1"].ID)
	assert.Empty(t, sink.attempts, "replacing a session records nothing")
}
