package worker

import (
	"context"
	"time"

	"github.com/os10prep/os10-backend/internal/service"
	"github.com/os10prep/os10-backend/internal/store"
	"github.com/rs/zerolog"
)

// TimeoutScanInterval is how often the deadline index is swept.
const TimeoutScanInterval = 1 * time.Second

// TimeoutWorker is the backstop for walked-away quizzes: it sweeps the
// deadline index and finalizes every session past its deadline, recording
// the partial attempt. Sessions finished or abandoned through the API are
// already gone from the index by the time the sweep sees them; a race with
// a live request is settled by the finalize guard.
type TimeoutWorker struct {
	sessions *store.SessionStore
	quiz     *service.QuizService
	log      zerolog.Logger
}

func NewTimeoutWorker(sessions *store.SessionStore, quiz *service.QuizService, log zerolog.Logger) *TimeoutWorker {
	return &TimeoutWorker{
		sessions: sessions,
		quiz:     quiz,
		log:      log.With().Str("component", "timeout_worker").Logger(),
	}
}

func (w *TimeoutWorker) Start(ctx context.Context) {
	w.log.Info().Msg("TimeoutWorker started")

	ticker := time.NewTicker(TimeoutScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("TimeoutWorker stopped")
			return
		case now := <-ticker.C:
			w.sweep(ctx, now.UTC())
		}
	}
}

func (w *TimeoutWorker) sweep(ctx context.Context, now time.Time) {
	users, err := w.sessions.ExpiredUsers(ctx, now)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error().Err(err).Msg("Deadline index scan failed")
		}
		return
	}

	for _, username := range users {
		if err := w.quiz.Expire(ctx, username); err != nil {
			w.log.Error().Err(err).Str("username", username).
				Msg("Failed to expire quiz session")
		}
	}
}
