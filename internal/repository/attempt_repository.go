package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/os10prep/os10-backend/internal/model"
)

// AttemptRepository handles quiz attempt history data access.
type AttemptRepository struct {
	pool *pgxpool.Pool
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

// InsertBatch persists a batch of finished attempts in one transaction.
// Details are stored as a jsonb document per attempt.
func (r *AttemptRepository) InsertBatch(ctx context.Context, attempts []*model.QuizAttempt) error {
	if len(attempts) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, a := range attempts {
		details, err := json.Marshal(a.Details)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO quiz_attempts (id, username, taken_at, topic, score, total, details)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO NOTHING`,
			a.ID, a.Username, a.TakenAt, a.Topic, a.Score, a.Total, details,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListByUsername retrieves a user's full attempt history, newest first.
func (r *AttemptRepository) ListByUsername(ctx context.Context, username string) ([]model.QuizAttempt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, username, taken_at, topic, score, total, details
		 FROM quiz_attempts WHERE username = $1 ORDER BY taken_at DESC`, username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// ListPageByUsername retrieves one page of a user's history, newest first,
// along with the total attempt count for pagination.
func (r *AttemptRepository) ListPageByUsername(ctx context.Context, username string, limit, offset int) ([]model.QuizAttempt, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quiz_attempts WHERE username = $1`, username,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, username, taken_at, topic, score, total, details
		 FROM quiz_attempts WHERE username = $1
		 ORDER BY taken_at DESC LIMIT $2 OFFSET $3`, username, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	attempts, err := scanAttempts(rows)
	if err != nil {
		return nil, 0, err
	}
	return attempts, total, nil
}

func scanAttempts(rows pgx.Rows) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	for rows.Next() {
		var a model.QuizAttempt
		var details []byte
		if err := rows.Scan(&a.ID, &a.Username, &a.TakenAt, &a.Topic, &a.Score, &a.Total, &details); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &a.Details); err != nil {
				return nil, err
			}
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
