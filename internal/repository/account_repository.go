package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/os10prep/os10-backend/internal/model"
)

var (
	ErrDuplicateUsername = errors.New("account with this username already exists")
	ErrAccountNotFound   = errors.New("account not found")
)

// AccountRepository handles user account data access.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetByUsername retrieves an account by its unique username.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*model.UserAccount, error) {
	u := &model.UserAccount{}
	err := r.pool.QueryRow(ctx,
		`SELECT username, password, status, is_admin, created_at
		 FROM users WHERE username = $1`, username,
	).Scan(&u.Username, &u.Password, &u.Status, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new account. Returns ErrDuplicateUsername on conflict.
func (r *AccountRepository) Create(ctx context.Context, account *model.UserAccount) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (username, password, status, is_admin, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		account.Username, account.Password, account.Status, account.IsAdmin, account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// UpdateStatus sets the moderation status of an account.
func (r *AccountRepository) UpdateStatus(ctx context.Context, username string, status model.AccountStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET status = $1 WHERE username = $2`, status, username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// List retrieves all non-admin accounts, newest first.
func (r *AccountRepository) List(ctx context.Context) ([]model.UserAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT username, password, status, is_admin, created_at
		 FROM users WHERE is_admin = FALSE ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.UserAccount
	for rows.Next() {
		var u model.UserAccount
		if err := rows.Scan(&u.Username, &u.Password, &u.Status, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, u)
	}
	return accounts, rows.Err()
}

// CountByStatus returns how many non-admin accounts hold each status.
func (r *AccountRepository) CountByStatus(ctx context.Context) (map[model.AccountStatus]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM users WHERE is_admin = FALSE GROUP BY status`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.AccountStatus]int)
	for rows.Next() {
		var status model.AccountStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
