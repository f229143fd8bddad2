package service

import (
	"context"
	"errors"
	"time"

	"github.com/os10prep/os10-backend/internal/model"
	"github.com/os10prep/os10-backend/internal/repository"
)

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// AccountRepo is the persistence surface the account service needs.
type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (*model.UserAccount, error)
	Create(ctx context.Context, account *model.UserAccount) error
	UpdateStatus(ctx context.Context, username string, status model.AccountStatus) error
	List(ctx context.Context) ([]model.UserAccount, error)
	CountByStatus(ctx context.Context) (map[model.AccountStatus]int, error)
}

// AccountService handles registration and instructor-side user moderation.
type AccountService struct {
	repo AccountRepo
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo AccountRepo) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates a new account in pending status. New users cannot log in
// until an instructor approves them.
func (s *AccountService) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserAccount, error) {
	account := &model.UserAccount{
		Username:  req.Username,
		Password:  req.Password,
		Status:    model.StatusPending,
		IsAdmin:   false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return account, nil
}

// GetByUsername fetches one account.
func (s *AccountService) GetByUsername(ctx context.Context, username string) (*model.UserAccount, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Approve moves an account to approved status.
func (s *AccountService) Approve(ctx context.Context, username string) error {
	return s.repo.UpdateStatus(ctx, username, model.StatusApproved)
}

// Block moves an account to blocked status. Blocking does not cut an
// already-issued token; the session middleware does that on the next request
// after an instructor also resets the session.
func (s *AccountService) Block(ctx context.Context, username string) error {
	return s.repo.UpdateStatus(ctx, username, model.StatusBlocked)
}

// List returns all non-admin accounts for the moderation panel.
func (s *AccountService) List(ctx context.Context) ([]model.UserAccount, error) {
	return s.repo.List(ctx)
}

// StatusCounts returns account totals per moderation status.
func (s *AccountService) StatusCounts(ctx context.Context) (map[model.AccountStatus]int, error) {
	return s.repo.CountByStatus(ctx)
}
