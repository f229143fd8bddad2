package service

import (
	"context"
	"testing"

	"github.com/os10prep/os10-backend/internal/model"
	"github.com/os10prep/os10-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memAccountRepo is an in-memory AccountRepo for tests.
type memAccountRepo struct {
	accounts map[string]*model.UserAccount
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*model.UserAccount)}
}

func (m *memAccountRepo) GetByUsername(_ context.Context, username string) (*model.UserAccount, error) {
	a, ok := m.accounts[username]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (m *memAccountRepo) Create(_ context.Context, account *model.UserAccount) error {
	if _, exists := m.accounts[account.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	clone := *account
	m.accounts[account.Username] = &clone
	return nil
}

func (m *memAccountRepo) UpdateStatus(_ context.Context, username string, status model.AccountStatus) error {
	a, ok := m.accounts[username]
	if !ok {
		return repository.ErrAccountNotFound
	}
	a.Status = status
	return nil
}

func (m *memAccountRepo) List(_ context.Context) ([]model.UserAccount, error) {
	out := make([]model.UserAccount, 0, len(m.accounts))
	for _, a := range m.accounts {
		if !a.IsAdmin {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAccountRepo) CountByStatus(_ context.Context) (map[model.AccountStatus]int, error) {
	counts := make(map[model.AccountStatus]int)
	for _, a := range m.accounts {
		counts[a.Status]++
	}
	return counts, nil
}

func TestRegisterCreatesPendingAccount(t *testing.T) {
	repo := newMemAccountRepo()
	svc := NewAccountService(repo)

	account, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "postulante",
		Password: "os10",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, account.Status)
	assert.False(t, account.IsAdmin)

	stored, err := svc.GetByUsername(context.Background(), "postulante")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newMemAccountRepo()
	svc := NewAccountService(repo)

	req := &model.RegisterRequest{Username: "guardia1", Password: "os10"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestApproveAndBlockMoveStatus(t *testing.T) {
	repo := newMemAccountRepo()
	svc := NewAccountService(repo)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "guardia1",
		Password: "os10",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(context.Background(), "guardia1"))
	account, err := svc.GetByUsername(context.Background(), "guardia1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, account.Status)

	require.NoError(t, svc.Block(context.Background(), "guardia1"))
	account, err = svc.GetByUsername(context.Background(), "guardia1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusBlocked, account.Status)

	counts, err := svc.StatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[model.AccountStatus]int{model.StatusBlocked: 1}, counts)
}

// The moderation statuses are persisted as their wire strings; the CHECK
// constraint in the users table names the same three values.
func TestAccountStatusWireValues(t *testing.T) {
	assert.Equal(t, model.AccountStatus("pending"), model.StatusPending)
	assert.Equal(t, model.AccountStatus("approved"), model.StatusApproved)
	assert.Equal(t, model.AccountStatus("blocked"), model.StatusBlocked)
}
