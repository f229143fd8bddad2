package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memAttempts serves a fixed attempt history.
type memAttempts struct {
	attempts []model.QuizAttempt
}

func (m *memAttempts) ListByUsername(_ context.Context, _ string) ([]model.QuizAttempt, error) {
	return m.attempts, nil
}

func (m *memAttempts) ListPageByUsername(_ context.Context, _ string, limit, offset int) ([]model.QuizAttempt, int, error) {
	total := len(m.attempts)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return m.attempts[offset:end], total, nil
}

func detail(category string, correct bool) model.AttemptDetail {
	return model.AttemptDetail{
		QuestionText: "pregunta",
		Category:     category,
		IsCorrect:    correct,
	}
}

func TestHistoryPaginates(t *testing.T) {
	attempts := make([]model.QuizAttempt, 5)
	for i := range attempts {
		attempts[i] = model.QuizAttempt{
			ID: uuid.New(), Username: "guardia1", TakenAt: time.Now(),
			Topic: "Módulo: Legal", Score: i, Total: 15,
		}
	}
	svc := NewResultsService(&memAttempts{attempts: attempts})

	page, total, err := svc.History(context.Background(), "guardia1", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, attempts[2].ID, page[0].ID)

	// Out-of-range pages are empty, not an error.
	page, total, err = svc.History(context.Background(), "guardia1", 9, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, page)

	// Page numbers below 1 clamp to the first page.
	page, _, err = svc.History(context.Background(), "guardia1", 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, attempts[0].ID, page[0].ID)
}

func TestSummaryZeroStateForNewUser(t *testing.T) {
	svc := NewResultsService(&memAttempts{})

	summary, err := svc.Summary(context.Background(), "guardia1")
	require.NoError(t, err)

	assert.Zero(t, summary.AverageScore)
	assert.Zero(t, summary.TotalAttempts)
	assert.Empty(t, summary.Categories)
}

func TestSummaryAggregatesAcrossAttempts(t *testing.T) {
	svc := NewResultsService(&memAttempts{attempts: []model.QuizAttempt{
		{
			ID: uuid.New(), Username: "guardia1", TakenAt: time.Now(),
			Topic: "Módulo: Legal", Score: 3, Total: 5,
			Details: []model.AttemptDetail{
				detail("Legal", true), detail("Legal", true), detail("Legal", true),
				detail("Legal", false), detail("Privacidad", false),
			},
		},
		{
			ID: uuid.New(), Username: "guardia1", TakenAt: time.Now(),
			Topic: "Examen OS10 Completo", Score: 2, Total: 4,
			Details: []model.AttemptDetail{
				detail("Privacidad", true), detail("Privacidad", true),
				detail("Ética", false), detail("Ética", false),
			},
		},
	}})

	summary, err := svc.Summary(context.Background(), "guardia1")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalAttempts)
	// mean(3/5, 2/4) = 0.55 → 55
	assert.Equal(t, 55, summary.AverageScore)

	require.Len(t, summary.Categories, 3)
	// Sorted by percentage descending.
	assert.Equal(t, model.CategoryStat{Category: "Legal", Correct: 3, Total: 4, Percentage: 75}, summary.Categories[0])
	assert.Equal(t, model.CategoryStat{Category: "Privacidad", Correct: 2, Total: 3, Percentage: 67}, summary.Categories[1])
	assert.Equal(t, model.CategoryStat{Category: "Ética", Correct: 0, Total: 2, Percentage: 0}, summary.Categories[2])
}

func TestSummaryPercentageRounds(t *testing.T) {
	svc := NewResultsService(&memAttempts{attempts: []model.QuizAttempt{
		{
			ID: uuid.New(), Username: "guardia1", TakenAt: time.Now(),
			Topic: "Módulo: Legal", Score: 1, Total: 3,
			Details: []model.AttemptDetail{
				detail("Legal", true), detail("Legal", false), detail("Legal", false),
			},
		},
	}})

	summary, err := svc.Summary(context.Background(), "guardia1")
	require.NoError(t, err)

	// 1/3 → 33.33 → 33; average likewise.
	require.Len(t, summary.Categories, 1)
	assert.Equal(t, 33, summary.Categories[0].Percentage)
	assert.Equal(t, 33, summary.AverageScore)
}

func TestSummaryTimedOutAttemptCountsAgainstFullTotal(t *testing.T) {
	// 1 correct out of 10 assembled, only 2 answered before the timeout.
	svc := NewResultsService(&memAttempts{attempts: []model.QuizAttempt{
		{
			ID: uuid.New(), Username: "guardia1", TakenAt: time.Now(),
			Topic: "Módulo: Legal", Score: 1, Total: 10,
			Details: []model.AttemptDetail{
				detail("Legal", true), detail("Legal", false),
			},
		},
	}})

	summary, err := svc.Summary(context.Background(), "guardia1")
	require.NoError(t, err)

	// The average uses the assembled total, not the answered count.
	assert.Equal(t, 10, summary.AverageScore)
	// Category stats only cover what was actually answered.
	require.Len(t, summary.Categories, 1)
	assert.Equal(t, 50, summary.Categories[0].Percentage)
}

func TestSummaryTieBreaksByCategoryName(t *testing.T) {
	svc := NewResultsService(&memAttempts{attempts: []model.QuizAttempt{
		{
			ID: uuid.New(), Username: "guardia1", TakenAt: time.Now(),
			Topic: "Examen OS10 Completo", Score: 2, Total: 2,
			Details: []model.AttemptDetail{
				detail("Privacidad", true), detail("Legal", true),
			},
		},
	}})

	summary, err := svc.Summary(context.Background(), "guardia1")
	require.NoError(t, err)

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Legal", summary.Categories[0].Category)
	assert.Equal(t, "Privacidad", summary.Categories[1].Category)
}
