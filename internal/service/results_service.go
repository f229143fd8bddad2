package service

import (
	"context"
	"math"
	"sort"

	"github.com/os10prep/os10-backend/internal/model"
)

// AttemptLister is the history surface the results service needs.
// Implemented by repository.AttemptRepository.
type AttemptLister interface {
	ListByUsername(ctx context.Context, username string) ([]model.QuizAttempt, error)
	ListPageByUsername(ctx context.Context, username string, limit, offset int) ([]model.QuizAttempt, int, error)
}

// ResultsService derives progress statistics from a user's attempt history.
// Everything is recomputed from the stored attempts on each call; there is
// no materialized state to drift.
type ResultsService struct {
	repo AttemptLister
}

// NewResultsService creates a new ResultsService.
func NewResultsService(repo AttemptLister) *ResultsService {
	return &ResultsService{repo: repo}
}

// History returns one page of the attempt list, newest first, plus the
// total attempt count.
func (s *ResultsService) History(ctx context.Context, username string, page, perPage int) ([]model.QuizAttempt, int, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.ListPageByUsername(ctx, username, perPage, (page-1)*perPage)
}

// Summary aggregates the history into per-category accuracy and an overall
// average. Categories sort by percentage descending, name ascending on ties.
// A user with no attempts gets the zero summary.
func (s *ResultsService) Summary(ctx context.Context, username string) (*model.ResultsSummary, error) {
	attempts, err := s.repo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	summary := &model.ResultsSummary{
		TotalAttempts: len(attempts),
		Categories:    []model.CategoryStat{},
	}
	if len(attempts) == 0 {
		return summary, nil
	}

	type tally struct{ correct, total int }
	byCategory := make(map[string]*tally)
	var ratioSum float64

	for _, a := range attempts {
		if a.Total > 0 {
			ratioSum += float64(a.Score) / float64(a.Total)
		}
		for _, d := range a.Details {
			t := byCategory[d.Category]
			if t == nil {
				t = &tally{}
				byCategory[d.Category] = t
			}
			t.total++
			if d.IsCorrect {
				t.correct++
			}
		}
	}

	for category, t := range byCategory {
		summary.Categories = append(summary.Categories, model.CategoryStat{
			Category:   category,
			Correct:    t.correct,
			Total:      t.total,
			Percentage: int(math.Round(100 * float64(t.correct) / float64(t.total))),
		})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		a, b := summary.Categories[i], summary.Categories[j]
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		return a.Category < b.Category
	})

	summary.AverageScore = int(math.Round(ratioSum / float64(len(attempts)) * 100))
	return summary, nil
}
