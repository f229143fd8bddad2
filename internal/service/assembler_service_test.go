package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/os10prep/os10-backend/internal/bank"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records requests and serves canned questions or an error.
type fakeGenerator struct {
	calls    int
	lastN    int
	err      error
	prefixed string
}

func (f *fakeGenerator) GenerateQuestions(_ context.Context, _ string, _ model.Difficulty, count int) ([]model.Question, error) {
	f.calls++
	f.lastN = count
	if f.err != nil {
		return nil, f.err
	}
	questions := make([]model.Question, count)
	for i := range questions {
		questions[i] = model.Question{
			ID:            fmt.Sprintf("AI%03d", i),
			QuestionText:  fmt.Sprintf("%s pregunta generada %d", f.prefixed, i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 0,
			Explanation:   "generada",
		}
	}
	return questions, nil
}

// fixtureBank builds a bank with n questions per category.
func fixtureBank(n int, categories ...string) *bank.Bank {
	var questions []model.CategorizedQuestion
	for _, cat := range categories {
		for i := 0; i < n; i++ {
			questions = append(questions, model.CategorizedQuestion{
				Question: model.Question{
					ID:            fmt.Sprintf("%s-%d", cat, i),
					QuestionText:  fmt.Sprintf("Pregunta %s número %d", cat, i),
					Options:       []string{"a", "b", "c", "d"},
					CorrectAnswer: i % 4,
					Explanation:   "fixture",
				},
				Category: cat,
			})
		}
	}
	return bank.FromQuestions(questions)
}

func newAssembler(b *bank.Bank, gen QuestionGenerator) *AssemblerService {
	return NewAssemblerService(b, gen, zerolog.Nop())
}

func TestIsModuleQuizMarkerIsCaseInsensitive(t *testing.T) {
	assert.True(t, IsModuleQuiz("Módulo: Legal"))
	assert.True(t, IsModuleQuiz("MÓDULO: Privacidad"))
	assert.False(t, IsModuleQuiz("Examen OS10 Completo"))

	assert.Equal(t, ModuleQuizSize, TargetSize("módulo: Legal"))
	assert.Equal(t, FullExamSize, TargetSize("Examen OS10 Completo"))
	assert.Equal(t, model.ModuleQuizSeconds, DurationSeconds("módulo: Legal"))
	assert.Equal(t, model.FullExamSeconds, DurationSeconds("Examen OS10 Completo"))
}

func TestAssembleFullExamFromSufficientBankSkipsGenerator(t *testing.T) {
	// 4 categories × 20 = 80 questions, more than the 60 target.
	b := fixtureBank(20, "Legal", "Privacidad", "Ética", "DD.HH.")
	gen := &fakeGenerator{}
	svc := newAssembler(b, gen)

	set := svc.Assemble(context.Background(), "Examen OS10 Completo", model.DifficultyMedium, nil)

	assert.Len(t, set, FullExamSize)
	assert.Zero(t, gen.calls, "generator must not be called when the pool covers the target")

	// No duplicates within the set.
	seen := make(map[string]bool)
	for _, q := range set {
		assert.False(t, seen[q.QuestionText])
		seen[q.QuestionText] = true
	}
}

func TestAssembleModuleQuizScopesAndTopsUp(t *testing.T) {
	b := fixtureBank(20, "Legal", "Privacidad")
	gen := &fakeGenerator{prefixed: "fresh"}
	svc := newAssembler(b, gen)

	set := svc.Assemble(context.Background(), "Módulo: Legal", model.DifficultyMedium, nil)

	require.Equal(t, 1, gen.calls)
	// 20 scoped questions cover the 15 target, but module quizzes still
	// request 2 fresh ones.
	assert.Equal(t, 2, gen.lastN)
	assert.Len(t, set, ModuleQuizSize)

	// Everything from the bank part must belong to the scoped module.
	for _, q := range set {
		if q.Explanation == "fixture" {
			assert.Contains(t, q.QuestionText, "Legal")
		}
	}
}

func TestAssembleExcludesRecentQuestions(t *testing.T) {
	b := fixtureBank(10, "Legal")
	gen := &fakeGenerator{prefixed: "fresh"}
	svc := newAssembler(b, gen)

	exclude := []string{"Pregunta Legal número 0", "Pregunta Legal número 1"}
	set := svc.Assemble(context.Background(), "Módulo: Legal", model.DifficultyMedium, exclude)

	for _, q := range set {
		assert.NotContains(t, exclude, q.QuestionText)
	}
}

func TestAssembleDifficultyLowDropsHardCategory(t *testing.T) {
	b := fixtureBank(30, model.CategoryHard, model.CategoryLegal, "Privacidad")
	svc := newAssembler(b, &fakeGenerator{})

	set := svc.Assemble(context.Background(), "Examen OS10 Completo", model.DifficultyLow, nil)

	require.Len(t, set, FullExamSize)
	lookup := bankLookup(b)
	for _, q := range set {
		assert.NotEqual(t, model.CategoryHard, lookup[q.QuestionText])
	}
}

func TestAssembleDifficultyHighKeepsOnlyHardAndLegal(t *testing.T) {
	b := fixtureBank(40, model.CategoryHard, model.CategoryLegal, "Privacidad", "Ética")
	svc := newAssembler(b, &fakeGenerator{})

	set := svc.Assemble(context.Background(), "Examen OS10 Completo", model.DifficultyHigh, nil)

	require.Len(t, set, FullExamSize)
	lookup := bankLookup(b)
	for _, q := range set {
		cat := lookup[q.QuestionText]
		assert.Contains(t, []string{model.CategoryHard, model.CategoryLegal}, cat)
	}
}

func TestAssembleGeneratorFailureFallsBackToWidestBank(t *testing.T) {
	// Scoped pool (Legal) is far short of 15; the generator is down.
	b := fixtureBank(5, "Legal", "Privacidad", "Ética")
	gen := &fakeGenerator{err: errors.New("upstream 500")}
	svc := newAssembler(b, gen)

	set := svc.Assemble(context.Background(), "Módulo: Legal", model.DifficultyMedium, nil)

	require.Equal(t, 1, gen.calls)
	// The whole 15-question bank backs the quiz; never an error, never empty.
	assert.Len(t, set, 15)

	seen := make(map[string]bool)
	for _, q := range set {
		assert.False(t, seen[q.QuestionText], "fallback must not duplicate pool questions")
		seen[q.QuestionText] = true
	}
}

func TestAssembleNilGeneratorStillServes(t *testing.T) {
	b := fixtureBank(4, "Legal")
	svc := newAssembler(b, nil)

	set := svc.Assemble(context.Background(), "Módulo: Legal", model.DifficultyMedium, nil)

	assert.Len(t, set, 4)
}

func TestAssembleShufflesButPreservesSet(t *testing.T) {
	b := fixtureBank(60, "Legal")
	svc := newAssembler(b, &fakeGenerator{})

	first := svc.Assemble(context.Background(), "Examen OS10 Completo", model.DifficultyMedium, nil)
	second := svc.Assemble(context.Background(), "Examen OS10 Completo", model.DifficultyMedium, nil)

	require.Len(t, first, FullExamSize)
	require.Len(t, second, FullExamSize)

	// Same universe both times: compare as sets, not slices.
	assert.ElementsMatch(t, texts(first), texts(second))
}

func bankLookup(b *bank.Bank) map[string]string {
	lookup := make(map[string]string)
	for _, q := range b.AllQuestions() {
		lookup[q.QuestionText] = q.Category
	}
	return lookup
}

func texts(questions []model.Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.QuestionText
	}
	return out
}
