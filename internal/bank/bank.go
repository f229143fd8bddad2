// Package bank holds the static, read-only question catalog for the OS10
// certification course and the text→category lookup used at scoring time.
package bank

import "github.com/os10prep/os10-backend/internal/model"

// Bank is the in-memory question catalog. It is immutable after New.
type Bank struct {
	questions  []model.CategorizedQuestion
	categories map[string]string // question text → category
}

// New builds the bank from the embedded catalog.
func New() *Bank {
	return FromQuestions(catalog)
}

// FromQuestions builds a bank over an arbitrary question set. Tests use it
// to run the assembler against small fixtures.
func FromQuestions(questions []model.CategorizedQuestion) *Bank {
	b := &Bank{
		questions:  questions,
		categories: make(map[string]string, len(questions)),
	}
	// Questions with identical text would collide here; the last one wins.
	// The catalog has no duplicates, but the lookup is by text, not ID, so
	// this stays a known limitation rather than something to paper over.
	for _, q := range questions {
		b.categories[q.QuestionText] = q.Category
	}
	return b
}

// AllQuestions returns the full catalog. Callers must not mutate the
// returned slice; filtering callers should copy first.
func (b *Bank) AllQuestions() []model.CategorizedQuestion {
	return b.questions
}

// CategoryOf resolves a question text to its bank category. Questions
// without a bank entry (AI top-up) resolve to CategoryGeneral.
func (b *Bank) CategoryOf(questionText string) string {
	if c, ok := b.categories[questionText]; ok {
		return c
	}
	return model.CategoryGeneral
}

// Size returns the number of questions in the catalog.
func (b *Bank) Size() int {
	return len(b.questions)
}
