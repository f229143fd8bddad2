package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/os10prep/os10-backend/internal/bank"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/rs/zerolog"
)

// ErrGeneratorUnavailable signals that no question generator is configured.
var ErrGeneratorUnavailable = errors.New("question generator not configured")

// moduleMarker in the topic switches the assembler into module-quiz mode:
// a 15-question set scoped to one course area instead of the full 60.
const moduleMarker = "módulo:"

// Question set sizes.
const (
	ModuleQuizSize = 15
	FullExamSize   = 60
)

// QuestionGenerator produces extra questions when the local pool comes up
// short. Implemented by genai.Client.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, topic string, difficulty model.Difficulty, count int) ([]model.Question, error)
}

// AssemblerService builds the question set for a new quiz session from the
// local bank, topped up by the generator when the filtered pool is short.
// Assemble never fails: any generator problem degrades to bank-only sets.
type AssemblerService struct {
	bank *bank.Bank
	gen  QuestionGenerator
	log  zerolog.Logger
}

// NewAssemblerService creates a new AssemblerService. gen may be nil when no
// generator is configured; the assembler then always works bank-only.
func NewAssemblerService(b *bank.Bank, gen QuestionGenerator, log zerolog.Logger) *AssemblerService {
	return &AssemblerService{
		bank: b,
		gen:  gen,
		log:  log.With().Str("component", "assembler").Logger(),
	}
}

// IsModuleQuiz reports whether the topic requests a single-module quiz.
// The marker match is case-insensitive.
func IsModuleQuiz(topic string) bool {
	return strings.Contains(strings.ToLower(topic), moduleMarker)
}

// TargetSize returns the question count a topic calls for.
func TargetSize(topic string) int {
	if IsModuleQuiz(topic) {
		return ModuleQuizSize
	}
	return FullExamSize
}

// DurationSeconds returns the countdown a topic calls for.
func DurationSeconds(topic string) int {
	if IsModuleQuiz(topic) {
		return model.ModuleQuizSeconds
	}
	return model.FullExamSeconds
}

// Assemble builds a shuffled question set for the topic. Pool construction:
// exclude recently-seen question texts, scope to the module name for module
// quizzes, then apply the difficulty filter. If the pool still falls short
// of the target (module quizzes always request 2 fresh questions on top),
// the generator fills the gap; on any generator failure the widest bank
// pool stands in so a quiz always starts.
func (s *AssemblerService) Assemble(ctx context.Context, topic string, difficulty model.Difficulty, exclude []string) []model.Question {
	isModule := IsModuleQuiz(topic)
	target := TargetSize(topic)

	excluded := make(map[string]struct{}, len(exclude))
	for _, q := range exclude {
		excluded[q] = struct{}{}
	}

	pool := make([]model.CategorizedQuestion, 0, s.bank.Size())
	for _, q := range s.bank.AllQuestions() {
		if _, skip := excluded[q.QuestionText]; !skip {
			pool = append(pool, q)
		}
	}

	if isModule {
		// The module name is whatever follows the marker's colon; match it
		// against category and question text.
		parts := strings.Split(topic, ":")
		moduleName := strings.ToLower(strings.TrimSpace(parts[1]))
		scoped := pool[:0]
		for _, q := range pool {
			if strings.Contains(strings.ToLower(q.Category), moduleName) ||
				strings.Contains(strings.ToLower(q.QuestionText), moduleName) {
				scoped = append(scoped, q)
			}
		}
		pool = scoped
	}

	switch difficulty {
	case model.DifficultyLow:
		filtered := pool[:0]
		for _, q := range pool {
			if q.Category != model.CategoryHard {
				filtered = append(filtered, q)
			}
		}
		pool = filtered
	case model.DifficultyHigh:
		filtered := pool[:0]
		for _, q := range pool {
			if q.Category == model.CategoryHard || q.Category == model.CategoryLegal {
				filtered = append(filtered, q)
			}
		}
		pool = filtered
	}

	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	needed := max(0, target-len(pool))
	if isModule {
		// Module quizzes always ask for a couple of fresh questions so
		// repeat takers do not memorize the set.
		needed += 2
	}

	if needed <= 0 && len(pool) >= target {
		return toQuestions(pool[:target])
	}

	generated, err := s.topUp(ctx, topic, difficulty, needed)
	if err != nil {
		s.log.Warn().Err(err).Str("topic", topic).Int("needed", needed).
			Msg("Question generation failed, falling back to bank pool")
		return s.fallback(pool, excluded, target)
	}

	final := append(toQuestions(pool), generated...)
	if len(final) > target {
		final = final[:target]
	}
	rand.Shuffle(len(final), func(i, j int) { final[i], final[j] = final[j], final[i] })
	return final
}

func (s *AssemblerService) topUp(ctx context.Context, topic string, difficulty model.Difficulty, count int) ([]model.Question, error) {
	if s.gen == nil {
		return nil, ErrGeneratorUnavailable
	}
	return s.gen.GenerateQuestions(ctx, topic, difficulty, count)
}

// fallback widens a short pool with the rest of the bank, honoring only the
// exclusion list. Questions already in the pool are not added twice.
func (s *AssemblerService) fallback(pool []model.CategorizedQuestion, excluded map[string]struct{}, target int) []model.Question {
	if len(pool) >= target {
		return toQuestions(pool[:target])
	}

	inPool := make(map[string]struct{}, len(pool))
	for _, q := range pool {
		inPool[q.QuestionText] = struct{}{}
	}

	var rest []model.CategorizedQuestion
	for _, q := range s.bank.AllQuestions() {
		if _, skip := excluded[q.QuestionText]; skip {
			continue
		}
		if _, dup := inPool[q.QuestionText]; dup {
			continue
		}
		rest = append(rest, q)
	}
	rand.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	combined := append(pool, rest...)
	if len(combined) > target {
		combined = combined[:target]
	}
	return toQuestions(combined)
}

func toQuestions(pool []model.CategorizedQuestion) []model.Question {
	questions := make([]model.Question, len(pool))
	for i, q := range pool {
		questions[i] = q.Question
	}
	return questions
}
