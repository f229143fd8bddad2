package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/os10prep/os10-backend/internal/config"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{
		GeminiAPIKey:  "test-key",
		GeminiModel:   "gemini-3-flash-preview",
		GeminiBaseURL: baseURL,
		GeminiTimeout: 5 * time.Second,
	}, zerolog.Nop())
}

func candidateJSON(t *testing.T, parts []part) []byte {
	t.Helper()
	raw, err := json.Marshal(generateResponse{
		Candidates: []struct {
			Content content `json:"content"`
		}{{Content: content{Role: "model", Parts: parts}}},
	})
	require.NoError(t, err)
	return raw
}

func TestGenerateQuestionsParsesPayload(t *testing.T) {
	payload := `[
		{"id":"AI1","question":"¿Pregunta uno?","options":["a","b","c","d"],"correctAnswer":2,"explanation":"Ley 21.659"},
		{"id":"AI2","question":"¿Pregunta dos?","options":["a","b","c","d"],"correctAnswer":0,"explanation":"Ley 19.628"}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-3-flash-preview:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "EXACTAMENTE 2 preguntas")
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)

		w.Write(candidateJSON(t, []part{{Text: payload}}))
	}))
	defer srv.Close()

	questions, err := newTestClient(srv.URL).GenerateQuestions(context.Background(), "Módulo: Legal", model.DifficultyMedium, 2)
	require.NoError(t, err)

	require.Len(t, questions, 2)
	assert.Equal(t, "¿Pregunta uno?", questions[0].QuestionText)
	assert.Equal(t, 2, questions[0].CorrectAnswer)
	assert.Equal(t, "Ley 19.628", questions[1].Explanation)
}

func TestGenerateQuestionsStripsCodeFences(t *testing.T) {
	payload := "```json\n[{\"id\":\"AI1\",\"question\":\"¿P?\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"correctAnswer\":1,\"explanation\":\"x\"}]\n```"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(candidateJSON(t, []part{{Text: payload}}))
	}))
	defer srv.Close()

	questions, err := newTestClient(srv.URL).GenerateQuestions(context.Background(), "tema", model.DifficultyLow, 1)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, questions[0].CorrectAnswer)
}

func TestGenerateQuestionsDiscardsMalformedEntries(t *testing.T) {
	payload := `[
		{"id":"BAD1","question":"","options":["a","b","c","d"],"correctAnswer":0,"explanation":"x"},
		{"id":"BAD2","question":"¿P?","options":["a","b"],"correctAnswer":0,"explanation":"x"},
		{"id":"BAD3","question":"¿P?","options":["a","b","c","d"],"correctAnswer":7,"explanation":"x"},
		{"id":"OK","question":"¿Válida?","options":["a","b","c","d"],"correctAnswer":3,"explanation":"x"}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(candidateJSON(t, []part{{Text: payload}}))
	}))
	defer srv.Close()

	questions, err := newTestClient(srv.URL).GenerateQuestions(context.Background(), "tema", model.DifficultyHigh, 4)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "OK", questions[0].ID)
}

func TestGenerateQuestionsUpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateQuestions(context.Background(), "tema", model.DifficultyMedium, 5)
	assert.Error(t, err)
}

func TestGenerateQuestionsDisabledWithoutKey(t *testing.T) {
	client := NewClient(&config.Config{GeminiBaseURL: "http://unused", GeminiTimeout: time.Second}, zerolog.Nop())
	_, err := client.GenerateQuestions(context.Background(), "tema", model.DifficultyMedium, 1)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestChatReturnsReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// History plus the new message.
		require.Len(t, req.Contents, 3)
		assert.Equal(t, "user", req.Contents[2].Role)
		require.Len(t, req.Tools, 1)

		w.Write(candidateJSON(t, []part{{Text: "La Ley 21.659 exige credencial vigente."}}))
	}))
	defer srv.Close()

	history := []ChatMessage{
		{Role: "user", Text: "Hola"},
		{Role: "model", Text: "Hola, soy tu instructor."},
	}
	result, err := newTestClient(srv.URL).Chat(context.Background(), history, "¿Qué exige la ley?")
	require.NoError(t, err)
	assert.Equal(t, "La Ley 21.659 exige credencial vigente.", result.Reply)
	assert.Empty(t, result.NavigateTo)
}

func TestChatSurfacesNavigation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(candidateJSON(t, []part{{
			FunctionCall: &functionCall{
				Name: "navigateTo",
				Args: json.RawMessage(`{"mode":"STUDY"}`),
			},
		}}))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Chat(context.Background(), nil, "llévame a estudiar")
	require.NoError(t, err)
	assert.Equal(t, "STUDY", result.NavigateTo)
	assert.Equal(t, "Navegando a STUDY.", result.Reply)
}
