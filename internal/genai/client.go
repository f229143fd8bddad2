// Package genai is a thin REST client for the Gemini generateContent API.
// It powers the quiz top-up generator and the study assistant chat. Errors
// here are never fatal to a quiz: the assembler absorbs them and falls back
// to the local bank.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/os10prep/os10-backend/internal/config"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/rs/zerolog"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("genai: no API key configured")

const systemInstruction = `ROL:
Eres el "Instructor Especialista en Guardias de Seguridad (GG.SS.)" bajo la nueva Ley 21.659 de Chile. Tu misión es preparar exclusivamente a Guardias de Seguridad.

REGLAS DE RESPUESTA:
1. Cita siempre leyes chilenas (Ley 21.659, 19.628, 20.609, 21.675).
2. Enfócate en el Guardia de Seguridad (GG.SS.) y su nuevo uniforme (Gris Perla / Rojo).
3. Usa un lenguaje técnico pero comprensible.
4. Diferencia claramente entre GG.SS. (coadyuvante) y Carabineros (autoridad).`

// Client calls the Gemini REST API.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a client from configuration.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.GeminiBaseURL, "/"),
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		http:    &http.Client{Timeout: cfg.GeminiTimeout},
		log:     log.With().Str("component", "genai").Logger(),
	}
}

// ─── Wire types (subset of the generateContent schema) ──────────────

type part struct {
	Text         string        `json:"text,omitempty"`
	FunctionCall *functionCall `json:"functionCall,omitempty"`
}

type functionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type tool struct {
	FunctionDeclarations []functionDeclaration `json:"functionDeclarations"`
}

type functionDeclaration struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
	Tools             []tool            `json:"tools,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate performs one generateContent call and returns the first candidate.
func (c *Client) generate(ctx context.Context, req generateRequest) (*content, error) {
	if c.apiKey == "" {
		return nil, ErrDisabled
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}

	return &out.Candidates[0].Content, nil
}

// GenerateQuestions asks for exactly count new questions on the topic. Each
// question must carry an explanation citing the governing law. Any failure
// (transport, non-200, malformed JSON) is returned as an error for the
// caller's fallback path.
func (c *Client) GenerateQuestions(ctx context.Context, topic string, difficulty model.Difficulty, count int) ([]model.Question, error) {
	prompt := fmt.Sprintf(`Genera EXACTAMENTE %d preguntas para Guardias de Seguridad (GG.SS.) de Chile sobre el TEMA: "%s".
Dificultad: %s.
Asegúrate de incluir aspectos técnicos vigentes en 2026.
IMPORTANTE: Responde SOLO un arreglo JSON. Cada pregunta debe incluir una 'explanation' técnica citando la ley vigente.
Formato de cada elemento: {"id": string, "question": string, "options": [4 strings], "correctAnswer": 0-3, "explanation": string}`,
		count, topic, difficultyLabel(difficulty))

	cand, err := c.generate(ctx, generateRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		GenerationConfig:  &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, err
	}

	text := firstText(cand)
	if text == "" {
		return nil, errors.New("gemini returned no text part")
	}

	var wire []struct {
		ID            string   `json:"id"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(cleanResponse(text)), &wire); err != nil {
		return nil, fmt.Errorf("parse generated questions: %w", err)
	}

	questions := make([]model.Question, 0, len(wire))
	for _, w := range wire {
		// Drop malformed entries instead of failing the whole batch.
		if w.Question == "" || len(w.Options) != 4 || w.CorrectAnswer < 0 || w.CorrectAnswer > 3 {
			c.log.Warn().Str("id", w.ID).Msg("Discarding malformed generated question")
			continue
		}
		questions = append(questions, model.Question{
			ID:            w.ID,
			QuestionText:  w.Question,
			Options:       w.Options,
			CorrectAnswer: w.CorrectAnswer,
			Explanation:   w.Explanation,
		})
	}
	if len(questions) == 0 {
		return nil, errors.New("no usable generated questions")
	}

	return questions, nil
}

func difficultyLabel(d model.Difficulty) string {
	switch d {
	case model.DifficultyLow:
		return "BAJA"
	case model.DifficultyHigh:
		return "ALTA"
	default:
		return "MEDIA"
	}
}

// firstText returns the first text part of a candidate.
func firstText(c *content) string {
	for _, p := range c.Parts {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// cleanResponse strips artifacts the model occasionally wraps around JSON
// payloads: markdown code fences and stray %% markers.
func cleanResponse(text string) string {
	cleaned := strings.ReplaceAll(text, "%%", "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
