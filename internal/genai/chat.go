package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ChatMessage is one turn of the assistant conversation, client-supplied.
type ChatMessage struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

// ChatResult is the assistant's reply plus an optional navigation target
// when the model decides the user should be taken to another screen.
type ChatResult struct {
	Reply      string `json:"reply"`
	NavigateTo string `json:"navigate_to,omitempty"`
}

var navigateToDeclaration = functionDeclaration{
	Name:        "navigateTo",
	Description: "Cambia la pantalla o sección actual de la aplicación.",
	Parameters: json.RawMessage(`{
		"type": "object",
		"properties": {
			"mode": {
				"type": "string",
				"enum": ["DASHBOARD", "STUDY", "EXAM", "VISUAL", "RESULTS"],
				"description": "La sección a la que navegar."
			}
		},
		"required": ["mode"]
	}`),
}

// Chat sends the conversation history plus the new user message and returns
// the reply. A navigateTo function call in the response is surfaced as
// ChatResult.NavigateTo; unknown function calls are ignored.
func (c *Client) Chat(ctx context.Context, history []ChatMessage, message string) (*ChatResult, error) {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	cand, err := c.generate(ctx, generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		GenerationConfig:  &generationConfig{Temperature: 0.7},
		Tools:             []tool{{FunctionDeclarations: []functionDeclaration{navigateToDeclaration}}},
	})
	if err != nil {
		return nil, err
	}

	result := &ChatResult{}
	for _, p := range cand.Parts {
		if p.Text != "" && result.Reply == "" {
			result.Reply = p.Text
		}
		if p.FunctionCall != nil && p.FunctionCall.Name == "navigateTo" {
			var args struct {
				Mode string `json:"mode"`
			}
			if err := json.Unmarshal(p.FunctionCall.Args, &args); err != nil {
				return nil, fmt.Errorf("parse navigateTo args: %w", err)
			}
			result.NavigateTo = args.Mode
		}
	}
	if result.Reply == "" && result.NavigateTo == "" {
		return nil, errors.New("gemini returned an empty reply")
	}
	// A bare function call still deserves a visible acknowledgement.
	if result.Reply == "" {
		result.Reply = fmt.Sprintf("Navegando a %s.", result.NavigateTo)
	}

	return result, nil
}
