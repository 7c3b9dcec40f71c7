// Package gemini は Gemini API（google.golang.org/genai）でチャットの応答を生成する。
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// ErrNotConfigured is returned by every call when no API key was given.
var ErrNotConfigured = errors.New("gemini: api key not configured")

// generator is the subset of genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client は CompletionRequest を Gemini の GenerateContent 呼び出しに変換する
type Client struct {
	models generator
}

// NewClient creates a Gemini client. An empty apiKey yields a Client whose
// Complete always fails with ErrNotConfigured.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return &Client{}, nil
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{models: c.Models}, nil
}

// Configured reports whether calls can reach the API.
func (c *Client) Configured() bool {
	return c.models != nil
}

// Complete はシステム指示と履歴を送り、生成されたテキストを返す
func (c *Client) Complete(ctx context.Context, req model.CompletionRequest) (string, error) {
	if c.models == nil {
		return "", ErrNotConfigured
	}
	resp, err := c.models.GenerateContent(ctx, req.Model, toContents(req.Messages), toConfig(req))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}

// toContents maps chat roles to Gemini roles; assistant turns become "model".
func toContents(msgs []model.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := genai.Role(genai.RoleUser)
		if m.Role == model.RoleAssistant {
			role = genai.RoleModel
		}
		out = append(out, genai.NewContentFromText(m.Content, role))
	}
	return out
}

func toConfig(req model.CompletionRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(req.Temperature),
		MaxOutputTokens:  int32(req.MaxTokens),
		PresencePenalty:  genai.Ptr(req.PresencePenalty),
		FrequencyPenalty: genai.Ptr(req.FrequencyPenalty),
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	return cfg
}
