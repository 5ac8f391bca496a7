package inference

import (
	"context"
	"fmt"

	"lingkod-server/services/assistant-api/internal/utils/httpclients"

	"resty.dev/v3"
)

// CompatProvider targets any OpenAI-compatible chat completions endpoint
// (Groq, OpenRouter and similar).
type CompatProvider struct {
	name   string
	client *resty.Client
	model  string
}

func NewCompatProvider(name, apiKey, model, baseURL string) *CompatProvider {
	client := httpclients.NewClient(name + "Client")
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	return &CompatProvider{name: name, client: client, model: model}
}

func (p *CompatProvider) Name() string { return p.name }

type compatRequest struct {
	Model       string          `json:"model"`
	Messages    []compatMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type compatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type compatResponse struct {
	Choices []struct {
		Message      compatMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
}

func (p *CompatProvider) Generate(ctx context.Context, query string, contextText string) (string, error) {
	body := compatRequest{
		Model: p.model,
		Messages: []compatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: buildPrompt(query, contextText)},
		},
		MaxTokens:   512,
		Temperature: 0.3,
	}

	var result compatResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", p.name, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%s chat completion: status %d: %s", p.name, resp.StatusCode(), resp.String())
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", p.name)
	}
	choice := result.Choices[0]
	if choice.FinishReason == "content_filter" {
		return "", fmt.Errorf("%s blocked the answer: content filter", p.name)
	}

	return choice.Message.Content, nil
}
