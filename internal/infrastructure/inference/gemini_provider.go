package inference

import (
	"context"
	"fmt"
	"strings"

	"lingkod-server/services/assistant-api/internal/utils/httpclients"

	"resty.dev/v3"
)

// GeminiProvider generates answers through the Google Generative Language API.
type GeminiProvider struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewGeminiProvider(apiKey, model, baseURL string) *GeminiProvider {
	client := httpclients.NewClient("geminiClient")
	client.SetBaseURL(baseURL)
	return &GeminiProvider{client: client, apiKey: apiKey, model: model}
}

func (p *GeminiProvider) Name() string { return "gemini" }

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func (p *GeminiProvider) Generate(ctx context.Context, query string, contextText string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: buildPrompt(query, contextText)}}},
		},
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}},
		GenerationConfig:  &geminiGenerationConfig{Temperature: 0.3, MaxOutputTokens: 512},
	}

	var result geminiResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", p.model))
	if err != nil {
		return "", fmt.Errorf("gemini generateContent: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini generateContent: status %d: %s", resp.StatusCode(), resp.String())
	}

	if result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked the prompt: %s", result.PromptFeedback.BlockReason)
	}
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	candidate := result.Candidates[0]
	if candidate.FinishReason == "SAFETY" {
		return "", fmt.Errorf("gemini blocked the answer: safety")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
