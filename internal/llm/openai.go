package llm

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Fixed sampling parameters for every call. The demo compares interaction
// modes, so the knobs stay constant across both panes.
const (
	temperature = 0.7
	maxTokens   = 1200
)

// OpenAIClient talks to any OpenAI-compatible chat-completion endpoint.
type OpenAIClient struct {
	model    llms.Model
	provider string
	name     string
}

// NewOpenAI builds a client for the given provider. BaseURL may point the
// client at any OpenAI-compatible endpoint (OpenRouter, a local server, ...).
func NewOpenAI(provider, apiKey, model, baseURL string) (*OpenAIClient, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	m, err := openai.New(opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize model client",
			goerr.V("provider", provider), goerr.V("model", model))
	}

	return &OpenAIClient{model: m, provider: provider, name: model}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", goerr.Wrap(err, "model call failed",
			goerr.V("provider", c.provider), goerr.V("model", c.name))
	}
	if len(resp.Choices) == 0 {
		return "", goerr.New("model call failed: no choices in response",
			goerr.V("provider", c.provider), goerr.V("model", c.name))
	}

	return resp.Choices[0].Content, nil
}
