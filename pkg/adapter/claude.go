package adapter

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/habitloop/reflector/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

const defaultClaudeModel = "claude-3-5-sonnet-latest"

// claudeClient implements Summarizer using the Anthropic API
type claudeClient struct {
	client anthropic.Client
	model  anthropic.Model
}

// ClaudeOption is a functional option for the Claude client
type ClaudeOption func(*claudeClient)

// WithClaudeModel overrides the default model
func WithClaudeModel(m string) ClaudeOption {
	return func(c *claudeClient) {
		c.model = anthropic.Model(m)
	}
}

// NewClaude creates a new Claude-backed Summarizer
func NewClaude(apiKey string, opts ...ClaudeOption) Summarizer {
	c := &claudeClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(defaultClaudeModel),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *claudeClient) Complete(ctx context.Context, in CompletionInput) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: in.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(in.Prompt)),
		},
	}
	if in.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: in.System}}
	}
	if in.Temperature > 0 {
		params.Temperature = anthropic.Float(in.Temperature)
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", goerr.Wrap(model.ErrProvider, "claude completion failed", goerr.V("cause", err.Error()))
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", goerr.Wrap(model.ErrProvider, "claude returned no text content")
	}
	return sb.String(), nil
}
