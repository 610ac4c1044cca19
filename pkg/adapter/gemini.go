package adapter

import (
	"context"

	"github.com/habitloop/reflector/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

// GeminiClient implements Summarizer using Gemini on Vertex AI
type GeminiClient struct {
	client *genai.Client
	model  string
}

// GeminiOption is a functional option for GeminiClient
type GeminiOption func(*GeminiClient)

// WithGeminiModel overrides the default generative model
func WithGeminiModel(m string) GeminiOption {
	return func(g *GeminiClient) {
		g.model = m
	}
}

// NewGemini creates a new Gemini-backed Summarizer
func NewGemini(ctx context.Context, projectID, location string, opts ...GeminiOption) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client")
	}

	g := &GeminiClient{
		client: client,
		model:  "gemini-2.5-flash",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *GeminiClient) Complete(ctx context.Context, in CompletionInput) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(in.MaxTokens),
	}
	if in.System != "" {
		config.SystemInstruction = genai.NewContentFromText(in.System, "")
	}
	if in.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(in.Temperature))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(in.Prompt), config)
	if err != nil {
		return "", goerr.Wrap(model.ErrProvider, "gemini completion failed", goerr.V("cause", err.Error()))
	}

	text := resp.Text()
	if text == "" {
		return "", goerr.Wrap(model.ErrProvider, "gemini returned no text content")
	}
	return text, nil
}
