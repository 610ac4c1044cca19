package adapter

import "context"

// CompletionInput is a single summarization request.
type CompletionInput struct {
	System      string
	Prompt      string
	MaxTokens   int64
	Temperature float64
}

// Summarizer is the interface for LLM text generation. Failures wrap
// model.ErrProvider so callers can treat them as recoverable per call.
type Summarizer interface {
	// Complete sends one prompt and returns the generated text
	Complete(ctx context.Context, in CompletionInput) (string, error)
}
