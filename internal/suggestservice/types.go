package suggestservice

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

const DefaultModel = "gemini-1.5-flash"

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type SuggestService struct {
	gen Generator
}

type GeminiClient struct {
	client *genai.Client
	model  string
}
