package suggestservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrNoSuggestion = errors.New("no generated text in the response")

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate sends prompt to the model and joins the text parts of the first candidate.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return firstCandidateText(res)
}

func firstCandidateText(res *genai.GenerateContentResponse) (string, error) {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", ErrNoSuggestion
	}

	var parts []string
	for _, p := range res.Candidates[0].Content.Parts {
		if text, ok := p.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	text := strings.TrimSpace(strings.Join(parts, "\n"))
	if text == "" {
		return "", ErrNoSuggestion
	}

	return text, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}
