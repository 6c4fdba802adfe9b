package suggestservice

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrDisabled        = errors.New("suggestions are not configured")
	ErrContentRequired = errors.New("content is required")
)

// NewSuggestService returns a service backed by gen. A nil gen disables every suggestion.
func NewSuggestService(gen Generator) *SuggestService {
	return &SuggestService{gen: gen}
}

func (s *SuggestService) Enabled() bool {
	return s != nil && s.gen != nil
}

// Title suggests an opening line for a post with the given title.
func (s *SuggestService) Title(ctx context.Context, title string) (string, error) {
	return s.suggest(ctx, title, "Generate a starting line over this title:")
}

// Line continues the given line of text.
func (s *SuggestService) Line(ctx context.Context, line string) (string, error) {
	return s.suggest(ctx, line, "Continue this line and no unnecessary texts:")
}

func (s *SuggestService) suggest(ctx context.Context, content, instruction string) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}

	if strings.TrimSpace(content) == "" {
		return "", ErrContentRequired
	}

	return s.gen.Generate(ctx, content+"\n"+instruction)
}
