package suggestservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func TestSuggest(t *testing.T) {
	testCases := []struct {
		name       string
		call       func(*SuggestService) (string, error)
		wantPrompt string
	}{
		{
			name:       "title",
			call:       func(s *SuggestService) (string, error) { return s.Title(context.Background(), "Go generics") },
			wantPrompt: "Go generics\nGenerate a starting line over this title:",
		},
		{
			name:       "line",
			call:       func(s *SuggestService) (string, error) { return s.Line(context.Background(), "Once upon a time") },
			wantPrompt: "Once upon a time\nContinue this line and no unnecessary texts:",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gen := new(MockGenerator)
			gen.On("Generate", tc.wantPrompt).Return("suggested", nil)

			got, err := tc.call(NewSuggestService(gen))
			require.NoError(t, err)
			assert.Equal(t, "suggested", got)
			gen.AssertExpectations(t)
		})
	}
}

func TestSuggest_Errors(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		_, err := NewSuggestService(nil).Title(context.Background(), "x")
		assert.ErrorIs(t, err, ErrDisabled)
	})

	t.Run("blank content", func(t *testing.T) {
		gen := new(MockGenerator)
		_, err := NewSuggestService(gen).Line(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrContentRequired)
		gen.AssertNotCalled(t, "Generate", mock.Anything)
	})

	t.Run("generator failure", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("Generate", mock.Anything).Return("", errors.New("quota exceeded"))

		_, err := NewSuggestService(gen).Title(context.Background(), "x")
		assert.EqualError(t, err, "quota exceeded")
	})
}

func TestFirstCandidateText(t *testing.T) {
	testCases := []struct {
		name    string
		res     *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{name: "nil response", wantErr: true},
		{name: "no candidates", res: &genai.GenerateContentResponse{}, wantErr: true},
		{
			name: "joins text parts",
			res: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("first"), genai.Blob{MIMEType: "image/png"}, genai.Text("second ")}}},
			}},
			want: "first\nsecond",
		},
		{
			name: "only blank text",
			res: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("  ")}}},
			}},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := firstCandidateText(tc.res)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrNoSuggestion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
