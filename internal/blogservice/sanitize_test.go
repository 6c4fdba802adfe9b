package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeContent(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain markup is kept",
			input: "<p>Hello <b>world</b></p>",
			want:  "<p>Hello <b>world</b></p>",
		},
		{
			name:  "script tag is removed",
			input: "<p>Hi</p><script>alert('x')</script>",
			want:  "<p>Hi</p>",
		},
		{
			name:  "multi-line script with attributes",
			input: "before<SCRIPT type=\"text/javascript\">\nvar a = 1;\n</script >after",
			want:  "beforeafter",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitizeContent(tc.input))
		})
	}
}

func TestSanitizeContent_MalformedScripts(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "tag split around an inner script",
			input: "<scr<script></script>ipt>alert(1)</script>",
		},
		{
			name:  "unclosed external script",
			input: "<script src=https://evil.example.com/x.js>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeContent(tc.input)
			assert.NotContains(t, got, "<script")
			assert.NotContains(t, got, "evil.example.com")
		})
	}
}
