package mailservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTemplate(t *testing.T) {
	template := NewTemplate()

	testCases := []struct {
		name         string
		templateName string
		data         any
		expectedErr  bool
	}{
		{
			name:         "success",
			templateName: welcomeTemplate,
			data:         welcomeData{Name: "Ada", Username: "ada@example.com"},
			expectedErr:  false,
		},
		{
			name:         "invalid template name",
			templateName: "invalid_template.tmpl",
			data:         nil,
			expectedErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, p, h, err := template.ParseTemplate(tc.templateName, tc.data)
			assert.Equal(t, tc.expectedErr, err != nil)

			if err == nil {
				assert.Equal(t, "Welcome to Postly, Ada!", s.String())
				assert.Contains(t, p.String(), "ada@example.com")
				assert.Contains(t, h.String(), "<strong>ada@example.com</strong>")
			}
		})
	}
}
