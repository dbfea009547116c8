package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "emphasis and links",
			input:    "Born in **Rotorua**, see https://example.org",
			contains: []string{"<strong>Rotorua</strong>", `href="https://example.org"`},
		},
		{
			name:   "script is stripped",
			input:  "hello <script>alert(1)</script>",
			absent: []string{"<script", "alert(1)</script>"},
		},
		{
			name:   "event handlers are stripped",
			input:  `<a href="#" onclick="steal()">x</a>`,
			absent: []string{"onclick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Render(tt.input))
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, got, s)
			}
		})
	}

	t.Run("blank input", func(t *testing.T) {
		assert.Empty(t, Render("  \n"))
	})
}
