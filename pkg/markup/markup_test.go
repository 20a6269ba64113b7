package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "great work", "great work"},
		{"html paragraph", "<p>great</p>", "great"},
		{"nested tags", "<p><strong>solid</strong> quarter</p>", "solid quarter"},
		{"entities", "<p>Q1&nbsp;&amp;&nbsp;Q2</p>", "Q1 & Q2"},
		{"whitespace collapsed", "<p>a</p>\n\n<p>b</p>", "a b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"whitespace only", "   \n\t", true},
		{"empty paragraph", "<p> </p>", true},
		{"empty tags", "<p><br></p>", true},
		{"bare markdown scaffolding", "# \n- ", true},
		{"real content", "<p>great</p>", false},
		{"markdown with content", "# Summary", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlank(tt.input))
		})
	}
}
