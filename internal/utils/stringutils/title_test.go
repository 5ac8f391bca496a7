package stringutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTitleContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "plain question", content: "What are the office hours?", want: "What are the office hours"},
		{name: "strips urls", content: "check https://example.com/page for details", want: "check for details"},
		{name: "collapses whitespace", content: "magkano   ang \t clearance", want: "magkano ang clearance"},
		{name: "drops special characters", content: "fees @ barangay #hall!", want: "fees barangay hall"},
		{name: "empty after cleanup", content: "!!! ???", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTitleContent(tt.content))
		})
	}
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short", TruncateTitle("short", 20))

	long := "how do I request a certificate of indigency for medical assistance"
	got := TruncateTitle(long, 40)
	assert.LessOrEqual(t, len(got), 40)
	assert.True(t, len(got) > 3)
	assert.Contains(t, got, "...")
}

func TestGenerateTitle(t *testing.T) {
	assert.Equal(t, "", GenerateTitle("https://example.com", 80))

	got := GenerateTitle("What documents can I request?", 80)
	assert.Equal(t, "What documents can I request", got)
}
