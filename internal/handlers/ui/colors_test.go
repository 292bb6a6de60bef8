package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestThemePromptColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	tests := []struct {
		theme      string
		wantPrefix string
	}{
		{theme: ThemeDark, wantPrefix: "\x1b[36;1m"},
		{theme: ThemeLight, wantPrefix: "\x1b[34;1m"},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			got := ThemePromptColor(tt.theme)(PromptText)
			assert.True(t, strings.HasPrefix(got, tt.wantPrefix), "got %q", got)
			assert.Contains(t, got, PromptText)
		})
	}
}

func TestThemePromptColor_UnknownThemeIsPlain(t *testing.T) {
	for _, theme := range []string{"solarized", ""} {
		assert.Equal(t, PromptText, ThemePromptColor(theme)(PromptText))
	}
}
