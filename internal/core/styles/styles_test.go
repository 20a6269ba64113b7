package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_SortedAndComplete(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, DefaultTheme)
	assert.IsNonDecreasing(t, names)
}

func TestGetPalette(t *testing.T) {
	_, ok := GetPalette("does-not-exist")
	assert.False(t, ok)

	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	assert.NotEmpty(t, p.Primary)
}

func TestSetTheme_RebuildsStyles(t *testing.T) {
	gruvbox, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(gruvbox)
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	assert.Equal(t, gruvbox.Primary, ColorPrimary)
	assert.Equal(t, gruvbox.Primary, TitleStyle.GetForeground())
}

func TestTierStyle_DistinctPerTier(t *testing.T) {
	seen := map[lipgloss.TerminalColor]bool{}
	for _, tier := range []string{"Poor", "Average", "Good", "Excellent"} {
		fg := TierStyle(tier).GetForeground()
		assert.False(t, seen[fg], "tier %s reuses a color", tier)
		seen[fg] = true
	}
}
