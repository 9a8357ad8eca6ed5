package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rangeslider/internal/ui/testutil"
)

func TestGradientColors(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	assert.Nil(t, GradientColors(0, from, to))

	single := GradientColors(1, from, to)
	require.Len(t, single, 1)
	assert.Equal(t, from, single[0])

	colors := GradientColors(5, from, to)
	require.Len(t, colors, 5)
	assert.Equal(t, from, colors[0])
	assert.Equal(t, to, colors[4])
}

func TestGradientColors_ANSIFallsBackToGray(t *testing.T) {
	colors := GradientColors(1, lipgloss.Color("240"), lipgloss.Color("#ffffff"))
	require.Len(t, colors, 1)
	assert.Equal(t, lipgloss.Color("#808080"), colors[0])
}

func TestApplyGradient_KeepsText(t *testing.T) {
	out := ApplyGradient("━━━━", T().Primary, T().Secondary)
	assert.Equal(t, "━━━━", testutil.StripANSI(out))
	assert.Empty(t, ApplyGradient("", T().Primary, T().Secondary))
}
