package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestResolveColor(t *testing.T) {
	th := T()

	tests := []struct {
		ref  string
		want lipgloss.Color
	}{
		{"", th.FgBase},
		{"--primary", th.Primary},
		{"--error", th.Error},
		{"  --warning ", th.Warning},
		{"--nope", th.FgBase},
		{"#ff0000", lipgloss.Color("#ff0000")},
		{"212", lipgloss.Color("212")},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, th.ResolveColor(tt.ref))
		})
	}
}

func TestDim(t *testing.T) {
	dimmed := Dim(lipgloss.Color("#ffffff"))

	assert.NotEqual(t, lipgloss.Color("#ffffff"), dimmed)
	assert.Len(t, string(dimmed), 7)
	assert.Equal(t, T().FgSubtle, Dim(lipgloss.Color("212")), "ANSI colours fall back")
}

func TestApplyGradient_KeepsText(t *testing.T) {
	out := ApplyGradient("Actions", T().Primary, T().Secondary)
	assert.Equal(t, "Actions", ansi.Strip(out))

	assert.Empty(t, ApplyGradient("", T().Primary, T().Secondary))
	assert.Equal(t, "A", ansi.Strip(ApplyGradient("A", "1", "2")))
}

func TestMenuBox_Border(t *testing.T) {
	assert.Equal(t, T().BorderFocus, MenuBox(true).GetBorderTopForeground())
	assert.Equal(t, T().Border, MenuBox(false).GetBorderTopForeground())
}
