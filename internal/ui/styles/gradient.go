package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// dimAmount is how far Dim moves a colour toward the menu background.
const dimAmount = 0.55

// Dim returns c blended toward the theme background, used for disabled
// icons. ANSI palette colours cannot be blended and map to the subtle
// foreground.
func Dim(c lipgloss.Color) lipgloss.Color {
	from, ok := hexColor(c)
	if !ok {
		return defaultTheme.FgSubtle
	}
	to, ok := hexColor(defaultTheme.BgBase)
	if !ok {
		return defaultTheme.FgSubtle
	}
	return lipgloss.Color(from.BlendHcl(to, dimAmount).Clamped().Hex())
}

// ApplyGradient renders bold text with a horizontal color gradient. Used for
// menu headings.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) < 2 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorToHex(colors[i]))).
			Bold(true)
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// blendColors returns size colors blended between from and to in HCL space.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	c1, ok1 := hexColor(from)
	c2, ok2 := hexColor(to)
	if !ok1 || !ok2 {
		// ANSI colors cannot be blended, fall back to a neutral gray
		colors := make([]color.Color, size)
		for i := range colors {
			colors[i] = neutral
		}
		return colors
	}

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t)
	}
	return colors
}

var neutral = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// hexColor parses a "#rrggbb" lipgloss colour.
func hexColor(c lipgloss.Color) (colorful.Color, bool) {
	hex := string(c)
	if len(hex) != 7 || hex[0] != '#' {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return col, true
}

// colorToHex converts a color.Color to a hex string.
func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
