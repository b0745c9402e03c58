package popup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_PlacesBox(t *testing.T) {
	base := "aaaaaaaa\nbbbbbbbb\ncccccccc"

	got := Overlay(base, "XY\nZW", 3, 1, 8)

	assert.Equal(t, "aaaaaaaa\nbbbXYbbb\ncccZWccc", got)
}

func TestOverlay_BoxSpacesCoverBase(t *testing.T) {
	got := Overlay("abcdef", "| |", 1, 0, 6)

	assert.Equal(t, "a| |ef", got)
}

func TestOverlay_ExtendsShortBase(t *testing.T) {
	got := Overlay("ab", "XY\nZW", 4, 0, 10)

	assert.Equal(t, "ab  XY\n    ZW", got)
}

func TestOverlay_ClipsAtScreenEdge(t *testing.T) {
	got := Overlay("abcdef", "XYZ", 4, 0, 6)

	assert.Equal(t, "abcdXY", got)
}

func TestOverlay_NegativeRowsSkipped(t *testing.T) {
	got := Overlay("abc\ndef", "X\nY", 0, -1, 3)

	assert.Equal(t, "Ybc\ndef", got)
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		name       string
		anchorX    int
		boxWidth   int
		screen     int
		alignRight bool
		want       int
	}{
		{"left aligned", 5, 10, 80, false, 5},
		{"right aligned", 20, 10, 80, true, 11},
		{"right aligned clamps at zero", 3, 10, 80, true, 0},
		{"left aligned clamps to screen", 75, 10, 80, false, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Anchor(tt.anchorX, tt.boxWidth, tt.screen, tt.alignRight))
		})
	}
}

func TestSize(t *testing.T) {
	w, h := Size("abc\nde")
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
}
