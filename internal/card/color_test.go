package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"16711680", 0xFF0000, true},
		{"0x00ff00", 0x00FF00, true},
		{"0X0000FF", 0x0000FF, true},
		{"#ffffff", White, true},
		{" 0 ", Black, true},
		{"", None, false},
		{"red", None, false},
		{"#zzzzzz", None, false},
		{"16777216", None, false},
		{"-1", None, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseColor(%q) ok", tt.in)
		assert.Equal(t, tt.want, got, "ParseColor(%q)", tt.in)
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#ff8000", Color(0xFF8000).Hex())
	assert.Equal(t, "", None.Hex())
	assert.Equal(t, "none", None.String())
	r, g, b := Color(0x102030).RGB()
	assert.Equal(t, []uint8{0x10, 0x20, 0x30}, []uint8{r, g, b})
}

func TestDeadEnd(t *testing.T) {
	assert.True(t, Card{ID: "end"}.DeadEnd())
	assert.False(t, Card{ID: "timed", HasAutoAdvance: true}.DeadEnd())
	assert.False(t, Card{ID: "b-only", ChoiceB: Choice{Label: "Go", Goto: "x"}}.DeadEnd())
}
