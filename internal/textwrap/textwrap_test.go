package textwrap

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapExample(t *testing.T) {
	lines, err := Wrap("The quick brown fox jumps", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"The quick", "brown fox", "jumps"}, lines)
}

func TestWrapFillsLaterLinesExactly(t *testing.T) {
	lines, err := Wrap("one two three four", 9)
	require.NoError(t, err)
	assert.Equal(t, []string{"one two", "three", "four"}, lines)

	lines, err = Wrap("one two three four", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"one two", "three four"}, lines)
}

func TestWrapFirstLineKeepsSeparatorColumn(t *testing.T) {
	// "abcd efghi" is exactly 10 cells, but the first line reserves one.
	lines, err := Wrap("abcd efghi", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd", "efghi"}, lines)
}

func TestWrapManualBreaks(t *testing.T) {
	lines, err := Wrap("Hello there\nGeneral Kenobi", 37)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello there", "General Kenobi"}, lines)

	lines, err = Wrap("first\n\nthird", 37)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "", "third"}, lines)

	lines, err = Wrap("ends here\n", 37)
	require.NoError(t, err)
	assert.Equal(t, []string{"ends here"}, lines)
}

func TestWrapOverlongToken(t *testing.T) {
	lines, err := Wrap("supercalifragilistic is long", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"supercalifragilistic", "is long"}, lines)
}

func TestWrapWideRunes(t *testing.T) {
	lines, err := Wrap("日本 語", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"日本", "語"}, lines)
}

func TestWrapEmpty(t *testing.T) {
	_, err := Wrap("", 10)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestWrapProperties(t *testing.T) {
	texts := []string{
		"You wake up in a dark room. There is a door to the north and a window to the east.",
		"The robot looks at you with its one remaining eye and asks if you would like some tea",
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
		"Extraordinarily long words occasionally overwhelm narrow displays",
	}
	for _, text := range texts {
		for _, width := range []int{5, 10, 25, 37} {
			lines, err := Wrap(text, width)
			require.NoError(t, err)

			for _, line := range lines {
				if runewidth.StringWidth(line) > width {
					assert.NotContains(t, line, " ", "only a single token may exceed the width: %q", line)
				}
			}

			joined := strings.Join(lines, " ")
			assert.Equal(t, text, joined)

			again, err := Wrap(joined, width)
			require.NoError(t, err)
			assert.Equal(t, lines, again)
		}
	}
}
