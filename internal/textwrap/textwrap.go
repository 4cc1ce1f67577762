// Package textwrap lays card text out into display lines.
package textwrap

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrEmptyText is returned when there is nothing to wrap. Callers that may
// render no text should skip wrapping instead.
var ErrEmptyText = errors.New("textwrap: empty text")

// Wrap splits text on spaces and greedily fills lines of at most width
// terminal cells. A single token wider than width gets a line of its own.
//
// An embedded newline inside a token closes the current line after the
// part before the break; the rest starts the next line.
func Wrap(text string, width int) ([]string, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	var lines []string
	line := ""

	// The first line is accumulated with a leading separator that is
	// stripped at the end; later lines start bare.
	sep := func() string {
		if line == "" && len(lines) > 0 {
			return ""
		}
		return " "
	}

	for _, word := range strings.Split(text, " ") {
		for {
			before, after, found := strings.Cut(word, "\n")
			if !found {
				break
			}
			line += sep() + before
			lines = append(lines, line)
			line = ""
			word = after
		}

		if line != "" && runewidth.StringWidth(line)+1+runewidth.StringWidth(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += sep() + word
	}
	if line != "" {
		lines = append(lines, line)
	}

	lines[0] = strings.TrimPrefix(lines[0], " ")
	return lines, nil
}
