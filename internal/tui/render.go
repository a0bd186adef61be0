// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/recite/internal/model"
)

var (
	matchedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	mismatchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type styledWord struct {
	s     string
	width int
}

func styleFor(state model.WordState) lipgloss.Style {
	switch state {
	case model.WordMatched:
		return matchedStyle
	case model.WordMismatched:
		return mismatchedStyle
	default:
		return pendingStyle
	}
}

// maskWord replaces a display word with a placeholder of the same display
// width, so the layout of the hidden reference does not leak its content.
func maskWord(word string) string {
	width := runewidth.StringWidth(word)
	if width < 1 {
		width = 1
	}
	return strings.Repeat("_", width)
}

func buildStyledWords(marks []model.WordMark, mask bool) []styledWord {
	out := make([]styledWord, 0, len(marks))
	for _, mark := range marks {
		text := mark.Word
		if mask {
			text = maskWord(text)
		}
		out = append(out, styledWord{
			s:     styleFor(mark.State).Render(text),
			width: runewidth.StringWidth(text),
		})
	}
	return out
}

// wrapStyledWords joins styled words with single spaces, breaking lines so no
// line exceeds width display cells. Width measurement ignores ANSI sequences
// because widths are captured before styling.
func wrapStyledWords(words []styledWord, width int) string {
	var out strings.Builder
	lineWidth := 0
	for _, word := range words {
		switch {
		case lineWidth == 0:
			// First word of a line always fits, even when oversized.
		case width > 0 && lineWidth+1+word.width > width:
			out.WriteByte('\n')
			lineWidth = 0
		default:
			out.WriteByte(' ')
			lineWidth++
		}
		out.WriteString(word.s)
		lineWidth += word.width
	}
	return out.String()
}

func renderMarks(marks []model.WordMark, mask bool, width int) string {
	return wrapStyledWords(buildStyledWords(marks, mask), width)
}
