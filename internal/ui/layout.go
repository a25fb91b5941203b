package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shotlist/internal/theme"
)

// Layout manages the terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// RenderHeader draws the top bar: the project name (with its dirty
// marker) on the left and the scene position on the right, spread
// across a single colored strip.
func (l Layout) RenderHeader(title, position string) string {
	inner := l.Width - 2 // HeaderStyle pads one cell each side
	gap := inner - lipgloss.Width(title) - lipgloss.Width(position)
	if gap < 1 {
		gap = 1
	}
	return theme.HeaderStyle.Render(title + strings.Repeat(" ", gap) + position)
}

// RenderStatusBar draws the bottom bar carrying either key hints or a
// transient status message, padded to the full terminal width.
func (l Layout) RenderStatusBar(hints string) string {
	gap := l.Width - 2 - lipgloss.Width(hints)
	if gap < 0 {
		gap = 0
	}
	return theme.StatusBarStyle.Render(hints + strings.Repeat(" ", gap))
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
