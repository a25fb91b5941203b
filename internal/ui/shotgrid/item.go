package shotgrid

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shotlist/internal/document"
	"github.com/nhle/shotlist/internal/theme"
)

// ShotItem wraps a document.ShotView so it can be used in a bubbles/list.
type ShotItem struct {
	Shot document.ShotView
}

// FilterValue returns the string used for fuzzy filtering.
func (i ShotItem) FilterValue() string {
	return i.Shot.DisplayID + " " + i.Shot.Notes
}

// ShotDelegate implements list.ItemDelegate for rendering shot rows.
type ShotDelegate struct{}

// Height returns the number of lines each item takes.
func (d ShotDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ShotDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ShotDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single shot row: color swatch, display id, the four
// spec fields, camera, and a trailing note fragment.
func (d ShotDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(ShotItem)
	if !ok {
		return
	}

	shot := si.Shot
	isSelected := index == m.Index()

	swatch := theme.Swatch(shot.Color)
	id := theme.ShotIDStyle(shot.Color).Render(shot.DisplayID)

	specs := strings.Join([]string{
		shot.Specs.Size,
		shot.Specs.Type,
		shot.Specs.Move,
		shot.Specs.Equip,
	}, " / ")

	camera := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		Render(shot.CameraName + " " + shot.FocalLength)

	note := firstLine(shot.Notes)
	if note != "" {
		note = theme.HelpStyle.Render(" " + note)
	}

	mark := " "
	if shot.Checked {
		mark = "x"
	}

	line := fmt.Sprintf("[%s] %s %s  %s  %s%s", mark, swatch, id, specs, camera, note)
	if shot.Checked {
		line = theme.CheckedStyle.Render(line)
	}

	if isSelected {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// firstLine truncates notes to their first line for the row summary.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if r := []rune(s); len(r) > 40 {
		s = string(r[:40])
	}
	return s
}
