package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/smahajan/openbook/internal/ui/theme"
)

// MoveBar displays the navigation cursor position within a move sequence as
// a horizontal bar with a "move m of n" label.
type MoveBar struct {
	Index int // 0-based cursor
	Count int
	Width int
}

// View renders the bar.
func (p MoveBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Move %d of %d", p.Index+1, p.Count))

	barWidth := p.Width - lipgloss.Width(label) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Count > 1 {
		filled = barWidth * p.Index / (p.Count - 1)
	}
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().Background(theme.Primary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	return label + "  " + bar
}
