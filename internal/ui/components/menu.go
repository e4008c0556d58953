package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smahajan/openbook/internal/ui/theme"
)

// MenuItem is one entry in a vertical navigation menu. Badge is rendered
// after the label (due markers, mastered stars) and does not affect
// selection.
type MenuItem struct {
	Label  string
	Badge  string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if action := m.Items[m.Selected].Action; action != nil {
				return m, action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		line := item.Label
		if item.Badge != "" {
			line += "  " + item.Badge
		}
		if i == m.Selected {
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("    "+line) + "\n"
		}
	}
	return s
}
