package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smahajan/openbook/internal/ui/theme"
)

// MoveInput wraps bubbles/textinput for typing a move in algebraic notation.
type MoveInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewMoveInput creates a focused move input.
func NewMoveInput() MoveInput {
	ti := textinput.New()
	ti.Placeholder = "Your move (e.g. Nf3)..."
	ti.CharLimit = 10
	ti.Focus()
	return MoveInput{Model: ti}
}

// Init returns the initial command.
func (m MoveInput) Init() tea.Cmd {
	return m.Model.Focus()
}

// Update handles messages.
func (m MoveInput) Update(msg tea.Msg) (MoveInput, tea.Cmd) {
	var cmd tea.Cmd
	m.Model, cmd = m.Model.Update(msg)
	return m, cmd
}

// View renders the input with a check mark after a scored guess.
func (m MoveInput) View() string {
	view := m.Model.View()
	if m.submitted {
		if m.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (m MoveInput) Value() string {
	return m.Model.Value()
}

// Submit marks the input as scored.
func (m *MoveInput) Submit(correct bool) {
	m.submitted = true
	m.correct = correct
}

// Reset clears the text and the scored marker.
func (m *MoveInput) Reset() {
	m.Model.SetValue("")
	m.submitted = false
	m.correct = false
}
