package drill

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/smahajan/openbook/internal/board"
	"github.com/smahajan/openbook/internal/trainer"
	"github.com/smahajan/openbook/internal/ui/components"
	"github.com/smahajan/openbook/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	state := d.state

	var sections []string
	sections = append(sections, d.renderTabs(width))

	// The board is re-derived from the visible move prefix on every render;
	// the replay engine is stateless per call.
	visible := state.VisibleTokens()
	pos, err := board.Replay(visible)
	if err != nil {
		var illegal *board.IllegalMoveError
		if errors.As(err, &illegal) {
			sections = append(sections, theme.Incorrect.Width(width).Align(lipgloss.Center).
				Render(fmt.Sprintf("Board unavailable: %v", illegal)))
		} else {
			sections = append(sections, theme.Incorrect.Width(width).Align(lipgloss.Center).
				Render("Board unavailable: "+err.Error()))
		}
	} else {
		flipped := state.Opening.Side() == "Black"
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(board.Render(pos, flipped)))
		if len(visible) > 0 {
			sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).
				Render("Moves: "+strings.Join(visible, " ")))
		}
		if d.showFEN {
			sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).
				Render("FEN: "+board.Signature(pos)))
		}
	}

	switch state.Mode {
	case trainer.ModeQuiz:
		sections = append(sections, d.renderQuiz(width))
	case trainer.ModeRandomTest:
		sections = append(sections, d.renderRandom(width))
	default:
		sections = append(sections, d.renderStudy(width))
	}

	if d.showIdeas {
		sections = append(sections, d.renderIdeas(width))
	}

	if d.notice != "" {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(d.notice))
	}

	return strings.Join(sections, "\n\n")
}

func (d *DrillScreen) renderTabs(width int) string {
	var tabs []string
	for _, m := range []trainer.Mode{trainer.ModeStudy, trainer.ModeQuiz, trainer.ModeRandomTest} {
		label := fmt.Sprintf(" %d %s ", int(m)+1, m)
		if m == d.state.Mode {
			tabs = append(tabs, theme.Selected.Render(label))
		} else {
			tabs = append(tabs, theme.Hint.Render(label))
		}
	}
	line := strings.Join(tabs, "│")
	if d.state.Total > 0 {
		line += "   " + theme.Body.Render(fmt.Sprintf("Score %d/%d", d.state.Correct, d.state.Total))
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line)
}

func (d *DrillScreen) renderStudy(width int) string {
	state := d.state

	bar := components.MoveBar{
		Index: state.MoveIndex,
		Count: len(state.Tokens),
		Width: min(width-8, 48),
	}
	line := bar.View()

	if state.AutoPlay {
		line += "\n" + theme.Hint.Render(fmt.Sprintf("▶ auto-play, %.1fs per move", trainer.Speeds[state.SpeedIdx]))
	} else {
		line += "\n" + theme.Hint.Render(fmt.Sprintf("speed %.1fs", trainer.Speeds[state.SpeedIdx]))
	}

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line)
}

func (d *DrillScreen) renderQuiz(width int) string {
	state := d.state
	var b strings.Builder

	if state.QuizComplete() {
		b.WriteString(theme.Correct.Render("Line complete!") + "\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Session score %d/%d", state.Correct, state.Total)) + "\n")
		b.WriteString(theme.Hint.Render("Enter to run it again"))
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
	}

	guessPly := state.MoveIndex + 2 // 1-based ply of the move under guess
	side := "White"
	if guessPly%2 == 0 {
		side = "Black"
	}
	b.WriteString(theme.Body.Render(fmt.Sprintf("What does %s play next? (ply %d)", side, guessPly)) + "\n")

	if state.ShowAnswer {
		if state.UserGuess != "" {
			if state.LastCorrect {
				b.WriteString(theme.Correct.Render("Correct: "+state.ExpectedToken()) + "\n")
			} else {
				b.WriteString(theme.Incorrect.Render(fmt.Sprintf("%s is wrong, the move is %s", state.UserGuess, state.ExpectedToken())) + "\n")
			}
		} else {
			b.WriteString(theme.Body.Render("Answer: "+state.ExpectedToken()) + "\n")
		}
		if idea, ok := state.QuizAnnotation(); ok {
			b.WriteString(theme.Hint.Render(idea) + "\n")
		}
	} else {
		b.WriteString(d.input.View())
	}

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
}

func (d *DrillScreen) renderRandom(width int) string {
	state := d.state
	var b strings.Builder

	if state.RandomIndex < 0 {
		b.WriteString(theme.Hint.Render("This line is too short to test."))
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("Position after %d plies. What comes next?", state.RandomIndex)) + "\n")

	if state.ShowAnswer {
		answer := state.Tokens[state.RandomIndex]
		if state.LastCorrect {
			b.WriteString(theme.Correct.Render("Correct: "+answer) + "\n")
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("%s is wrong, the move is %s", state.UserGuess, answer)) + "\n")
		}
		b.WriteString(theme.Hint.Render("Continuation: "+strings.Join(state.Continuation(), " ")) + "\n")
		b.WriteString(theme.Hint.Render("Enter for a new position"))
	} else {
		b.WriteString(d.input.View())
	}

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
}

func (d *DrillScreen) renderIdeas(width int) string {
	o := d.state.Opening
	var b strings.Builder
	b.WriteString(theme.Selected.Render("Key Ideas") + "\n")
	for _, idea := range o.KeyIdeas {
		b.WriteString(theme.Body.Render("• "+idea) + "\n")
	}
	b.WriteString("\n" + theme.Selected.Render("Your Plan") + "\n")
	b.WriteString(theme.Body.Render(o.Plan))

	panel := theme.Panel.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(panel)
}
