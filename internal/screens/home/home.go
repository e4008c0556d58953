package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smahajan/openbook/internal/repertoire"
	"github.com/smahajan/openbook/internal/review"
	"github.com/smahajan/openbook/internal/router"
	"github.com/smahajan/openbook/internal/screen"
	"github.com/smahajan/openbook/internal/screens/picker"
	"github.com/smahajan/openbook/internal/ui/components"
	"github.com/smahajan/openbook/internal/ui/theme"
)

// HomeScreen is the repertoire browser entry point: one menu item per
// category, badged with how many openings inside are due for review.
type HomeScreen struct {
	menu  components.Menu
	sched *review.Scheduler
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(sched *review.Scheduler) *HomeScreen {
	now := time.Now()

	var items []components.MenuItem
	for _, cat := range repertoire.Categories() {
		cat := cat
		openings := repertoire.ByCategory(cat)

		var names []string
		for _, o := range openings {
			names = append(names, o.Name)
		}
		due := len(sched.DueNames(names, now))

		badge := theme.Hint.Render(fmt.Sprintf("(%d)", len(openings)))
		if due > 0 {
			badge += " " + theme.DueBadge.Render(fmt.Sprintf("● %d due", due))
		}

		items = append(items, components.MenuItem{
			Label: string(cat),
			Badge: badge,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: picker.New(cat, sched)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{menu: components.NewMenu(items), sched: sched}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("♟ Openbook")
	subtitle := theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Interactive guide to your opening repertoire")

	var names []string
	for _, o := range repertoire.All() {
		names = append(names, o.Name)
	}
	mastered := theme.Body.Width(width).Align(lipgloss.Center).
		Render(fmt.Sprintf("%d of %d openings mastered", h.sched.MasteredCount(names), len(names)))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Panel.Render(h.menu.View()))

	tips := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(strings.Join([]string{
			"Focus on understanding, not memorizing",
			"Play 3 games for every 1 hour of study",
			"Review your games",
		}, "\n")))

	return "\n" + title + "\n" + subtitle + "\n" + mastered + "\n\n" + menu + "\n\n" + tips
}

func (h *HomeScreen) Title() string {
	return "Your Repertoire"
}
