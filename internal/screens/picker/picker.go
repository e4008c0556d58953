package picker

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smahajan/openbook/internal/repertoire"
	"github.com/smahajan/openbook/internal/review"
	"github.com/smahajan/openbook/internal/router"
	"github.com/smahajan/openbook/internal/screen"
	"github.com/smahajan/openbook/internal/screens/drill"
	"github.com/smahajan/openbook/internal/ui/components"
	"github.com/smahajan/openbook/internal/ui/theme"
)

// PickerScreen lists the openings of one category with review badges.
type PickerScreen struct {
	category repertoire.Category
	menu     components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)

// New creates a picker for a category.
func New(category repertoire.Category, sched *review.Scheduler) *PickerScreen {
	now := time.Now()

	var items []components.MenuItem
	for _, o := range repertoire.ByCategory(category) {
		o := o
		rec := sched.Record(o.Name)

		var badge string
		if rec.Mastered {
			badge = theme.MasteredBadge.Render("★ mastered")
		} else if sched.IsDue(o.Name, now) {
			badge = theme.DueBadge.Render("● due")
		} else if rec.ReviewCount > 0 {
			badge = theme.Hint.Render(fmt.Sprintf("%d reviews", rec.ReviewCount))
		}

		items = append(items, components.MenuItem{
			Label: o.ShortName(),
			Badge: badge,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: drill.New(o, sched)}
				}
			},
		})
	}

	return &PickerScreen{category: category, menu: components.NewMenu(items)}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	heading := theme.Title.Width(width).Render(string(p.category))
	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Panel.Render(p.menu.View()))
	return "\n" + heading + "\n\n" + menu
}

func (p *PickerScreen) Title() string {
	return "Choose Opening"
}
