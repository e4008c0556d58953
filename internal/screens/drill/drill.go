package drill

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/smahajan/openbook/internal/repertoire"
	"github.com/smahajan/openbook/internal/review"
	"github.com/smahajan/openbook/internal/screen"
	"github.com/smahajan/openbook/internal/trainer"
	"github.com/smahajan/openbook/internal/ui/components"
	"github.com/smahajan/openbook/internal/ui/layout"
)

// DrillScreen hosts one trainer session for one opening, across the three
// drill modes.
type DrillScreen struct {
	state *trainer.State
	sched *review.Scheduler
	input components.MoveInput

	// autoplayGen invalidates in-flight auto-play ticks on manual actions.
	autoplayGen int

	showIdeas bool
	showFEN   bool
	notice    string

	// reviewRecorded guards the once-per-completion review stamp.
	reviewRecorded bool
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill screen for the opening.
func New(o repertoire.Opening, sched *review.Scheduler) *DrillScreen {
	return &DrillScreen{
		state: trainer.New(o),
		sched: sched,
		input: components.NewMoveInput(),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	return d.input.Init()
}

func (d *DrillScreen) Title() string {
	return d.state.Opening.ShortName()
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		if msg.gen != d.autoplayGen {
			return d, nil
		}
		if d.state.AutoAdvance() {
			return d, d.autoplayCmd()
		}
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.inputActive() {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

// inputActive reports whether the move-guess input should receive keys.
func (d *DrillScreen) inputActive() bool {
	switch d.state.Mode {
	case trainer.ModeQuiz:
		return !d.state.ShowAnswer && !d.state.QuizComplete()
	case trainer.ModeRandomTest:
		return d.state.RandomIndex >= 0 && !d.state.ShowAnswer
	}
	return false
}

// invalidateAutoplay drops any pending auto-play tick.
func (d *DrillScreen) invalidateAutoplay() {
	d.autoplayGen++
}

func (d *DrillScreen) autoplayCmd() tea.Cmd {
	gen := d.autoplayGen
	return tea.Tick(d.state.Speed(), func(time.Time) tea.Msg {
		return autoAdvanceMsg{gen: gen}
	})
}

func (d *DrillScreen) setMode(m trainer.Mode) {
	d.invalidateAutoplay()
	d.state.SetMode(m)
	d.notice = ""
	d.reviewRecorded = false
	if m == trainer.ModeRandomTest {
		d.state.GenerateRandom()
	}
	d.input.Reset()
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// While typing a guess only non-text keys are handled here; everything
	// else goes to the input.
	if d.inputActive() {
		switch key {
		case "enter":
			return d.submitGuess()
		case "tab":
			if d.state.Mode == trainer.ModeQuiz {
				d.state.Reveal()
				d.input.Submit(false)
			}
			return d, nil
		default:
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd
		}
	}

	switch key {
	case "1":
		d.setMode(trainer.ModeStudy)
		return d, nil
	case "2":
		d.setMode(trainer.ModeQuiz)
		return d, nil
	case "3":
		d.setMode(trainer.ModeRandomTest)
		return d, d.input.Init()
	case "i":
		d.showIdeas = !d.showIdeas
		return d, nil
	case "f":
		d.showFEN = !d.showFEN
		return d, nil
	case "m":
		d.toggleMastered()
		return d, nil
	case "r":
		d.markReviewed()
		return d, nil
	}

	switch d.state.Mode {
	case trainer.ModeStudy:
		return d.handleStudyKey(key)
	case trainer.ModeQuiz:
		return d.handleQuizKey(key)
	case trainer.ModeRandomTest:
		return d.handleRandomKey(key)
	}
	return d, nil
}

func (d *DrillScreen) handleStudyKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "left", "h":
		d.invalidateAutoplay()
		d.state.StepBack()
	case "right", "l":
		d.invalidateAutoplay()
		d.state.StepForward()
	case "home", "g":
		d.invalidateAutoplay()
		d.state.JumpToStart()
	case "end", "G":
		d.invalidateAutoplay()
		d.state.JumpToEnd()
	case "[":
		d.invalidateAutoplay()
		d.state.JumpTo(d.state.MoveIndex - 5)
	case "]":
		d.invalidateAutoplay()
		d.state.JumpTo(d.state.MoveIndex + 5)
	case " ", "space":
		d.invalidateAutoplay()
		d.state.ToggleAutoPlay()
		if d.state.AutoPlay {
			return d, d.autoplayCmd()
		}
	case "s":
		d.state.CycleSpeed()
	}
	return d, nil
}

func (d *DrillScreen) handleQuizKey(key string) (screen.Screen, tea.Cmd) {
	if d.state.QuizComplete() {
		switch key {
		case "enter", "R":
			d.state.RestartQuiz()
			d.reviewRecorded = false
			d.input.Reset()
			return d, d.input.Init()
		}
		return d, nil
	}

	// Answer showing: confirm and move on.
	switch key {
	case "enter", "n":
		d.state.AdvanceQuiz()
		d.input.Reset()
		if d.state.QuizComplete() {
			d.recordQuizReview()
			return d, nil
		}
		return d, d.input.Init()
	case "R":
		d.state.RestartQuiz()
		d.reviewRecorded = false
		d.input.Reset()
		return d, d.input.Init()
	}
	return d, nil
}

func (d *DrillScreen) handleRandomKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter", "n":
		d.state.GenerateRandom()
		d.input.Reset()
		return d, d.input.Init()
	}
	return d, nil
}

func (d *DrillScreen) submitGuess() (screen.Screen, tea.Cmd) {
	switch d.state.Mode {
	case trainer.ModeQuiz:
		d.state.SubmitGuess(d.input.Value())
	case trainer.ModeRandomTest:
		d.state.CheckGuess(d.input.Value())
	default:
		return d, nil
	}
	d.input.Submit(d.state.LastCorrect)
	return d, nil
}

// recordQuizReview stamps a review when a full quiz pass finishes, once.
func (d *DrillScreen) recordQuizReview() {
	if d.reviewRecorded {
		return
	}
	if err := d.sched.RecordReview(d.state.Opening.Name, time.Now()); err != nil {
		d.notice = "Could not save progress: " + err.Error()
		return
	}
	d.reviewRecorded = true
	d.notice = "Quiz complete, review recorded"
}

func (d *DrillScreen) markReviewed() {
	if err := d.sched.RecordReview(d.state.Opening.Name, time.Now()); err != nil {
		d.notice = "Could not save progress: " + err.Error()
		return
	}
	d.notice = "Review recorded"
}

func (d *DrillScreen) toggleMastered() {
	if err := d.sched.ToggleMastered(d.state.Opening.Name); err != nil {
		d.notice = "Could not save progress: " + err.Error()
		return
	}
	if d.sched.Record(d.state.Opening.Name).Mastered {
		d.notice = "Marked mastered, no more review prompts"
	} else {
		d.notice = "Back to learning"
	}
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	common := []layout.KeyHint{{Key: "1/2/3", Description: "Mode"}}
	switch d.state.Mode {
	case trainer.ModeQuiz:
		if d.inputActive() {
			return append(common,
				layout.KeyHint{Key: "Enter", Description: "Check"},
				layout.KeyHint{Key: "Tab", Description: "Reveal"},
				layout.KeyHint{Key: "Esc", Description: "Back"},
			)
		}
		if d.state.QuizComplete() {
			return append(common,
				layout.KeyHint{Key: "Enter", Description: "Restart"},
				layout.KeyHint{Key: "m", Description: "Mastered"},
				layout.KeyHint{Key: "Esc", Description: "Back"},
			)
		}
		return append(common,
			layout.KeyHint{Key: "Enter", Description: "Next move"},
			layout.KeyHint{Key: "R", Description: "Restart"},
			layout.KeyHint{Key: "Esc", Description: "Back"},
		)
	case trainer.ModeRandomTest:
		if d.inputActive() {
			return append(common,
				layout.KeyHint{Key: "Enter", Description: "Check"},
				layout.KeyHint{Key: "Esc", Description: "Back"},
			)
		}
		return append(common,
			layout.KeyHint{Key: "Enter", Description: "New position"},
			layout.KeyHint{Key: "Esc", Description: "Back"},
		)
	default:
		return append(common,
			layout.KeyHint{Key: "←→", Description: "Step"},
			layout.KeyHint{Key: "g/G", Description: "Start/End"},
			layout.KeyHint{Key: "Space", Description: "Auto-play"},
			layout.KeyHint{Key: "s", Description: "Speed"},
			layout.KeyHint{Key: "i", Description: "Ideas"},
			layout.KeyHint{Key: "r/m", Description: "Reviewed/Mastered"},
		)
	}
}
