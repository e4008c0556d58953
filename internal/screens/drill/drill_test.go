package drill

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/smahajan/openbook/internal/progress"
	"github.com/smahajan/openbook/internal/repertoire"
	"github.com/smahajan/openbook/internal/review"
	"github.com/smahajan/openbook/internal/trainer"
)

func testDrill(t *testing.T) *DrillScreen {
	t.Helper()
	o, ok := repertoire.Get("White - Italian Game")
	if !ok {
		t.Fatal("Italian Game not in repertoire")
	}
	sched, err := review.NewScheduler(progress.NewMemStore())
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	return New(o, sched)
}

func press(d *DrillScreen, r rune) tea.Cmd {
	_, cmd := d.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	return cmd
}

func TestNew_StartsInStudyMode(t *testing.T) {
	d := testDrill(t)

	if d.state.Mode != trainer.ModeStudy {
		t.Errorf("Mode = %v, want Study", d.state.Mode)
	}
	if d.Title() != "Italian Game" {
		t.Errorf("Title = %q, want Italian Game", d.Title())
	}
}

func TestModeSwitchKeepsScore(t *testing.T) {
	d := testDrill(t)
	d.state.Correct, d.state.Total = 2, 4

	press(d, '2')
	if d.state.Mode != trainer.ModeQuiz {
		t.Fatalf("Mode = %v after '2', want Quiz", d.state.Mode)
	}
	press(d, '1')
	if d.state.Mode != trainer.ModeStudy {
		t.Fatalf("Mode = %v after '1', want Study", d.state.Mode)
	}
	if d.state.Correct != 2 || d.state.Total != 4 {
		t.Errorf("score = %d/%d after mode switches, want 2/4", d.state.Correct, d.state.Total)
	}
}

func TestRandomModeDrawsPositionOnEntry(t *testing.T) {
	d := testDrill(t)

	press(d, '3')
	if d.state.Mode != trainer.ModeRandomTest {
		t.Fatalf("Mode = %v after '3', want Random Test", d.state.Mode)
	}
	if d.state.RandomIndex < 1 {
		t.Errorf("RandomIndex = %d on entry, want a drawn position", d.state.RandomIndex)
	}
}

func TestStudyNavigationKeys(t *testing.T) {
	d := testDrill(t)

	d.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	d.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if d.state.MoveIndex != 2 {
		t.Errorf("MoveIndex = %d after two right arrows, want 2", d.state.MoveIndex)
	}

	d.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if d.state.MoveIndex != 1 {
		t.Errorf("MoveIndex = %d after left arrow, want 1", d.state.MoveIndex)
	}

	press(d, 'G')
	if d.state.MoveIndex != len(d.state.Tokens)-1 {
		t.Errorf("MoveIndex = %d after G, want final ply", d.state.MoveIndex)
	}
	press(d, 'g')
	if d.state.MoveIndex != 0 {
		t.Errorf("MoveIndex = %d after g, want 0", d.state.MoveIndex)
	}
}

func TestAutoplayTickAdvances(t *testing.T) {
	d := testDrill(t)

	cmd := press(d, ' ')
	if !d.state.AutoPlay {
		t.Fatal("space did not enable auto-play")
	}
	if cmd == nil {
		t.Fatal("enabling auto-play did not arm a tick")
	}

	d.Update(autoAdvanceMsg{gen: d.autoplayGen})
	if d.state.MoveIndex != 1 {
		t.Errorf("MoveIndex = %d after tick, want 1", d.state.MoveIndex)
	}
}

func TestStaleAutoplayTickIgnored(t *testing.T) {
	d := testDrill(t)

	press(d, ' ')
	staleGen := d.autoplayGen

	// Manual navigation invalidates the tick already in flight.
	d.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if d.state.AutoPlay {
		t.Fatal("manual navigation left auto-play on")
	}

	d.Update(autoAdvanceMsg{gen: staleGen})
	if d.state.MoveIndex != 1 {
		t.Errorf("MoveIndex = %d, stale tick should not advance past 1", d.state.MoveIndex)
	}
}

func TestQuizTypedGuessFlow(t *testing.T) {
	d := testDrill(t)
	press(d, '2')

	if !d.inputActive() {
		t.Fatal("guess input not active at quiz start")
	}

	// Digit keys go to the input while a guess is being typed, so "1" must
	// not switch modes here.
	press(d, '1')
	if d.state.Mode != trainer.ModeQuiz {
		t.Fatal("digit key switched modes while typing a guess")
	}

	for _, r := range "e5" {
		press(d, r)
	}
	d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !d.state.ShowAnswer {
		t.Fatal("enter did not submit the guess")
	}
	if d.state.Total != 1 {
		t.Errorf("Total = %d after submit, want 1", d.state.Total)
	}
}

func TestQuizRevealUnscored(t *testing.T) {
	d := testDrill(t)
	press(d, '2')

	d.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !d.state.ShowAnswer {
		t.Fatal("tab did not reveal the answer")
	}
	if d.state.Total != 0 {
		t.Errorf("Total = %d after reveal, want 0", d.state.Total)
	}
}

func TestQuizCompletionRecordsReview(t *testing.T) {
	store := progress.NewMemStore()
	sched, err := review.NewScheduler(store)
	if err != nil {
		t.Fatal(err)
	}
	o := repertoire.Opening{Name: "White - Tiny Line", Moves: "1.e4 e5"}
	d := New(o, sched)
	press(d, '2')

	d.Update(tea.KeyPressMsg{Code: tea.KeyTab})   // reveal e5
	d.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // confirm, completing the line

	if !d.state.QuizComplete() {
		t.Fatal("quiz not complete")
	}
	rec := store.Records["White - Tiny Line"]
	if rec == nil || rec.ReviewCount != 1 {
		t.Fatalf("completion did not record a review: %+v", rec)
	}

	// A second completion of the same pass must not double-count.
	d.recordQuizReview()
	if store.Records["White - Tiny Line"].ReviewCount != 1 {
		t.Error("review recorded twice for one completion")
	}
}

func TestToggleMasteredPersists(t *testing.T) {
	store := progress.NewMemStore()
	sched, err := review.NewScheduler(store)
	if err != nil {
		t.Fatal(err)
	}
	o, _ := repertoire.Get("Black - King's Indian")
	d := New(o, sched)

	press(d, 'm')
	rec := store.Records["Black - King's Indian"]
	if rec == nil || !rec.Mastered {
		t.Fatalf("m did not persist mastered: %+v", rec)
	}
	if !strings.Contains(d.notice, "mastered") {
		t.Errorf("notice = %q", d.notice)
	}

	press(d, 'm')
	if store.Records["Black - King's Indian"].Mastered {
		t.Error("second m did not clear mastered")
	}
}

func TestViewRendersBoardAndTabs(t *testing.T) {
	d := testDrill(t)

	out := d.View(100, 40)
	if !strings.Contains(out, "Study") || !strings.Contains(out, "Quiz") {
		t.Error("view missing mode tabs")
	}
	if !strings.Contains(out, "♟") {
		t.Error("view missing board pieces")
	}
	if !strings.Contains(out, "Move 1 of 25") {
		t.Error("view missing move progress")
	}
}
