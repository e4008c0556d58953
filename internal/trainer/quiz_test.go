package trainer

import (
	"testing"

	"github.com/smahajan/openbook/internal/repertoire"
)

// fourMoveLine has tokens [e4 e5 Nf3 Nc6].
func fourMoveLine() repertoire.Opening {
	return repertoire.Opening{
		Name:  "White - Short Line",
		Moves: "1.e4 e5 2.Nf3 Nc6",
		KeyIdeas: []string{
			"Move 3. Nf3: Develop and attack e5",
		},
	}
}

func quizState(o repertoire.Opening) *State {
	s := New(o)
	s.SetMode(ModeQuiz)
	return s
}

func TestSubmitGuess_Correct(t *testing.T) {
	s := quizState(fourMoveLine())

	if got := s.ExpectedToken(); got != "e5" {
		t.Fatalf("ExpectedToken = %q, want e5", got)
	}
	s.SubmitGuess("e5")

	if !s.LastCorrect || !s.ShowAnswer {
		t.Errorf("LastCorrect=%v ShowAnswer=%v, want both true", s.LastCorrect, s.ShowAnswer)
	}
	if s.Correct != 1 || s.Total != 1 {
		t.Errorf("score = %d/%d, want 1/1", s.Correct, s.Total)
	}
}

func TestSubmitGuess_TrimsWhitespace(t *testing.T) {
	s := quizState(fourMoveLine())

	s.SubmitGuess("  e5  ")
	if !s.LastCorrect {
		t.Error("padded guess not accepted")
	}
	if s.UserGuess != "e5" {
		t.Errorf("UserGuess = %q, want trimmed", s.UserGuess)
	}
}

func TestSubmitGuess_CaseSensitive(t *testing.T) {
	s := quizState(fourMoveLine())
	advanceAfterGuess(t, s, "e5")

	s.SubmitGuess("nf3")
	if s.LastCorrect {
		t.Error("lowercase nf3 accepted for Nf3")
	}
	if s.Correct != 1 || s.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", s.Correct, s.Total)
	}
}

// advanceAfterGuess submits a guess and confirms the revealed move.
func advanceAfterGuess(t *testing.T, s *State, guess string) {
	t.Helper()
	s.SubmitGuess(guess)
	if !s.ShowAnswer {
		t.Fatalf("answer not showing after guess %q", guess)
	}
	s.AdvanceQuiz()
}

func TestSubmitGuess_IgnoredWhileAnswerShowing(t *testing.T) {
	s := quizState(fourMoveLine())

	s.SubmitGuess("e5")
	s.SubmitGuess("e5")
	if s.Total != 1 {
		t.Errorf("Total = %d after double submit, want 1", s.Total)
	}
}

func TestAdvanceQuiz_RequiresReveal(t *testing.T) {
	s := quizState(fourMoveLine())

	s.AdvanceQuiz()
	if s.MoveIndex != 0 {
		t.Errorf("AdvanceQuiz without reveal moved cursor to %d", s.MoveIndex)
	}
}

func TestReveal_Unscored(t *testing.T) {
	s := quizState(fourMoveLine())

	s.Reveal()
	if !s.ShowAnswer {
		t.Error("Reveal did not show the answer")
	}
	if s.Total != 0 || s.Correct != 0 {
		t.Errorf("score = %d/%d after unscored reveal, want 0/0", s.Correct, s.Total)
	}
}

func TestQuiz_FullPass(t *testing.T) {
	s := quizState(fourMoveLine())

	advanceAfterGuess(t, s, "e5")
	advanceAfterGuess(t, s, "Nf3")
	s.SubmitGuess("Nc6")

	if !s.QuizComplete() {
		// MoveIndex advances past the last guess on confirm.
		s.AdvanceQuiz()
	}
	if !s.QuizComplete() {
		t.Fatalf("quiz not complete at MoveIndex %d of %d tokens", s.MoveIndex, len(s.Tokens))
	}
	if s.Correct != 3 || s.Total != 3 {
		t.Errorf("score = %d/%d, want 3/3", s.Correct, s.Total)
	}
	if s.ExpectedToken() != "" {
		t.Errorf("ExpectedToken = %q at completion, want empty", s.ExpectedToken())
	}
}

func TestRestartQuiz_KeepsScore(t *testing.T) {
	s := quizState(fourMoveLine())
	advanceAfterGuess(t, s, "e5")
	advanceAfterGuess(t, s, "xx")

	s.RestartQuiz()
	if s.MoveIndex != 0 || s.ShowAnswer {
		t.Errorf("restart left MoveIndex=%d ShowAnswer=%v", s.MoveIndex, s.ShowAnswer)
	}
	if s.Correct != 1 || s.Total != 2 {
		t.Errorf("score = %d/%d after restart, want 1/2", s.Correct, s.Total)
	}
}

func TestQuizAnnotation(t *testing.T) {
	s := quizState(fourMoveLine())

	if _, ok := s.QuizAnnotation(); ok {
		t.Error("annotation returned before reveal")
	}

	advanceAfterGuess(t, s, "e5")
	s.SubmitGuess("Nf3")
	idea, ok := s.QuizAnnotation()
	if !ok {
		t.Fatal("no annotation for the Nf3 reveal")
	}
	if idea != "Move 3. Nf3: Develop and attack e5" {
		t.Errorf("annotation = %q", idea)
	}
}

func TestVisibleTokens_QuizHidesUnrevealedMoves(t *testing.T) {
	s := quizState(fourMoveLine())

	if got := s.VisibleTokens(); len(got) != 1 {
		t.Errorf("VisibleTokens = %v, want only the first ply", got)
	}

	s.SubmitGuess("e5")
	if got := s.VisibleTokens(); len(got) != 2 {
		t.Errorf("VisibleTokens with answer showing = %v, want 2 plies", got)
	}
}
