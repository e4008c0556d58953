package trainer

import "strings"

// QuizComplete reports whether every move of the opening has been revealed.
// In the terminal state only RestartQuiz applies.
func (s *State) QuizComplete() bool {
	return s.MoveIndex >= len(s.Tokens)-1
}

// ExpectedToken returns the move currently being guessed, or "" when the
// quiz is complete.
func (s *State) ExpectedToken() string {
	if s.QuizComplete() {
		return ""
	}
	return s.Tokens[s.MoveIndex+1]
}

// SubmitGuess scores a guess against the expected move: trimmed,
// case-sensitive, exact. Total always increments; Correct only on a match.
// Ignored while the answer is showing or the quiz is complete.
func (s *State) SubmitGuess(text string) {
	if s.ShowAnswer || s.QuizComplete() {
		return
	}
	guess := strings.TrimSpace(text)
	s.UserGuess = guess
	s.Total++
	s.LastCorrect = guess == s.ExpectedToken()
	if s.LastCorrect {
		s.Correct++
	}
	s.ShowAnswer = true
}

// Reveal shows the answer without scoring a guess.
func (s *State) Reveal() {
	if s.ShowAnswer || s.QuizComplete() {
		return
	}
	s.LastCorrect = false
	s.ShowAnswer = true
}

// AdvanceQuiz confirms the revealed move and moves the cursor past it.
// Only valid while the answer is showing.
func (s *State) AdvanceQuiz() {
	if !s.ShowAnswer || s.QuizComplete() {
		return
	}
	s.MoveIndex++
	s.ShowAnswer = false
	s.UserGuess = ""
}

// RestartQuiz resets the cursor and reveal state. The score is cumulative
// for the session and is deliberately left alone.
func (s *State) RestartQuiz() {
	s.MoveIndex = 0
	s.ShowAnswer = false
	s.UserGuess = ""
	s.LastCorrect = false
}

// QuizAnnotation returns the key idea tagged for the move just revealed, if
// any. The lookup key is the 1-based ply number of that move.
func (s *State) QuizAnnotation() (string, bool) {
	if !s.ShowAnswer {
		return "", false
	}
	return s.Opening.AnnotationForPly(s.MoveIndex + 2)
}
