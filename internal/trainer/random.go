package trainer

import "strings"

// GenerateRandom draws a fresh test position: a uniform ply index from
// [1, tokenCount-1]. Index 0 is excluded — guessing the first move from an
// empty board tests nothing. On openings shorter than two plies RandomIndex
// stays unset.
func (s *State) GenerateRandom() {
	s.ShowAnswer = false
	s.UserGuess = ""
	s.LastCorrect = false
	if len(s.Tokens) < 2 {
		s.RandomIndex = -1
		return
	}
	s.RandomIndex = 1 + s.Rand(len(s.Tokens)-1)
}

// CheckGuess scores a guess against the move at RandomIndex, with the same
// exact-match rule as the quiz. Ignored until a position is generated.
func (s *State) CheckGuess(text string) {
	if s.RandomIndex < 0 || s.ShowAnswer {
		return
	}
	guess := strings.TrimSpace(text)
	s.UserGuess = guess
	s.Total++
	s.LastCorrect = guess == s.Tokens[s.RandomIndex]
	if s.LastCorrect {
		s.Correct++
	}
	s.ShowAnswer = true
}

// Continuation returns up to three plies starting at the tested move, shown
// after the answer as a preview of how the line carries on.
func (s *State) Continuation() []string {
	if s.RandomIndex < 0 {
		return nil
	}
	end := s.RandomIndex + 3
	if end > len(s.Tokens) {
		end = len(s.Tokens)
	}
	return s.Tokens[s.RandomIndex:end]
}
