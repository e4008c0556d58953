// Package trainer is the drill-session state machine. All transitions are
// plain methods on *State; the rendering layer reads the state and derives
// the board elsewhere, so the machine is testable without a UI harness.
package trainer

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/smahajan/openbook/internal/repertoire"
)

// Mode selects which drill the learner is running.
type Mode int

const (
	ModeStudy Mode = iota
	ModeQuiz
	ModeRandomTest
)

func (m Mode) String() string {
	switch m {
	case ModeQuiz:
		return "Quiz"
	case ModeRandomTest:
		return "Random Test"
	default:
		return "Study"
	}
}

// State is the volatile per-session state for one opening. It is never
// persisted; durable effects go through the review scheduler.
type State struct {
	SessionID string
	Opening   repertoire.Opening
	Tokens    []string
	Mode      Mode

	// MoveIndex is the navigation cursor. In Study mode it is the last move
	// shown on the board; in Quiz mode it is the last move already revealed,
	// so the move being guessed is MoveIndex+1.
	MoveIndex int

	// AutoPlay and SpeedIdx drive Study-mode auto stepping.
	AutoPlay bool
	SpeedIdx int

	// Reveal/guess sub-state, shared by Quiz and Random-Test.
	ShowAnswer  bool
	UserGuess   string
	LastCorrect bool

	// Quiz score, cumulative for the session. Survives mode switches and
	// quiz restarts.
	Correct int
	Total   int

	// RandomIndex is the ply under test in Random-Test mode, -1 when unset.
	RandomIndex int

	// Rand draws a uniform int in [0,n). Swappable for tests.
	Rand func(n int) int
}

// New creates session state for an opening, starting in Study mode at the
// first move.
func New(o repertoire.Opening) *State {
	return &State{
		SessionID:   uuid.New().String(),
		Opening:     o,
		Tokens:      o.Tokens(),
		RandomIndex: -1,
		Rand:        rand.IntN,
	}
}

// SetMode switches drills. Mode-specific reveal/guess sub-state resets, the
// cumulative quiz score does not: glancing at Study and back never costs the
// learner their score.
func (s *State) SetMode(m Mode) {
	if m == s.Mode {
		return
	}
	s.Mode = m
	s.AutoPlay = false
	s.ShowAnswer = false
	s.UserGuess = ""
	s.LastCorrect = false
	switch m {
	case ModeQuiz:
		s.MoveIndex = 0
	case ModeRandomTest:
		s.RandomIndex = -1
	}
}

// VisibleTokens returns the move prefix the board should display for the
// current mode and sub-state.
func (s *State) VisibleTokens() []string {
	switch s.Mode {
	case ModeQuiz:
		end := s.MoveIndex + 1
		if s.ShowAnswer && end < len(s.Tokens) {
			end++
		}
		return s.Tokens[:end]
	case ModeRandomTest:
		if s.RandomIndex < 0 {
			return nil
		}
		end := s.RandomIndex
		if s.ShowAnswer {
			end++
		}
		return s.Tokens[:end]
	default:
		return s.Tokens[:s.MoveIndex+1]
	}
}
