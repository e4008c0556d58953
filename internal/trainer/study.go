package trainer

import "time"

// Speeds lists the allowed auto-play speeds in seconds per move.
var Speeds = []float64{0.5, 1, 1.5, 2, 3}

// Every manual navigation clears auto-play. Auto-play is a convenience that
// never survives a deliberate user action.

// JumpToStart moves the cursor to the first move.
func (s *State) JumpToStart() {
	s.AutoPlay = false
	s.MoveIndex = 0
}

// StepBack moves one move back, stopping at the first.
func (s *State) StepBack() {
	s.AutoPlay = false
	if s.MoveIndex > 0 {
		s.MoveIndex--
	}
}

// StepForward moves one move forward, stopping at the last.
func (s *State) StepForward() {
	s.AutoPlay = false
	if s.MoveIndex < len(s.Tokens)-1 {
		s.MoveIndex++
	}
}

// JumpToEnd moves the cursor to the final move.
func (s *State) JumpToEnd() {
	s.AutoPlay = false
	s.MoveIndex = len(s.Tokens) - 1
}

// JumpTo moves the cursor to i, clamped into the valid range.
func (s *State) JumpTo(i int) {
	s.AutoPlay = false
	if i < 0 {
		i = 0
	}
	if i > len(s.Tokens)-1 {
		i = len(s.Tokens) - 1
	}
	s.MoveIndex = i
}

// ToggleAutoPlay flips auto-play. Enabling at the final move is a no-op;
// there is nothing left to step through.
func (s *State) ToggleAutoPlay() {
	if s.AutoPlay {
		s.AutoPlay = false
		return
	}
	if s.MoveIndex < len(s.Tokens)-1 {
		s.AutoPlay = true
	}
}

// CycleSpeed advances to the next allowed speed, wrapping around.
func (s *State) CycleSpeed() {
	s.SpeedIdx = (s.SpeedIdx + 1) % len(Speeds)
}

// Speed returns the current seconds-per-move as a duration.
func (s *State) Speed() time.Duration {
	return time.Duration(Speeds[s.SpeedIdx] * float64(time.Second))
}

// AutoAdvance applies one auto-play step and reports whether another should
// be scheduled. Reaching the final move clears auto-play.
func (s *State) AutoAdvance() bool {
	if !s.AutoPlay || s.Mode != ModeStudy {
		return false
	}
	if s.MoveIndex >= len(s.Tokens)-1 {
		s.AutoPlay = false
		return false
	}
	s.MoveIndex++
	if s.MoveIndex >= len(s.Tokens)-1 {
		s.AutoPlay = false
		return false
	}
	return true
}
