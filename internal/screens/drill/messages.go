package drill

// autoAdvanceMsg is the delayed auto-play step. It carries the generation it
// was armed under; any manual action bumps the generation so a tick already
// in flight lands stale and is dropped.
type autoAdvanceMsg struct {
	gen int
}
