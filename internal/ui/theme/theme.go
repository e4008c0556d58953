package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted club-room tones, board front and center
var (
	Primary = lipgloss.Color("#D4A24E") // Brass
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate

	BoardLight = lipgloss.Color("#B58863")
	BoardDark  = lipgloss.Color("#6E4B35")
	PieceWhite = lipgloss.Color("#F5F0E1")
	PieceBlack = lipgloss.Color("#1A1A1A")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	DueBadge = lipgloss.NewStyle().
			Foreground(Error)

	MasteredBadge = lipgloss.NewStyle().
			Foreground(Success)
)

// Containers
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)
