package board

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/notnil/chess"

	"github.com/smahajan/openbook/internal/ui/theme"
)

var glyphs = map[chess.PieceType]string{
	chess.King:   "♚",
	chess.Queen:  "♛",
	chess.Rook:   "♜",
	chess.Bishop: "♝",
	chess.Knight: "♞",
	chess.Pawn:   "♟",
}

var edgeLabel = lipgloss.NewStyle().Foreground(theme.TextDim)

// Render draws the position as an 8x8 grid with rank and file labels.
// When flipped is true the board is drawn from Black's point of view.
func Render(pos *chess.Position, flipped bool) string {
	b := pos.Board()
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		rank := 7 - row
		if flipped {
			rank = row
		}
		sb.WriteString(edgeLabel.Render(string(rune('1'+rank))) + " ")
		for col := 0; col < 8; col++ {
			file := col
			if flipped {
				file = 7 - col
			}
			sq := chess.Square(rank*8 + file)

			style := lipgloss.NewStyle().Background(theme.BoardDark)
			if (rank+file)%2 == 1 {
				style = lipgloss.NewStyle().Background(theme.BoardLight)
			}

			cell := "   "
			if p := b.Piece(sq); p != chess.NoPiece {
				if p.Color() == chess.White {
					style = style.Foreground(theme.PieceWhite)
				} else {
					style = style.Foreground(theme.PieceBlack)
				}
				cell = " " + glyphs[p.Type()] + " "
			}
			sb.WriteString(style.Render(cell))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ")
	for col := 0; col < 8; col++ {
		file := col
		if flipped {
			file = 7 - col
		}
		sb.WriteString(edgeLabel.Render(" " + string(rune('a'+file)) + " "))
	}
	return sb.String()
}
