// Package board wraps the chess rules engine: it replays a move prefix from
// the initial position and renders the result for the terminal. Replay is
// stateless per call; callers re-derive the position whenever their cursor
// moves.
package board

import (
	"fmt"

	"github.com/notnil/chess"
)

// IllegalMoveError reports a token the rules engine rejected. The repertoire
// is fixed and legal, so this surfaces only as a non-fatal inline message.
type IllegalMoveError struct {
	Token string
	Ply   int // 1-based ply of the rejected token
	Err   error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %q at ply %d: %v", e.Token, e.Ply, e.Err)
}

func (e *IllegalMoveError) Unwrap() error { return e.Err }

// Replay applies the tokens in order from the initial position and returns
// the resulting position. Two calls with the same tokens yield the same
// position.
func Replay(tokens []string) (*chess.Position, error) {
	game := chess.NewGame()
	for i, tok := range tokens {
		if err := game.MoveStr(tok); err != nil {
			return nil, &IllegalMoveError{Token: tok, Ply: i + 1, Err: err}
		}
	}
	return game.Position(), nil
}

// Signature returns the canonical FEN string for a position, shown in the
// technical-details panel.
func Signature(pos *chess.Position) string {
	return pos.String()
}
