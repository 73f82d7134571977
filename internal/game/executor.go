package game

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/board"
)

// Execute relocates the run described by m. m must come from a CheckMove
// that returned Legal on the same board state. A move onto its own pile
// leaves the board untouched.
func Execute(b *board.Board, m Move) error {
	if m.From == m.To {
		return nil
	}
	run, err := b.Pile(m.From).DetachFrom(m.Index)
	if err != nil {
		return fmt.Errorf("moving %s from %s: %w", m.Card, m.From, err)
	}
	if err := b.Pile(m.To).Attach(run); err != nil {
		return fmt.Errorf("moving %s to %s: %w", m.Card, m.To, err)
	}
	return nil
}

// Rotate turns over the draw pile: the visible top card goes face-down to
// the bottom and the card beneath it is revealed.
func Rotate(b *board.Board) error {
	return b.Pile(board.DrawPile).RotateTopToBottom()
}
