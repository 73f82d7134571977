package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
)

// pile describes one pile for newBoard: cards from bottom to top, the
// first faceDown of them hidden.
type pile struct {
	cards    []string
	faceDown int
}

func mustCard(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.ParsePair(s)
	require.NoError(t, err)
	return c
}

func newBoard(t *testing.T, piles map[board.PileID]pile) *board.Board {
	t.Helper()
	b := board.New()
	for id, p := range piles {
		for i, s := range p.cards {
			if p.faceDown > 0 && i <= p.faceDown {
				b.Pile(id).AppendDraw(mustCard(t, s))
				continue
			}
			b.Pile(id).Append(mustCard(t, s), true)
		}
	}
	return b
}

func topCards(b *board.Board, id board.PileID) []card.Card {
	entries := b.Pile(id).Entries()
	out := make([]card.Card, len(entries))
	for i, e := range entries {
		out[i] = e.Card
	}
	return out
}
