package game

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
)

// Reason explains why a move was refused. Legal means it was not.
type Reason int

const (
	Legal Reason = iota
	CardNotVisible
	FoundationSource
	DrawDestination
	RunOutOfOrder
	NotStartingCard
	OutOfOrder
)

func (r Reason) String() string {
	switch r {
	case Legal:
		return "legal"
	case CardNotVisible:
		return "card is not face-up on the board"
	case FoundationSource:
		return "cards cannot leave a foundation pile"
	case DrawDestination:
		return "cards cannot be placed on the draw pile"
	case RunOutOfOrder:
		return "cards on top of it are out of order for that pile"
	case NotStartingCard:
		return "an empty tableau pile takes a King, an empty foundation pile an Ace"
	case OutOfOrder:
		return "card does not fit on that pile"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Move is a validated relocation: the run starting at offset Index of pile
// From goes onto pile To.
type Move struct {
	Card  card.Card
	From  board.PileID
	Index int
	To    board.PileID
}

// InOrder reports whether top may lie directly on bottom in a pile of the
// given kind. Tableau piles descend in alternating colors; foundation piles
// ascend by one in a single color. Nothing is ordered on the draw pile.
func InOrder(bottom, top card.Card, kind board.Kind) bool {
	switch kind {
	case board.Tableau:
		return bottom.Color() != top.Color() && bottom.Rank() > top.Rank()
	case board.Foundation:
		return bottom.Color() == top.Color() && top.Rank() == bottom.Rank()+1
	default:
		return false
	}
}

// Locate finds the first face-up entry holding c, scanning piles in order
// and each pile from head to tail.
func Locate(b *board.Board, c card.Card) (board.PileID, int, bool) {
	for i, pile := range b.Piles() {
		for j, e := range pile.Entries() {
			if e.Card == c && e.FaceUp {
				return board.PileID(i), j, true
			}
		}
	}
	return 0, 0, false
}

// CheckMove decides whether c may be moved onto pile to. On success the
// returned Move carries the source position to hand to Execute.
func CheckMove(b *board.Board, c card.Card, to board.PileID) (Move, Reason) {
	from, index, ok := Locate(b, c)
	if !ok {
		return Move{}, CardNotVisible
	}
	m := Move{Card: c, From: from, Index: index, To: to}

	if from.Kind() == board.Foundation {
		return m, FoundationSource
	}
	if from == to {
		return m, Legal
	}

	kind := to.Kind()
	if kind == board.Draw {
		return m, DrawDestination
	}

	run := b.Pile(from).Entries()[index:]
	for i := 1; i < len(run); i++ {
		if !InOrder(run[i-1].Card, run[i].Card, kind) {
			return m, RunOutOfOrder
		}
	}

	tail, ok := b.Pile(to).Tail()
	if !ok {
		if startsPile(c, kind) {
			return m, Legal
		}
		return m, NotStartingCard
	}
	if !InOrder(tail.Card, c, kind) {
		return m, OutOfOrder
	}
	return m, Legal
}

func startsPile(c card.Card, kind board.Kind) bool {
	switch kind {
	case board.Tableau:
		return c.Rank() == card.King
	case board.Foundation:
		return c.Rank() == card.Ace
	default:
		return false
	}
}

// Won reports whether both foundation piles are topped by a King. The two
// King identifiers sum to 49.
func Won(b *board.Board) bool {
	first, ok := b.Pile(board.Foundation1).Tail()
	if !ok {
		return false
	}
	second, ok := b.Pile(board.Foundation2).Tail()
	if !ok {
		return false
	}
	return int(first.Card)+int(second.Card) == int(card.New(card.King, card.Black))+int(card.New(card.King, card.Red))
}
