// Package board holds the seven piles of a game and the deal that fills
// them.
package board

import (
	"errors"
	"fmt"

	"github.com/arcanaland/solitaire/internal/stack"
)

// PileCount is the number of piles on the board.
const PileCount = 7

// Kind is the role of a pile, which decides the ordering rule it enforces.
type Kind int

const (
	Draw Kind = iota
	Tableau
	Foundation
)

func (k Kind) String() string {
	switch k {
	case Draw:
		return "draw"
	case Tableau:
		return "tableau"
	case Foundation:
		return "foundation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// PileID addresses a pile. Internally piles are 0-based; players address
// them with Number, which is ID+1.
type PileID int

const (
	DrawPile PileID = iota
	Tableau1
	Tableau2
	Tableau3
	Tableau4
	Foundation1
	Foundation2
)

// TableauPiles and FoundationPiles list the piles of each kind in order.
var (
	TableauPiles    = []PileID{Tableau1, Tableau2, Tableau3, Tableau4}
	FoundationPiles = []PileID{Foundation1, Foundation2}
)

// ErrUnknownPile is returned for pile numbers outside 1..7.
var ErrUnknownPile = errors.New("unknown pile")

// PileFromNumber maps the player-facing number 1..7 to a pile.
func PileFromNumber(n int) (PileID, error) {
	if n < 1 || n > PileCount {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPile, n)
	}
	return PileID(n - 1), nil
}

// Number is the player-facing number of the pile.
func (p PileID) Number() int {
	return int(p) + 1
}

func (p PileID) Valid() bool {
	return p >= DrawPile && p <= Foundation2
}

func (p PileID) Kind() Kind {
	switch {
	case p == DrawPile:
		return Draw
	case p >= Tableau1 && p <= Tableau4:
		return Tableau
	default:
		return Foundation
	}
}

func (p PileID) String() string {
	switch p.Kind() {
	case Draw:
		return "draw pile"
	case Tableau:
		return fmt.Sprintf("tableau %d", int(p-Tableau1)+1)
	default:
		return fmt.Sprintf("foundation %d", int(p-Foundation1)+1)
	}
}

// Board owns every pile of a game and, through its arena, every entry.
type Board struct {
	arena *stack.Arena
	piles [PileCount]*stack.Stack
}

// New returns a board with seven empty piles.
func New() *Board {
	b := &Board{arena: stack.NewArena()}
	for i := range b.piles {
		b.piles[i] = stack.New(b.arena)
	}
	return b
}

// Pile returns the stack for id. It panics on an invalid id.
func (b *Board) Pile(id PileID) *stack.Stack {
	return b.piles[id]
}

// Piles returns the piles in id order.
func (b *Board) Piles() []*stack.Stack {
	return b.piles[:]
}

// CardCount is the number of cards on all piles.
func (b *Board) CardCount() int {
	n := 0
	for _, p := range b.piles {
		n += p.Len()
	}
	return n
}

// Snapshot copies every pile, for comparing board states.
func (b *Board) Snapshot() [PileCount][]stack.Entry {
	var out [PileCount][]stack.Entry
	for i, p := range b.piles {
		out[i] = p.Entries()
	}
	return out
}

// Release empties every pile. The board is unusable afterwards until dealt
// again.
func (b *Board) Release() {
	for _, p := range b.piles {
		p.Clear()
	}
}
