package board

import (
	"errors"
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
)

var (
	// ErrDuplicateCard is returned when a deck names a card twice.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrMalformedDeck is returned when a deck does not hold exactly the 26 cards.
	ErrMalformedDeck = errors.New("malformed deck")
)

// CheckDeck verifies that cards holds each of the 26 cards exactly once.
func CheckDeck(cards []card.Card) error {
	if len(cards) != card.Count {
		return fmt.Errorf("%w: %d cards, want %d", ErrMalformedDeck, len(cards), card.Count)
	}
	var seen [card.Count]bool
	for i, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: card %d at position %d", ErrMalformedDeck, int(c), i+1)
		}
		if seen[c] {
			return fmt.Errorf("%w: %s at position %d", ErrDuplicateCard, c, i+1)
		}
		seen[c] = true
	}
	return nil
}

// Seed loads cards onto the draw pile in order, so the last card ends on
// top and is the only one face-up.
func (b *Board) Seed(cards []card.Card) error {
	if err := CheckDeck(cards); err != nil {
		return err
	}
	draw := b.Pile(DrawPile)
	for _, c := range cards {
		draw.AppendDraw(c)
	}
	return nil
}

// Deal moves ten cards from the draw pile onto the tableau in a triangle:
// round r gives one card to each tableau pile from r to 4. Tableau cards
// are all face-up.
func (b *Board) Deal() error {
	draw := b.Pile(DrawPile)
	for round := range TableauPiles {
		for _, id := range TableauPiles[round:] {
			c, err := draw.PopTail()
			if err != nil {
				return fmt.Errorf("dealing to %s: %w", id, err)
			}
			b.Pile(id).Append(c, true)
		}
	}
	return nil
}

// NewGame seeds a fresh board with cards and deals the tableau.
func NewGame(cards []card.Card) (*Board, error) {
	b := New()
	if err := b.Seed(cards); err != nil {
		return nil, err
	}
	if err := b.Deal(); err != nil {
		return nil, err
	}
	return b, nil
}
