package validator

import (
	"fmt"
	"sort"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/deck"
	"github.com/arcanaland/solitaire/internal/game"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	file  *deck.File
	cards []card.Card
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate collects every problem of the deck file. The error is only set
// when the file cannot be read or decoded at all.
func (v *Validator) Validate() (ValidationResults, error) {
	f, err := deck.Read(v.DeckPath)
	if err != nil {
		return v.Results, fmt.Errorf("error reading %s: %w", v.DeckPath, err)
	}
	v.file = f

	v.validateEntries()
	v.validateMetadata()
	if len(v.Results.Errors) == 0 {
		v.validateOrder()
		v.validateOpening()
	}

	return v.Results, nil
}

// validateEntries checks every card entry, then the deck as a whole
func (v *Validator) validateEntries() {
	seen := make(map[card.Card]int)
	for i, entry := range v.file.Cards {
		c, err := card.ParsePair(entry)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("entry %d: %q is not a card", i+1, entry))
			continue
		}
		if first, ok := seen[c]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("entry %d: %s already given at entry %d", i+1, c, first))
			continue
		}
		seen[c] = i + 1
		v.cards = append(v.cards, c)
	}

	if len(v.file.Cards) != card.Count {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck has %d entries, expected %d", len(v.file.Cards), card.Count))
	}

	var missing []string
	for _, c := range card.All() {
		if _, ok := seen[c]; !ok {
			missing = append(missing, c.String())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("missing cards: %v", missing))
	}
}

// validateMetadata warns about structured decks without a name
func (v *Validator) validateMetadata() {
	if v.file.Format != deck.Plain && v.file.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings, "deck has no name")
	}
}

// validateOrder warns when the deck is not shuffled
func (v *Validator) validateOrder() {
	sorted, reversed := true, true
	for i, c := range v.cards {
		if int(c) != i {
			sorted = false
		}
		if int(c) != card.Count-1-i {
			reversed = false
		}
	}
	if sorted || reversed {
		v.Results.Warnings = append(v.Results.Warnings, "deck is in sorted order")
	}
}

// validateOpening deals the deck and warns about a stuck start
func (v *Validator) validateOpening() {
	b, err := board.NewGame(v.cards)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return
	}
	defer b.Release()

	if !kingInReach(b) {
		v.Results.Warnings = append(v.Results.Warnings,
			"no King is dealt onto the tableau or lies at the draw top")
	}
	if !hasOpeningMove(b) {
		v.Results.Warnings = append(v.Results.Warnings,
			"the opening deal offers no move; play starts with NEXT")
	}
}

func kingInReach(b *board.Board) bool {
	if top, ok := b.Pile(board.DrawPile).Tail(); ok && top.Card.Rank() == card.King {
		return true
	}
	for _, id := range board.TableauPiles {
		for _, e := range b.Pile(id).Entries() {
			if e.Card.Rank() == card.King {
				return true
			}
		}
	}
	return false
}

func hasOpeningMove(b *board.Board) bool {
	for _, c := range card.All() {
		from, _, ok := game.Locate(b, c)
		if !ok {
			continue
		}
		for to := board.DrawPile; to <= board.Foundation2; to++ {
			if to == from {
				continue
			}
			if _, reason := game.CheckMove(b, c, to); reason == game.Legal {
				return true
			}
		}
	}
	return false
}
