package card

import (
	"errors"
	"fmt"
	"strings"
)

// Count is the number of distinct cards in a deck: 13 ranks in 2 colors.
const Count = 26

// ErrUnknownCard is returned when a color or rank token does not name a card.
var ErrUnknownCard = errors.New("unknown card")

// Color is the color of a card. There are no suits.
type Color int

const (
	Black Color = iota
	Red
)

// Rank runs from Ace (0) to King (12).
type Rank int

const (
	Ace   Rank = 0
	Jack  Rank = 10
	Queen Rank = 11
	King  Rank = 12
)

var rankTokens = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

var colorTokens = []string{"BLACK", "RED"}

// Card is a card identifier in [0, Count). rank = id/2, color = id%2.
type Card int

// New builds the card with the given rank and color.
func New(r Rank, c Color) Card {
	return Card(int(r)*2 + int(c))
}

func (c Card) Rank() Rank {
	return Rank(int(c) / 2)
}

func (c Card) Color() Color {
	return Color(int(c) % 2)
}

// Valid reports whether c is one of the 26 card identifiers.
func (c Card) Valid() bool {
	return c >= 0 && c < Count
}

// String returns the command form of the card, e.g. "RED 10".
func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Card(%d)", int(c))
	}
	return c.Color().String() + " " + c.Rank().String()
}

// Short returns the board form of the card, e.g. "R10" or "BA".
func (c Card) Short() string {
	if !c.Valid() {
		return "?"
	}
	return c.Color().String()[:1] + c.Rank().String()
}

func (c Color) String() string {
	if c < Black || c > Red {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorTokens[c]
}

func (r Rank) String() string {
	if r < Ace || r > King {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankTokens[r]
}

// ParseColor parses BLACK or RED, case-insensitively.
func ParseColor(s string) (Color, error) {
	for i, tok := range colorTokens {
		if strings.EqualFold(s, tok) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: color %q", ErrUnknownCard, s)
}

// ParseRank parses A, 2..10, J, Q or K, case-insensitively.
func ParseRank(s string) (Rank, error) {
	for i, tok := range rankTokens {
		if strings.EqualFold(s, tok) {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: rank %q", ErrUnknownCard, s)
}

// Parse turns a color token and a rank token into a card.
func Parse(color, rank string) (Card, error) {
	c, err := ParseColor(color)
	if err != nil {
		return 0, err
	}
	r, err := ParseRank(rank)
	if err != nil {
		return 0, err
	}
	return New(r, c), nil
}

// ParsePair parses a single "<COLOR> <RANK>" string such as "red q".
func ParsePair(s string) (Card, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCard, s)
	}
	return Parse(fields[0], fields[1])
}

// All returns every card in identifier order.
func All() []Card {
	cards := make([]Card, Count)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}
