package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
)

func TestInOrder(t *testing.T) {
	tests := []struct {
		name        string
		bottom, top string
		kind        board.Kind
		want        bool
	}{
		{"tableau descending alternating", "BLACK 10", "RED 9", board.Tableau, true},
		{"tableau skip ranks", "RED K", "BLACK 4", board.Tableau, true},
		{"tableau same color", "BLACK 10", "BLACK 9", board.Tableau, false},
		{"tableau equal rank", "BLACK 10", "RED 10", board.Tableau, false},
		{"tableau ascending", "BLACK 9", "RED 10", board.Tableau, false},
		{"foundation next rank", "RED A", "RED 2", board.Foundation, true},
		{"foundation jump", "RED A", "RED 3", board.Foundation, false},
		{"foundation other color", "RED A", "BLACK 2", board.Foundation, false},
		{"foundation descending", "RED 3", "RED 2", board.Foundation, false},
		{"draw pile", "RED A", "RED 2", board.Draw, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InOrder(mustCard(t, tt.bottom), mustCard(t, tt.top), tt.kind))
		})
	}
}

func TestLocateSkipsHiddenCards(t *testing.T) {
	b := newBoard(t, map[board.PileID]pile{
		board.DrawPile: {cards: []string{"RED 5", "BLACK 2"}, faceDown: 1},
		board.Tableau3: {cards: []string{"RED 7", "RED 5"}},
	})

	id, index, ok := Locate(b, mustCard(t, "RED 5"))
	assert.True(t, ok)
	assert.Equal(t, board.Tableau3, id)
	assert.Equal(t, 1, index)

	_, _, ok = Locate(b, mustCard(t, "RED Q"))
	assert.False(t, ok)
}

func TestCheckMove(t *testing.T) {
	layout := map[board.PileID]pile{
		board.DrawPile:    {cards: []string{"RED 4", "BLACK 5", "RED 3"}, faceDown: 2},
		board.Tableau1:    {cards: []string{"BLACK K", "RED Q", "BLACK J"}},
		board.Tableau2:    {cards: []string{"BLACK 10", "RED 9", "BLACK 8"}},
		board.Tableau3:    {cards: []string{"RED 10", "RED 6", "BLACK 7"}},
		board.Foundation1: {cards: []string{"BLACK A"}},
		board.Foundation2: {cards: []string{"RED A", "RED 2"}},
	}

	tests := []struct {
		name   string
		card   string
		to     board.PileID
		reason Reason
	}{
		{"king to empty tableau", "BLACK K", board.Tableau4, Legal},
		{"non-king to empty tableau", "BLACK J", board.Tableau4, NotStartingCard},
		{"tableau onto alternating higher card", "RED 3", board.Tableau2, Legal},
		{"ordered run onto tableau", "RED 9", board.Tableau1, Legal},
		{"ordered run onto empty tableau needs a king", "RED 9", board.Tableau4, NotStartingCard},
		{"foundation next card", "RED 3", board.Foundation2, Legal},
		{"foundation wrong color", "RED 3", board.Foundation1, OutOfOrder},
		{"hidden draw card", "BLACK 5", board.Tableau2, CardNotVisible},
		{"absent card", "RED K", board.Tableau4, CardNotVisible},
		{"out of a foundation", "RED 2", board.Tableau1, FoundationSource},
		{"foundation to itself", "RED 2", board.Foundation2, FoundationSource},
		{"onto the draw pile", "BLACK 8", board.DrawPile, DrawDestination},
		{"draw card to draw pile", "RED 3", board.DrawPile, Legal},
		{"unordered run to its own pile", "RED 6", board.Tableau3, Legal},
		{"unordered run elsewhere", "RED 6", board.Tableau1, RunOutOfOrder},
		{"tableau same color", "BLACK 7", board.Tableau2, OutOfOrder},
		{"multi-card run to foundation", "RED 9", board.Foundation1, RunOutOfOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t, layout)
			before := b.Snapshot()

			_, reason := CheckMove(b, mustCard(t, tt.card), tt.to)
			assert.Equal(t, tt.reason, reason, reason.String())
			assert.Equal(t, before, b.Snapshot(), "validation must not touch the board")
		})
	}
}

func TestCheckMoveReportsSource(t *testing.T) {
	b := newBoard(t, map[board.PileID]pile{
		board.Tableau2: {cards: []string{"RED K", "BLACK Q", "RED J"}},
		board.Tableau4: {cards: []string{"BLACK K"}},
	})

	m, reason := CheckMove(b, mustCard(t, "BLACK Q"), board.Tableau4)
	assert.Equal(t, OutOfOrder, reason)

	m, reason = CheckMove(b, mustCard(t, "RED J"), board.Tableau1)
	assert.Equal(t, NotStartingCard, reason)

	b.Pile(board.Tableau4).Clear()
	m, reason = CheckMove(b, mustCard(t, "RED K"), board.Tableau4)
	assert.Equal(t, Legal, reason)
	assert.Equal(t, Move{Card: mustCard(t, "RED K"), From: board.Tableau2, Index: 0, To: board.Tableau4}, m)
}

func TestWon(t *testing.T) {
	tests := []struct {
		name   string
		first  []string
		second []string
		want   bool
	}{
		{"both kings", []string{"BLACK Q", "BLACK K"}, []string{"RED K"}, true},
		{"kings swapped", []string{"RED K"}, []string{"BLACK K"}, true},
		{"one king", []string{"BLACK K"}, []string{"RED Q"}, false},
		{"one empty", []string{"BLACK K"}, nil, false},
		{"both empty", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t, map[board.PileID]pile{
				board.Foundation1: {cards: tt.first},
				board.Foundation2: {cards: tt.second},
			})
			assert.Equal(t, tt.want, Won(b))
		})
	}

	assert.Equal(t, 49, int(card.New(card.King, card.Black)+card.New(card.King, card.Red)))
}
