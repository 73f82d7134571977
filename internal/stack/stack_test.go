package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/solitaire/internal/card"
)

func cardsOf(entries []Entry) []card.Card {
	out := make([]card.Card, len(entries))
	for i, e := range entries {
		out[i] = e.Card
	}
	return out
}

func facesOf(entries []Entry) []bool {
	out := make([]bool, len(entries))
	for i, e := range entries {
		out[i] = e.FaceUp
	}
	return out
}

func TestAppend(t *testing.T) {
	s := New(NewArena())

	_, ok := s.Head()
	assert.False(t, ok)
	_, ok = s.Tail()
	assert.False(t, ok)

	s.Append(3, false)
	s.Append(4, false)
	s.Append(5, true)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []card.Card{3, 4, 5}, cardsOf(s.Entries()))
	assert.Equal(t, []bool{true, false, true}, facesOf(s.Entries()), "first card of an empty stack is face-up")

	head, _ := s.Head()
	tail, _ := s.Tail()
	assert.Equal(t, card.Card(3), head.Card)
	assert.Equal(t, card.Card(5), tail.Card)
}

func TestAppendDrawLeavesOnlyTailVisible(t *testing.T) {
	s := New(NewArena())
	for c := card.Card(0); c < 5; c++ {
		s.AppendDraw(c)
	}

	assert.Equal(t, []bool{false, false, false, false, true}, facesOf(s.Entries()))
}

func TestPopTail(t *testing.T) {
	s := New(NewArena())
	s.AppendDraw(1)
	s.AppendDraw(2)

	c, err := s.PopTail()
	require.NoError(t, err)
	assert.Equal(t, card.Card(2), c)

	tail, ok := s.Tail()
	require.True(t, ok)
	assert.True(t, tail.FaceUp, "card underneath is revealed")

	_, err = s.PopTail()
	require.NoError(t, err)
	assert.True(t, s.Empty())
	_, ok = s.Head()
	assert.False(t, ok)

	_, err = s.PopTail()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestPushHead(t *testing.T) {
	s := New(NewArena())
	s.PushHead(7)
	assert.Equal(t, []bool{true}, facesOf(s.Entries()))

	s.PushHead(8)
	assert.Equal(t, []card.Card{8, 7}, cardsOf(s.Entries()))
	assert.Equal(t, []bool{false, true}, facesOf(s.Entries()))
}

func TestRotateTopToBottom(t *testing.T) {
	s := New(NewArena())
	for _, c := range []card.Card{10, 11, 12} {
		s.AppendDraw(c)
	}

	require.NoError(t, s.RotateTopToBottom())
	assert.Equal(t, []card.Card{12, 10, 11}, cardsOf(s.Entries()))
	assert.Equal(t, []bool{false, false, true}, facesOf(s.Entries()))

	for i := 0; i < 2; i++ {
		require.NoError(t, s.RotateTopToBottom())
	}
	assert.Equal(t, []card.Card{10, 11, 12}, cardsOf(s.Entries()), "full cycle restores order")

	single := New(NewArena())
	single.Append(1, true)
	require.NoError(t, single.RotateTopToBottom())
	assert.Equal(t, []bool{true}, facesOf(single.Entries()))

	assert.ErrorIs(t, New(NewArena()).RotateTopToBottom(), ErrEmpty)
}

func TestDetachFrom(t *testing.T) {
	arena := NewArena()
	s := New(arena)
	s.Append(20, true)
	s.Append(21, false)
	s.Append(14, true)
	s.Append(9, true)

	run, err := s.DetachFrom(2)
	require.NoError(t, err)

	assert.Equal(t, 2, run.Len())
	assert.Equal(t, []card.Card{14, 9}, cardsOf(run.Entries()))
	assert.Equal(t, []card.Card{20, 21}, cardsOf(s.Entries()))
	tail, _ := s.Tail()
	assert.True(t, tail.FaceUp, "uncovered card is revealed")

	whole, err := s.DetachFrom(0)
	require.NoError(t, err)
	assert.Equal(t, 2, whole.Len())
	assert.True(t, s.Empty())
	_, ok := s.Head()
	assert.False(t, ok)

	_, err = s.DetachFrom(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = New(arena).DetachFrom(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAttach(t *testing.T) {
	arena := NewArena()
	src := New(arena)
	dst := New(arena)
	for _, c := range []card.Card{24, 23, 20} {
		src.Append(c, true)
	}
	dst.Append(2, true)
	dst.Append(3, false)

	run, err := src.DetachFrom(1)
	require.NoError(t, err)
	require.NoError(t, dst.Attach(run))

	assert.Equal(t, []card.Card{2, 3, 23, 20}, cardsOf(dst.Entries()))
	assert.Equal(t, []bool{true, false, true, true}, facesOf(dst.Entries()), "faces are carried over unchanged")
	assert.Equal(t, 0, run.Len(), "run is consumed")

	empty := New(arena)
	run, err = dst.DetachFrom(0)
	require.NoError(t, err)
	require.NoError(t, empty.Attach(run))
	head, _ := empty.Head()
	assert.Equal(t, card.Card(2), head.Card)
	assert.Equal(t, 4, empty.Len())

	assert.ErrorIs(t, New(NewArena()).Attach(&Run{chain{arena: arena, head: none, tail: none}}), ErrForeignRun)
}

func TestDetachThenAttachSamePile(t *testing.T) {
	s := New(NewArena())
	for _, c := range []card.Card{5, 6, 7} {
		s.Append(c, true)
	}
	before := s.Entries()

	run, err := s.DetachFrom(1)
	require.NoError(t, err)
	require.NoError(t, s.Attach(run))

	assert.Equal(t, before, s.Entries())
}

func TestClearReusesArenaSlots(t *testing.T) {
	arena := NewArena()
	s := New(arena)
	for c := card.Card(0); c < 4; c++ {
		s.Append(c, true)
	}
	s.Clear()
	assert.True(t, s.Empty())

	s.Append(9, true)
	assert.Len(t, arena.nodes, 4, "released slots are reused")
}
