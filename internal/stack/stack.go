// Package stack implements the card piles of the board.
//
// Every Stack draws its entries from an Arena shared by the whole board.
// Entries are addressed by stable index and linked in both directions, so
// both ends of a pile are O(1) and a contiguous run can be unlinked from one
// pile and linked onto another without copying. A Run is the unit of
// ownership transfer: once detached it belongs to no pile until attached.
package stack

import (
	"errors"
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
)

var (
	// ErrEmpty is returned when taking a card from an empty stack.
	ErrEmpty = errors.New("stack is empty")
	// ErrOutOfRange is returned when an offset does not address an entry.
	ErrOutOfRange = errors.New("offset out of range")
	// ErrForeignRun is returned when a run is attached to a stack of another arena.
	ErrForeignRun = errors.New("run belongs to another arena")
)

const none = -1

// Entry is a card on a pile together with its face.
type Entry struct {
	Card   card.Card
	FaceUp bool
}

type node struct {
	entry      Entry
	prev, next int
}

// Arena holds the entries of every stack built on it.
type Arena struct {
	nodes []node
	free  []int
}

// NewArena returns an arena sized for one deck.
func NewArena() *Arena {
	return &Arena{nodes: make([]node, 0, card.Count)}
}

func (a *Arena) alloc(e Entry) int {
	n := node{entry: e, prev: none, next: none}
	if l := len(a.free); l > 0 {
		i := a.free[l-1]
		a.free = a.free[:l-1]
		a.nodes[i] = n
		return i
	}
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *Arena) release(i int) {
	a.nodes[i] = node{prev: none, next: none}
	a.free = append(a.free, i)
}

// chain is a head/tail pair of linked entries in an arena.
type chain struct {
	arena      *Arena
	head, tail int
	size       int
}

func (c *chain) entries() []Entry {
	out := make([]Entry, 0, c.size)
	for i := c.head; i != none; i = c.arena.nodes[i].next {
		out = append(out, c.arena.nodes[i].entry)
	}
	return out
}

// Stack is an ordered pile of entries. The head is the bottom card, the
// tail is the top card; piles grow at the tail.
type Stack struct {
	chain
}

// New returns an empty stack backed by a.
func New(a *Arena) *Stack {
	return &Stack{chain{arena: a, head: none, tail: none}}
}

func (s *Stack) Len() int {
	return s.size
}

func (s *Stack) Empty() bool {
	return s.size == 0
}

// Head returns the bottom entry.
func (s *Stack) Head() (Entry, bool) {
	if s.head == none {
		return Entry{}, false
	}
	return s.arena.nodes[s.head].entry, true
}

// Tail returns the top entry.
func (s *Stack) Tail() (Entry, bool) {
	if s.tail == none {
		return Entry{}, false
	}
	return s.arena.nodes[s.tail].entry, true
}

// Entries returns a copy of the pile from head to tail.
func (s *Stack) Entries() []Entry {
	return s.entries()
}

// Append adds c at the tail. The first card of an empty stack is always
// face-up.
func (s *Stack) Append(c card.Card, faceUp bool) {
	if s.size == 0 {
		faceUp = true
	}
	i := s.arena.alloc(Entry{Card: c, FaceUp: faceUp})
	s.linkTail(i)
}

// AppendDraw adds c face-up at the tail and turns the previous tail
// face-down, so that only the newest card of a seeded draw pile is visible.
func (s *Stack) AppendDraw(c card.Card) {
	prev := s.tail
	s.Append(c, true)
	if prev != none {
		s.arena.nodes[prev].entry.FaceUp = false
	}
}

// PopTail removes the top card and turns the card underneath face-up.
func (s *Stack) PopTail() (card.Card, error) {
	if s.tail == none {
		return 0, ErrEmpty
	}
	i := s.tail
	c := s.arena.nodes[i].entry.Card
	s.tail = s.arena.nodes[i].prev
	if s.tail == none {
		s.head = none
	} else {
		s.arena.nodes[s.tail].next = none
		s.arena.nodes[s.tail].entry.FaceUp = true
	}
	s.size--
	s.arena.release(i)
	return c, nil
}

// PushHead inserts c face-down at the bottom. On an empty stack the card
// becomes both head and tail and is face-up.
func (s *Stack) PushHead(c card.Card) {
	i := s.arena.alloc(Entry{Card: c, FaceUp: s.size == 0})
	if s.head == none {
		s.linkTail(i)
		return
	}
	s.arena.nodes[i].next = s.head
	s.arena.nodes[s.head].prev = i
	s.head = i
	s.size++
}

// RotateTopToBottom moves the visible top card to the bottom, face-down,
// and exposes the card beneath it.
func (s *Stack) RotateTopToBottom() error {
	c, err := s.PopTail()
	if err != nil {
		return err
	}
	s.PushHead(c)
	return nil
}

// DetachFrom unlinks the entries from offset index (counted from the head)
// through the tail and returns them as a Run. The remaining prefix has its
// new tail turned face-up.
func (s *Stack) DetachFrom(index int) (*Run, error) {
	if index < 0 || index >= s.size {
		return nil, fmt.Errorf("%w: %d of %d", ErrOutOfRange, index, s.size)
	}
	first := s.head
	for n := 0; n < index; n++ {
		first = s.arena.nodes[first].next
	}

	run := &Run{chain{arena: s.arena, head: first, tail: s.tail, size: s.size - index}}

	newTail := s.arena.nodes[first].prev
	s.arena.nodes[first].prev = none
	s.tail = newTail
	s.size = index
	if newTail == none {
		s.head = none
	} else {
		s.arena.nodes[newTail].next = none
		s.arena.nodes[newTail].entry.FaceUp = true
	}
	return run, nil
}

// Attach links run at the tail, keeping the order and faces of its
// entries. The run is consumed.
func (s *Stack) Attach(run *Run) error {
	if run.arena != s.arena {
		return ErrForeignRun
	}
	if run.size == 0 {
		return nil
	}
	if s.tail == none {
		s.head = run.head
	} else {
		s.arena.nodes[s.tail].next = run.head
		s.arena.nodes[run.head].prev = s.tail
	}
	s.tail = run.tail
	s.size += run.size
	run.head, run.tail, run.size = none, none, 0
	return nil
}

// Clear releases every entry back to the arena.
func (s *Stack) Clear() {
	for i := s.head; i != none; {
		next := s.arena.nodes[i].next
		s.arena.release(i)
		i = next
	}
	s.head, s.tail, s.size = none, none, 0
}

func (s *Stack) linkTail(i int) {
	if s.tail == none {
		s.head = i
	} else {
		s.arena.nodes[s.tail].next = i
		s.arena.nodes[i].prev = s.tail
	}
	s.tail = i
	s.size++
}

// Run is a detached, ordered sequence of entries.
type Run struct {
	chain
}

func (r *Run) Len() int {
	return r.size
}

// Entries returns a copy of the run from its first to its last entry.
func (r *Run) Entries() []Entry {
	return r.entries()
}
