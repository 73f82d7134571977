// Package game plays the two-color patience: it validates and executes
// moves on a board and runs the interactive command loop.
package game

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
)

// Outcome is the result of a command that was accepted.
type Outcome int

const (
	// Unchanged means the command succeeded without touching the board.
	Unchanged Outcome = iota
	// Changed means the board was modified and should be redrawn.
	Changed
	// Quit means the player asked to leave.
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

var (
	// ErrInvalidCommand is returned for an unknown keyword or a wrong number
	// of arguments.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidMoveSyntax is returned for a MOVE without TO or with a bad
	// pile number.
	ErrInvalidMoveSyntax = errors.New("invalid move syntax")
	// ErrInvalidCard is returned when the card of a MOVE cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")
	// ErrIllegalMove is returned when a MOVE breaks the rules.
	ErrIllegalMove = errors.New("illegal move")
)

// IllegalMoveError is an ErrIllegalMove with the reason it was refused.
type IllegalMoveError struct {
	Card   card.Card
	To     board.PileID
	Reason Reason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %s", e.Card, e.To, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

const maxCommandArgs = 5

const helpText = `possible command:
 - move <color> <value> to <stacknumber>
 - help
 - exit
 - next (turn over the draw pile)
stack numbers: 1 draw pile, 2-5 tableau, 6-7 foundation
`

// Game applies commands to a board.
type Game struct {
	board *board.Board
	out   io.Writer
	log   *zap.Logger
}

// New returns a game over b. HELP text goes to out. A nil logger disables
// logging.
func New(b *board.Board, out io.Writer, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{board: b, out: out, log: log}
}

// Board returns the board the game is played on.
func (g *Game) Board() *board.Board {
	return g.board
}

// Won reports whether the game is won.
func (g *Game) Won() bool {
	return Won(g.board)
}

// Handle interprets one normalized command line. Rejected commands return
// an error and leave the board unchanged.
func (g *Game) Handle(line string) (Outcome, error) {
	fields := strings.Fields(strings.ToUpper(line))
	if len(fields) == 0 || len(fields) > maxCommandArgs {
		return Unchanged, ErrInvalidCommand
	}

	switch fields[0] {
	case "MOVE":
		return g.handleMove(fields[1:])
	case "NEXT":
		if len(fields) != 1 {
			return Unchanged, ErrInvalidCommand
		}
		if err := g.Next(); err != nil {
			return Unchanged, err
		}
		return Changed, nil
	case "HELP":
		if len(fields) != 1 {
			return Unchanged, ErrInvalidCommand
		}
		_, err := io.WriteString(g.out, helpText)
		return Unchanged, err
	case "EXIT":
		if len(fields) != 1 {
			return Unchanged, ErrInvalidCommand
		}
		return Quit, nil
	default:
		return Unchanged, ErrInvalidCommand
	}
}

// handleMove parses "<COLOR> <RANK> TO <n>".
func (g *Game) handleMove(args []string) (Outcome, error) {
	if len(args) != 4 || args[2] != "TO" {
		return Unchanged, ErrInvalidMoveSyntax
	}
	n, err := strconv.Atoi(args[3])
	if err != nil {
		return Unchanged, fmt.Errorf("%w: pile %q", ErrInvalidMoveSyntax, args[3])
	}
	to, err := board.PileFromNumber(n)
	if err != nil {
		return Unchanged, fmt.Errorf("%w: %v", ErrInvalidMoveSyntax, err)
	}
	c, err := card.Parse(args[0], args[1])
	if err != nil {
		return Unchanged, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}

	if err := g.Move(c, to); err != nil {
		return Unchanged, err
	}
	return Changed, nil
}

// Move validates and then performs moving c onto pile to.
func (g *Game) Move(c card.Card, to board.PileID) error {
	m, reason := CheckMove(g.board, c, to)
	if reason != Legal {
		g.log.Debug("move refused",
			zap.Stringer("card", c),
			zap.Int("to", to.Number()),
			zap.Stringer("reason", reason))
		return &IllegalMoveError{Card: c, To: to, Reason: reason}
	}
	run := g.board.Pile(m.From).Len() - m.Index
	if err := Execute(g.board, m); err != nil {
		return err
	}
	g.log.Debug("card moved",
		zap.Stringer("card", c),
		zap.Int("from", m.From.Number()),
		zap.Int("to", to.Number()),
		zap.Int("run", run))
	return nil
}

// Next turns over the draw pile.
func (g *Game) Next() error {
	if err := Rotate(g.board); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	g.log.Debug("draw pile rotated")
	return nil
}
