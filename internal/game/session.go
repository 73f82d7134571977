package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/solitaire/internal/board"
)

// Renderer draws the board.
type Renderer interface {
	Render(w io.Writer, b *board.Board) error
}

// Result tells how a session ended.
type Result int

const (
	Exited Result = iota
	Victory
	InputClosed
)

func (r Result) String() string {
	switch r {
	case Exited:
		return "exited"
	case Victory:
		return "won"
	case InputClosed:
		return "input closed"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// ErrInput is returned when the command input fails for a reason other
// than reaching its end.
var ErrInput = errors.New("reading input")

// Normalize upper-cases s and collapses every run of whitespace to a single
// space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// LineReader reads normalized command lines of any length.
type LineReader struct {
	r *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line, normalized. It returns io.EOF once the
// input is exhausted; a final line without newline is still returned.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return Normalize(line), nil
		}
		return "", err
	}
	return Normalize(line), nil
}

// Message is the text shown to the player for a rejected command.
func Message(err error) string {
	var illegal *IllegalMoveError
	switch {
	case errors.As(err, &illegal):
		return fmt.Sprintf("[INFO] Invalid move command! (%s)", illegal.Reason)
	case errors.Is(err, ErrIllegalMove):
		return "[INFO] Invalid move command!"
	case errors.Is(err, ErrInvalidCard):
		return "[INFO] Invalid card!"
	case errors.Is(err, ErrInvalidMoveSyntax):
		return "[INFO] Invalid move syntax! Try: move <color> <value> to <stacknumber>"
	default:
		return "[INFO] Invalid command!"
	}
}

// Session runs the turn loop of one game.
type Session struct {
	game     *Game
	in       *LineReader
	out      io.Writer
	renderer Renderer
	prompt   string
}

// NewSession wires a game to its input, output and renderer.
func NewSession(g *Game, in io.Reader, out io.Writer, r Renderer, prompt string) *Session {
	return &Session{
		game:     g,
		in:       NewLineReader(in),
		out:      out,
		renderer: r,
		prompt:   prompt,
	}
}

// Run draws the board and processes commands until the game is won, the
// player exits or the input ends.
func (s *Session) Run() (Result, error) {
	log := s.game.log
	if err := s.renderer.Render(s.out, s.game.board); err != nil {
		return Exited, err
	}

	for turn := 1; ; turn++ {
		fmt.Fprint(s.out, s.prompt)
		line, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			log.Info("input closed", zap.Int("turn", turn))
			return InputClosed, nil
		}
		if err != nil {
			return Exited, fmt.Errorf("%w: %v", ErrInput, err)
		}

		outcome, err := s.game.Handle(line)
		if err != nil {
			log.Debug("command rejected", zap.Int("turn", turn), zap.String("command", line), zap.Error(err))
			fmt.Fprintln(s.out, Message(err))
			continue
		}
		log.Debug("command applied", zap.Int("turn", turn), zap.String("command", line), zap.Stringer("outcome", outcome))

		switch outcome {
		case Quit:
			log.Info("player exited", zap.Int("turn", turn))
			return Exited, nil
		case Changed:
			if err := s.renderer.Render(s.out, s.game.board); err != nil {
				return Exited, err
			}
			if s.game.Won() {
				log.Info("game won", zap.Int("turn", turn))
				fmt.Fprintln(s.out, "Both foundations are complete. You won!")
				return Victory, nil
			}
		}
	}
}
