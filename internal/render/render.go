// Package render draws the board as text, one column per pile.
package render

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/stack"
)

const (
	cellWidth    = 3
	hiddenMarker = "X"
)

// Theme holds optional hex colors (e.g. "#d03030") for the card faces. An
// empty field keeps the default terminal color.
type Theme struct {
	Red    string
	Black  string
	Hidden string
}

type paint func(string) string

// Renderer prints boards. The zero value is not usable; call New.
type Renderer struct {
	red, black, hidden, header paint
}

// New returns a renderer. With color false, output is plain text and the
// theme is ignored.
func New(color bool, theme Theme) (*Renderer, error) {
	if !color {
		plain := func(s string) string { return s }
		return &Renderer{red: plain, black: plain, hidden: plain, header: plain}, nil
	}

	r := &Renderer{header: fatihPaint(colorize.FgCyan)}
	var err error
	if r.red, err = themePaint(theme.Red, colorize.FgRed); err != nil {
		return nil, fmt.Errorf("theme red: %w", err)
	}
	if r.black, err = themePaint(theme.Black, colorize.FgHiWhite); err != nil {
		return nil, fmt.Errorf("theme black: %w", err)
	}
	if r.hidden, err = themePaint(theme.Hidden, colorize.Faint); err != nil {
		return nil, fmt.Errorf("theme hidden: %w", err)
	}
	return r, nil
}

func fatihPaint(attr colorize.Attribute) paint {
	c := colorize.New(attr)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}

// themePaint uses a 24-bit color when hex is set and falls back to attr.
func themePaint(hex string, attr colorize.Attribute) (paint, error) {
	if hex == "" {
		return fatihPaint(attr), nil
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}
	r, g, b := col.RGB255()
	prefix := fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	return func(s string) string { return prefix + s + "\x1b[0m" }, nil
}

// Render writes the header and one row per card depth.
func (r *Renderer) Render(w io.Writer, b *board.Board) error {
	var sb strings.Builder

	headers := make([]string, board.PileCount)
	for i := range headers {
		headers[i] = r.header(pad(fmt.Sprint(board.PileID(i).Number())))
	}
	sb.WriteString(strings.Join(headers, " | "))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", board.PileCount*(cellWidth+3)-3))
	sb.WriteString("\n")

	columns := make([][]stack.Entry, board.PileCount)
	depth := 0
	for i, p := range b.Piles() {
		columns[i] = p.Entries()
		if len(columns[i]) > depth {
			depth = len(columns[i])
		}
	}

	for row := 0; row < depth; row++ {
		cells := make([]string, board.PileCount)
		for col, entries := range columns {
			if row < len(entries) {
				cells[col] = r.cell(entries[row])
			} else {
				cells[col] = pad("")
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, " | "), " "))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Renderer) cell(e stack.Entry) string {
	if !e.FaceUp {
		return r.hidden(pad(hiddenMarker))
	}
	text := pad(e.Card.Short())
	if e.Card.Color() == card.Red {
		return r.red(text)
	}
	return r.black(text)
}

func pad(s string) string {
	return fmt.Sprintf("%-*s", cellWidth, s)
}
