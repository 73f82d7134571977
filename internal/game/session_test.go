package game

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
)

type spyRenderer struct {
	renders int
}

func (r *spyRenderer) Render(w io.Writer, b *board.Board) error {
	r.renders++
	_, err := io.WriteString(w, "<board>\n")
	return err
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "MOVE RED 10 TO 4", Normalize("  move\tred   10 to 4 \r\n"))
	assert.Equal(t, "", Normalize("   "))
}

func TestLineReader(t *testing.T) {
	long := strings.Repeat("x", 10000)
	r := NewLineReader(strings.NewReader("help\n" + long + "\nexit"))

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "HELP", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Len(t, line, 10000)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "EXIT", line)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "[INFO] Invalid command!", Message(ErrInvalidCommand))
	assert.Equal(t, "[INFO] Invalid card!", Message(ErrInvalidCard))
	assert.Contains(t, Message(ErrInvalidMoveSyntax), "Invalid move syntax")
	assert.Equal(t, "[INFO] Invalid move command! (card does not fit on that pile)",
		Message(&IllegalMoveError{Reason: OutOfOrder}))
}

func TestSessionExit(t *testing.T) {
	b, err := board.NewGame(card.All())
	require.NoError(t, err)
	var out bytes.Buffer
	renderer := &spyRenderer{}

	in := strings.NewReader("help\njump\nmove red 2 to 6\nnext\nexit\nnext\n")
	result, err := NewSession(New(b, &out, nil), in, &out, renderer, "esp> ").Run()
	require.NoError(t, err)

	assert.Equal(t, Exited, result)
	assert.Equal(t, 2, renderer.renders, "initial board and after NEXT")
	assert.Contains(t, out.String(), "possible command:")
	assert.Contains(t, out.String(), "[INFO] Invalid command!")
	assert.Contains(t, out.String(), "[INFO] Invalid move command!")
	assert.Equal(t, 5, strings.Count(out.String(), "esp> "))
	assert.Equal(t, card.Count, b.CardCount())
}

func TestSessionInputClosed(t *testing.T) {
	b, err := board.NewGame(card.All())
	require.NoError(t, err)

	result, err := NewSession(New(b, io.Discard, nil), strings.NewReader("next"), io.Discard, &spyRenderer{}, "> ").Run()
	require.NoError(t, err)
	assert.Equal(t, InputClosed, result)
}

func TestSessionInputFailure(t *testing.T) {
	b, err := board.NewGame(card.All())
	require.NoError(t, err)

	_, err = NewSession(New(b, io.Discard, nil), failingReader{}, io.Discard, &spyRenderer{}, "> ").Run()
	assert.ErrorIs(t, err, ErrInput)
}

func TestSessionWin(t *testing.T) {
	b := newBoard(t, map[board.PileID]pile{
		board.DrawPile:    {cards: []string{"RED 3", "BLACK 4"}, faceDown: 1},
		board.Foundation1: {cards: []string{"BLACK K"}},
		board.Foundation2: {cards: []string{"RED K"}},
	})
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer

	in := strings.NewReader("help\nnext\nexit\n")
	result, err := NewSession(New(b, &out, zap.New(core)), in, &out, &spyRenderer{}, "esp> ").Run()
	require.NoError(t, err)

	assert.Equal(t, Victory, result, "any successful state change checks for the win")
	assert.Equal(t, "won", result.String())
	assert.Contains(t, out.String(), "You won!")
	assert.Equal(t, 1, logs.FilterMessage("game won").Len())
	assert.Equal(t, 1, logs.FilterMessage("draw pile rotated").Len())
}

func TestSessionNoWinWithoutBothKings(t *testing.T) {
	b := newBoard(t, map[board.PileID]pile{
		board.DrawPile:    {cards: []string{"RED 3", "BLACK 4"}, faceDown: 1},
		board.Foundation1: {cards: []string{"BLACK K"}},
		board.Foundation2: {cards: []string{"RED Q"}},
	})

	result, err := NewSession(New(b, io.Discard, nil), strings.NewReader("next\nnext\n"), io.Discard, &spyRenderer{}, "").Run()
	require.NoError(t, err)
	assert.Equal(t, InputClosed, result)
}
