package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/game"
)

var showCmd = &cobra.Command{
	Use:   "show [deck]",
	Short: "Display the opening board of a deck",
	Long: `Show deals a deck and prints the opening board without starting a game,
together with the cards that can be moved right away.

Examples:
  solitaire show
  solitaire show classic.txt
  solitaire show ./decks/weekend.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		d, err := resolveDeck(cfg, args)
		if err != nil {
			return err
		}

		b, err := board.NewGame(d.Cards)
		if err != nil {
			return invalidFile(err)
		}
		defer b.Release()

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, colorize.CyanString("Deck: ")+colorize.HiWhiteString(d.Name))
		if d.Path != "" {
			fmt.Fprintln(out, colorize.CyanString("Path: ")+colorize.HiWhiteString(d.Path))
		}
		fmt.Fprintln(out)
		if err := renderer.Render(out, b); err != nil {
			return resourceError(err)
		}

		moves := openingMoves(b)
		fmt.Fprintln(out)
		if len(moves) == 0 {
			fmt.Fprintln(out, colorize.CyanString("Moves: ")+"none, start with next")
			return nil
		}
		fmt.Fprintln(out, colorize.CyanString("Moves:"))
		for _, m := range moves {
			fmt.Fprintf(out, "  move %s to %d\n", m.Card, m.To.Number())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// openingMoves lists every legal move that changes the board.
func openingMoves(b *board.Board) []game.Move {
	var moves []game.Move
	for _, pile := range b.Piles() {
		for _, e := range pile.Entries() {
			if !e.FaceUp {
				continue
			}
			for to := board.DrawPile; to <= board.Foundation2; to++ {
				m, reason := game.CheckMove(b, e.Card, to)
				if reason == game.Legal && m.From != m.To {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}
