package cmd

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/deck"
	"github.com/arcanaland/solitaire/internal/game"
	"github.com/arcanaland/solitaire/internal/logging"
)

var playCmd = &cobra.Command{
	Use:   "play [deck]",
	Short: "Deal a deck and play",
	Long: `Play deals the given deck and reads commands until the game is won or you exit.

The deck is a file of 26 "<COLOR> <RANK>" pairs (plain text, .toml or .yaml),
looked up in your deck library (XDG_DATA_HOME/solitaire/decks) or as a path.
Without an argument the default deck from your config is used.

Commands:
  move <color> <rank> to <pile>   piles: 1 draw, 2-5 tableau, 6-7 foundation
  next                            turn over the draw pile
  help
  exit`,
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

		logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return invalidFile(err)
		}
		defer closeLog()
		logger = logger.With(zap.String("game_id", uuid.NewString()), zap.String("deck", d.Name))
		logger.Info("game started", zap.String("path", d.Path))

		out := cmd.OutOrStdout()
		session := game.NewSession(game.New(b, out, logger), cmd.InOrStdin(), out, renderer, cfg.Prompt)
		result, err := session.Run()
		if err != nil {
			logger.Error("game aborted", zap.Error(err))
			return resourceError(err)
		}
		logger.Info("game over", zap.Stringer("result", result), zap.Int("cards", b.CardCount()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
}

// resolveDeck loads the deck named on the command line, or the default deck.
func resolveDeck(cfg *config.Config, args []string) (*deck.Deck, error) {
	deckPath, err := resolveDeckPath(cfg, args)
	if err != nil {
		return nil, err
	}

	d, err := deck.Load(deckPath)
	if err != nil {
		return nil, invalidFile(err)
	}
	return d, nil
}

// resolveDeckPath picks the deck argument or the configured default and finds
// it in the deck library or on disk.
func resolveDeckPath(cfg *config.Config, args []string) (string, error) {
	name := cfg.DefaultDeck
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return "", usageError(errors.New("no deck given and no default deck configured; run 'solitaire deck set-default <deck>'"))
	}

	deckPath, err := config.GetDeckPath(name)
	if err != nil {
		return "", invalidFile(err)
	}
	return deckPath, nil
}
