package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/render"
)

var (
	configFlag   string
	logFileFlag  string
	logLevelFlag string
	colorFlag    string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Two-color patience in the terminal",
	Long: `Solitaire is a patience game played with 26 cards: thirteen ranks in black and red.
Cards are dealt from a deck file onto four tableau piles and built up on two
foundation piles, one per color, from Ace to King.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return invalidFile(err)
		}
		if configFlag != "" {
			config.SetConfigFile(configFlag)
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $XDG_CONFIG_HOME/solitaire/config.toml)")
	RootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write a JSON game log to this file")
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")
	RootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto, always or never")

	RootCmd.AddCommand(validateCmd)
}

// Execute runs the root command with every subcommand attached.
func Execute() error {
	return RootCmd.Execute()
}

// loadSettings loads the config and applies the persistent flags on top.
func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, invalidFile(err)
	}
	if logFileFlag != "" {
		cfg.LogFile = logFileFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if colorFlag != "" {
		cfg.Color = colorFlag
		if err := cfg.Validate(); err != nil {
			return nil, usageError(err)
		}
	}
	return cfg, nil
}

// newRenderer builds the board renderer for the configured color mode.
func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	color := false
	switch cfg.Color {
	case config.ColorAlways:
		color = true
	case config.ColorAuto:
		color = term.IsTerminal(int(os.Stdout.Fd()))
	}

	r, err := render.New(color, render.Theme{
		Red:    cfg.Theme.Red,
		Black:  cfg.Theme.Black,
		Hidden: cfg.Theme.Hidden,
	})
	if err != nil {
		return nil, invalidFile(err)
	}
	return r, nil
}
