package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks in your deck library",
	Long:  `Commands for managing the deck files in your deck library.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'solitaire deck init' to create it.")
			return nil
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return invalidFile(err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return resourceError(fmt.Errorf("error reading deck library: %w", err))
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			d, err := deck.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid deck, skip
				continue
			}
			found++

			if entry.Name() == defaultDeck {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", entry.Name(), d.Name)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", entry.Name(), d.Name)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "Create one with 'solitaire deck new <name>' or copy deck files to:", libraryPath)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return invalidFile(err)
		}

		// Try to load the deck to make sure it's valid
		if _, err := deck.Load(deckPath); err != nil {
			return invalidFile(fmt.Errorf("not a valid deck: %w", err))
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return resourceError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return resourceError(fmt.Errorf("error creating deck library: %w", err))
		}
		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)

		if _, err := config.LoadConfig(); err != nil {
			return invalidFile(err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

var deckNewSorted bool

// deckNewCmd represents the deck new command
var deckNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a shuffled deck in your deck library",
	Long: `New writes a freshly shuffled deck to your deck library. The file format
follows the extension of the name: .toml, .yaml/.yml, or plain text otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileName := args[0]
		if strings.ContainsRune(fileName, filepath.Separator) {
			return usageError(errors.New("deck name must not contain a path separator"))
		}

		libraryPath := config.GetDeckLibraryPath()
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return resourceError(fmt.Errorf("error creating deck library: %w", err))
		}

		deckPath := filepath.Join(libraryPath, fileName)
		if _, err := os.Stat(deckPath); err == nil {
			return usageError(fmt.Errorf("deck already exists: %s", deckPath))
		}

		name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
		d := deck.Shuffled(name)
		if deckNewSorted {
			d = deck.Sorted()
			d.Name = name
		}

		data, err := d.Encode(deck.FormatOf(fileName))
		if err != nil {
			return resourceError(err)
		}
		if err := os.WriteFile(deckPath, data, 0644); err != nil {
			return resourceError(fmt.Errorf("error writing deck: %w", err))
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Deck written to:", deckPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
	deckCmd.AddCommand(deckNewCmd)

	deckNewCmd.Flags().BoolVar(&deckNewSorted, "sorted", false, "write the cards in sorted order instead of shuffling")
}
