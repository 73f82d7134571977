// Package deck loads the starting order of the 26 cards from a file.
package deck

import (
	"bufio"
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/solitaire/internal/board"
	"github.com/arcanaland/solitaire/internal/card"
)

// Format is the encoding of a deck file, chosen by extension.
type Format string

const (
	Plain Format = "plain"
	TOML  Format = "toml"
	YAML  Format = "yaml"
)

// FormatOf returns the format implied by the file name.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML
	case ".yaml", ".yml":
		return YAML
	default:
		return Plain
	}
}

// File is the undecoded content of a deck file. Each entry of Cards is a
// "<COLOR> <RANK>" pair, in the order the cards go onto the draw pile.
type File struct {
	Name   string   `toml:"name" yaml:"name"`
	Cards  []string `toml:"cards" yaml:"cards"`
	Format Format   `toml:"-" yaml:"-"`
}

// Deck is a checked starting order.
type Deck struct {
	Name  string
	Path  string
	Cards []card.Card
}

// Read decodes a deck file without checking the cards.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, FormatOf(path))
}

// Decode parses deck data in the given format.
func Decode(data []byte, format Format) (*File, error) {
	f := &File{Format: format}
	switch format {
	case TOML:
		if _, err := toml.Decode(string(data), f); err != nil {
			return nil, fmt.Errorf("%w: %v", board.ErrMalformedDeck, err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("%w: %v", board.ErrMalformedDeck, err)
		}
	default:
		f.Cards = plainPairs(data)
	}
	return f, nil
}

// plainPairs splits whitespace-separated tokens into color/rank pairs. A
// trailing odd token is kept on its own so that it fails to parse.
func plainPairs(data []byte) []string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Split(bufio.ScanWords)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	pairs := make([]string, 0, (len(tokens)+1)/2)
	for i := 0; i < len(tokens); i += 2 {
		if i+1 < len(tokens) {
			pairs = append(pairs, tokens[i]+" "+tokens[i+1])
		} else {
			pairs = append(pairs, tokens[i])
		}
	}
	return pairs
}

// Parse turns the entries of f into cards and checks that they form a
// complete deck.
func (f *File) Parse() ([]card.Card, error) {
	cards := make([]card.Card, 0, len(f.Cards))
	for i, entry := range f.Cards {
		c, err := card.ParsePair(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", board.ErrMalformedDeck, i+1, err)
		}
		cards = append(cards, c)
	}
	if err := board.CheckDeck(cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Load reads and checks the deck at path.
func Load(path string) (*Deck, error) {
	f, err := Read(path)
	if err != nil {
		return nil, fmt.Errorf("error loading deck %s: %w", path, err)
	}
	cards, err := f.Parse()
	if err != nil {
		return nil, fmt.Errorf("error loading deck %s: %w", path, err)
	}

	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &Deck{Name: name, Path: path, Cards: cards}, nil
}

// Sorted returns the deck in identifier order: BLACK A, RED A, BLACK 2, ...
func Sorted() *Deck {
	return &Deck{Name: "sorted", Cards: card.All()}
}

// Encode writes d in the given format, so that Decode gives it back.
func (d *Deck) Encode(format Format) ([]byte, error) {
	f := File{Name: d.Name, Cards: make([]string, len(d.Cards))}
	for i, c := range d.Cards {
		f.Cards[i] = c.String()
	}

	switch format {
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case YAML:
		return yaml.Marshal(f)
	default:
		return []byte(strings.Join(f.Cards, "\n") + "\n"), nil
	}
}

// Shuffled returns a deck in random order.
func Shuffled(name string) *Deck {
	cards := card.All()
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{Name: name, Cards: cards}
}
