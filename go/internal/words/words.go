package words

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OptionsPerWord is the fixed number of candidate options per prompt word.
const OptionsPerWord = 3

// Pair is one catalog entry: a prompt word and its candidate options.
type Pair struct {
	Word    string   `yaml:"word" json:"word"`
	Options []string `yaml:"options" json:"options"`
}

// Catalog is the ordered sequence of prompt words for a game. Round numbers
// index it 1-based; the game length equals the catalog length.
type Catalog struct {
	pairs []Pair
}

// Default returns the built-in ten-word catalog.
func Default() *Catalog {
	return &Catalog{pairs: defaultPairs}
}

var defaultPairs = []Pair{
	{Word: "MOON", Options: []string{"Walk", "Light", "Dance"}},
	{Word: "ICE", Options: []string{"Pack", "Cube", "Water"}},
	{Word: "ROSE", Options: []string{"Milk", "Water", "Flower"}},
	{Word: "SUN", Options: []string{"Rise", "Set", "Screen"}},
	{Word: "STAR", Options: []string{"Fish", "Light", "Burst"}},
	{Word: "NIGHT", Options: []string{"Stand", "Mare", "Time"}},
	{Word: "SNOW", Options: []string{"Ball", "Flake", "Man"}},
	{Word: "FIRE", Options: []string{"Fly", "Work", "Place"}},
	{Word: "WATER", Options: []string{"Fall", "Melon", "Mark"}},
	{Word: "BOOK", Options: []string{"Mark", "Shelf", "Worm"}},
}

// New builds a catalog from the given entries.
func New(pairs []Pair) (*Catalog, error) {
	c := &Catalog{pairs: pairs}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a catalog override from a yaml file. The file holds a list of
// entries under a top-level "words" key.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc struct {
		Words []Pair `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	c, err := New(doc.Words)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if len(c.pairs) == 0 {
		return fmt.Errorf("catalog has no entries")
	}
	for i, p := range c.pairs {
		if p.Word == "" {
			return fmt.Errorf("entry %d has an empty word", i+1)
		}
		if len(p.Options) != OptionsPerWord {
			return fmt.Errorf("entry %d (%s) has %d options, expected %d", i+1, p.Word, len(p.Options), OptionsPerWord)
		}
		for _, opt := range p.Options {
			if opt == "" {
				return fmt.Errorf("entry %d (%s) has an empty option", i+1, p.Word)
			}
		}
	}
	return nil
}

// Rounds returns the number of rounds a game lasts.
func (c *Catalog) Rounds() int {
	return len(c.pairs)
}

// Pair returns the catalog entry for the given 1-based round number.
func (c *Catalog) Pair(roundNumber int) (Pair, bool) {
	if roundNumber < 1 || roundNumber > len(c.pairs) {
		return Pair{}, false
	}
	return c.pairs[roundNumber-1], true
}

// ValidOption reports whether choice is one of the options for the given
// round. Choices are matched by exact string equality.
func (c *Catalog) ValidOption(roundNumber int, choice string) bool {
	p, ok := c.Pair(roundNumber)
	if !ok {
		return false
	}
	for _, opt := range p.Options {
		if opt == choice {
			return true
		}
	}
	return false
}
