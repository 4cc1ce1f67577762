package story

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/arcanaland/adventurer/internal/card"
)

// FileName is the card document inside a game directory
const FileName = "cyoa.json"

// Graph is the ordered, read-only set of cards of one game
type Graph struct {
	cards      []card.Card
	index      map[string]int
	duplicates []string
	warnings   []string
}

// LoadDir loads the game stored in dir
func LoadDir(dir string) (*Graph, error) {
	return load(os.DirFS(dir), filepath.Join(dir, FileName))
}

// Load loads cyoa.json from the root of a game file system
func Load(fsys fs.FS) (*Graph, error) {
	return load(fsys, FileName)
}

// LoadFile loads a card document from an explicit path
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: NotFound, Source: path, Err: err}
	}
	return parse(data, path)
}

func load(fsys fs.FS, source string) (*Graph, error) {
	data, err := fs.ReadFile(fsys, FileName)
	if err != nil {
		return nil, &LoadError{Kind: NotFound, Source: source, Err: err}
	}
	return parse(data, source)
}

func newGraph(cards []card.Card) *Graph {
	g := &Graph{
		cards: cards,
		index: make(map[string]int, len(cards)),
	}
	for i, c := range cards {
		if _, ok := g.index[c.ID]; ok {
			g.duplicates = append(g.duplicates, c.ID)
			continue
		}
		g.index[c.ID] = i
	}
	return g
}

// Len returns the number of cards
func (g *Graph) Len() int {
	return len(g.cards)
}

// CardAt returns the card stored at index
func (g *Graph) CardAt(index int) (card.Card, error) {
	if index < 0 || index >= len(g.cards) {
		return card.Card{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(g.cards))
	}
	return g.cards[index], nil
}

// FindIndexByID returns the index of the first card with the given ID
func (g *Graph) FindIndexByID(id string) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrCardNotFound, id)
	}
	return i, nil
}

// Cards returns a copy of the cards in storage order
func (g *Graph) Cards() []card.Card {
	return slices.Clone(g.cards)
}

// Duplicates lists IDs that appear more than once, once per extra occurrence
func (g *Graph) Duplicates() []string {
	return slices.Clone(g.duplicates)
}

// Warnings lists field values that were replaced by their defaults while
// parsing
func (g *Graph) Warnings() []string {
	return slices.Clone(g.warnings)
}
