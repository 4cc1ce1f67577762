// Package game ties a card document to the optional game.toml manifest
// stored beside it.
package game

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/adventurer/internal/story"
)

// ManifestName is the optional metadata file inside a game directory
const ManifestName = "game.toml"

// Manifest is the decoded game.toml
type Manifest struct {
	Game struct {
		ID          string `toml:"id"`
		Name        string `toml:"name"`
		Version     string `toml:"version"`
		Author      string `toml:"author"`
		Description string `toml:"description"`
		// StartCard is the card_id play begins at; empty means the first card.
		StartCard string `toml:"start_card"`
	} `toml:"game"`
}

// Game is a loaded game directory
type Game struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	StartCard   string
	Path        string

	Cards *story.Graph
}

// LoadGame loads the cards and, when present, the manifest of the game in
// gamePath. Without a manifest the directory name serves as id and name.
func LoadGame(gamePath string) (*Game, error) {
	manifest, err := LoadManifest(gamePath)
	if err != nil {
		return nil, err
	}

	cards, err := story.LoadDir(gamePath)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(filepath.Clean(gamePath))
	g := &Game{
		ID:          manifest.Game.ID,
		Name:        manifest.Game.Name,
		Version:     manifest.Game.Version,
		Author:      manifest.Game.Author,
		Description: manifest.Game.Description,
		StartCard:   manifest.Game.StartCard,
		Path:        gamePath,
		Cards:       cards,
	}
	if g.ID == "" {
		g.ID = base
	}
	if g.Name == "" {
		g.Name = g.ID
	}
	return g, nil
}

// LoadManifest decodes game.toml. A missing file yields an empty manifest.
func LoadManifest(gamePath string) (Manifest, error) {
	var m Manifest
	manifestPath := filepath.Join(gamePath, ManifestName)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return m, nil
	}
	if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
		return m, fmt.Errorf("error parsing %s: %w", ManifestName, err)
	}
	return m, nil
}

// StartIndex returns the index play begins at
func (g *Game) StartIndex() (int, error) {
	if g.StartCard == "" {
		return 0, nil
	}
	index, err := g.Cards.FindIndexByID(g.StartCard)
	if err != nil {
		return 0, fmt.Errorf("%s start_card: %w", ManifestName, err)
	}
	return index, nil
}
