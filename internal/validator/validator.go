package validator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/adventurer/internal/card"
	"github.com/arcanaland/adventurer/internal/game"
	"github.com/arcanaland/adventurer/internal/story"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	GamePath string
	Results  ValidationResults

	graph *story.Graph
	start int
}

func NewValidator(gamePath string) *Validator {
	return &Validator{
		GamePath: gamePath,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateDocument(); err != nil {
		return v.Results, err
	}
	if v.graph == nil {
		return v.Results, nil
	}

	v.validateManifest()
	v.validateIDs()
	v.validateNavigation()
	v.validateAssets()
	v.validateReachability()
	v.Results.Warnings = append(v.Results.Warnings, v.graph.Warnings()...)

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateDocument loads cyoa.json. Only an unreadable file is a hard error;
// a broken document is reported and stops the remaining checks.
func (v *Validator) validateDocument() error {
	docPath := filepath.Join(v.GamePath, story.FileName)
	if _, err := os.Stat(docPath); os.IsNotExist(err) {
		return fmt.Errorf("%s not found in %s", story.FileName, v.GamePath)
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", story.FileName, err)
	}

	if story.IsLegacy(data) {
		v.errorf("%s uses the legacy page_id schema; convert it with `adventurer migrate`", story.FileName)
		return nil
	}

	graph, err := story.Parse(docPath, data)
	if err != nil {
		v.errorf("%v", err)
		return nil
	}
	if graph.Len() == 0 {
		v.errorf("%s contains no cards", story.FileName)
		return nil
	}
	v.graph = graph
	return nil
}

// validateManifest checks the optional game.toml
func (v *Validator) validateManifest() {
	manifest, err := game.LoadManifest(v.GamePath)
	if err != nil {
		v.errorf("%v", err)
		return
	}
	if id := manifest.Game.StartCard; id != "" {
		index, err := v.graph.FindIndexByID(id)
		if err != nil {
			v.errorf("%s: start_card %q is not a card", game.ManifestName, id)
			return
		}
		v.start = index
	}
}

func (v *Validator) validateIDs() {
	for _, id := range v.graph.Duplicates() {
		v.errorf("duplicate card_id %q; only the first card with this id is reachable", id)
	}
}

// validateNavigation checks every outgoing edge of every card
func (v *Validator) validateNavigation() {
	cards := v.graph.Cards()
	for i, c := range cards {
		v.validateChoice(c, "button01", c.ChoiceA)
		v.validateChoice(c, "button02", c.ChoiceB)

		if !c.ChoiceA.Present() && c.ChoiceB.Present() {
			v.warnf("card %q: button02 is set without button01", c.ID)
		}

		if c.HasAutoAdvance {
			if c.ChoiceA.Present() || c.ChoiceB.Present() {
				v.warnf("card %q: auto_advance is set, its buttons are never shown", c.ID)
			}
			if i == len(cards)-1 {
				v.errorf("card %q: auto_advance on the last card has no card to advance to", c.ID)
			}
			continue
		}

		if c.DeadEnd() {
			v.warnf("card %q: dead end, the player can only quit", c.ID)
		}
	}
}

func (v *Validator) validateChoice(c card.Card, name string, choice card.Choice) {
	if !choice.Present() {
		return
	}
	if choice.Goto == "" {
		v.errorf("card %q: %s %q has no goto card", c.ID, name, choice.Label)
		return
	}
	if _, err := v.graph.FindIndexByID(choice.Goto); err != nil {
		v.errorf("card %q: %s goes to unknown card %q", c.ID, name, choice.Goto)
	}
}

// validateAssets checks that referenced images and sounds exist in the game directory
func (v *Validator) validateAssets() {
	for _, c := range v.graph.Cards() {
		if c.BackgroundImage != "" {
			v.validateAsset(c, "background image", c.BackgroundImage)
		}
		if c.Sound != "" {
			v.validateAsset(c, "sound", c.Sound)
		}
	}
}

func (v *Validator) validateAsset(c card.Card, kind, ref string) {
	if _, err := os.Stat(filepath.Join(v.GamePath, ref)); os.IsNotExist(err) {
		v.errorf("card %q: %s not found: %s", c.ID, kind, ref)
	}
}

// validateReachability walks the graph from the start card the way the
// interpreter would and reports cards no path leads to.
func (v *Validator) validateReachability() {
	cards := v.graph.Cards()
	seen := make([]bool, len(cards))
	queue := []int{v.start}
	seen[v.start] = true

	visit := func(i int) {
		if i >= 0 && i < len(cards) && !seen[i] {
			seen[i] = true
			queue = append(queue, i)
		}
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		c := cards[i]
		if c.HasAutoAdvance {
			visit(i + 1)
			continue
		}
		for _, choice := range []card.Choice{c.ChoiceA, c.ChoiceB} {
			if !choice.Present() {
				continue
			}
			if next, err := v.graph.FindIndexByID(choice.Goto); err == nil {
				visit(next)
			}
		}
	}

	for i, c := range cards {
		if !seen[i] {
			v.warnf("card %q (#%d) is unreachable from the start card", c.ID, i)
		}
	}
}
