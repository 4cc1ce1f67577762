package engine

import (
	"context"
	"errors"

	"github.com/arcanaland/adventurer/internal/card"
)

// ErrQuit is returned by an Input when the player asks to leave the game
var ErrQuit = errors.New("player quit")

// Presenter renders card side effects. Resource references are relative to
// the game directory; implementations resolve them. Errors are reported
// back but never stop the interpreter.
type Presenter interface {
	// ShowBackground replaces the background image; "" clears it.
	ShowBackground(ref string) error
	// ShowText replaces the card text; nil lines clear it.
	ShowText(lines []string, color, background card.Color) error
	// ShowChoices replaces the choice controls.
	ShowChoices(a Affordances) error
	// PlaySound stops any current sound and starts ref. When wait is set
	// it returns once a non-repeating sound has finished.
	PlaySound(ref string, repeat, wait bool) error
	StopSound() error
}

// Input delivers the player's choice for the controls currently shown
type Input interface {
	// Await blocks until the player selects one of the offered controls.
	// It never returns a trigger a does not offer. With nothing offered it
	// blocks until quit or cancellation.
	Await(ctx context.Context, a Affordances) (Trigger, error)
}

// Cards is the read-only card graph the interpreter walks
type Cards interface {
	Len() int
	CardAt(index int) (card.Card, error)
	// FindIndexByID returns an error wrapping card.ErrCardNotFound for an
	// unknown id.
	FindIndexByID(id string) (int, error)
}
