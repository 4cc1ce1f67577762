package card

import (
	"errors"
	"time"
)

// ErrCardNotFound is wrapped by every lookup of a card_id that does not exist
var ErrCardNotFound = errors.New("card not found")

// Card represents one screen of an adventure
type Card struct {
	ID              string // Unique card ID (card_id in cyoa.json)
	Text            string // Narrative text, may be empty
	TextColor       Color  // Defaults to Black
	TextBackground  Color  // None when absent
	BackgroundImage string // Game-relative image path, empty clears the background
	Sound           string // Game-relative sound path
	SoundRepeat     bool
	ChoiceA         Choice // button01
	ChoiceB         Choice // button02

	// AutoAdvance is only meaningful when HasAutoAdvance is set; zero is a
	// valid delay.
	AutoAdvance    time.Duration
	HasAutoAdvance bool
}

// Choice is a labeled transition to another card
type Choice struct {
	Label string
	Goto  string
}

// Present reports whether the choice is shown to the player
func (c Choice) Present() bool {
	return c.Label != ""
}

// DeadEnd reports whether the card offers no way forward
func (c Card) DeadEnd() bool {
	return !c.HasAutoAdvance && !c.ChoiceA.Present() && !c.ChoiceB.Present()
}
