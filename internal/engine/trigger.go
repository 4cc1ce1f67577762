package engine

import (
	"fmt"

	"github.com/arcanaland/adventurer/internal/card"
)

// Trigger is an event that moves the player off the current card
type Trigger int

const (
	ChoiceASelected Trigger = iota + 1
	ChoiceBSelected
	TimerExpired
)

func (t Trigger) String() string {
	switch t {
	case ChoiceASelected:
		return "choice_a"
	case ChoiceBSelected:
		return "choice_b"
	case TimerExpired:
		return "timer"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// Button is one rendered choice control
type Button struct {
	Label   string
	Trigger Trigger
}

// Affordances are the choice controls shown for a card. One button is
// drawn centered, two are drawn left and right.
type Affordances struct {
	Buttons []Button
}

// AffordancesFor returns the controls a card offers. Auto-advance cards
// offer none, even when they carry choices.
func AffordancesFor(c card.Card) Affordances {
	if c.HasAutoAdvance {
		return Affordances{}
	}
	var a Affordances
	if c.ChoiceA.Present() {
		a.Buttons = append(a.Buttons, Button{Label: c.ChoiceA.Label, Trigger: ChoiceASelected})
	}
	if c.ChoiceB.Present() {
		a.Buttons = append(a.Buttons, Button{Label: c.ChoiceB.Label, Trigger: ChoiceBSelected})
	}
	return a
}

// Empty reports whether no control is shown
func (a Affordances) Empty() bool {
	return len(a.Buttons) == 0
}

// Single reports whether exactly one centered control is shown
func (a Affordances) Single() bool {
	return len(a.Buttons) == 1
}

// Offers reports whether t is one of the shown controls
func (a Affordances) Offers(t Trigger) bool {
	for _, b := range a.Buttons {
		if b.Trigger == t {
			return true
		}
	}
	return false
}
