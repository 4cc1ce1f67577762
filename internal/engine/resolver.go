package engine

import (
	"errors"
	"fmt"

	"github.com/arcanaland/adventurer/internal/card"
)

var (
	ErrInvalidTrigger    = errors.New("trigger not offered by card")
	ErrDanglingReference = errors.New("dangling card reference")
)

// DanglingReferenceError reports a choice or fallthrough whose target does
// not exist. It matches ErrDanglingReference.
type DanglingReferenceError struct {
	From    string
	Trigger Trigger
	Target  string // empty for a fallthrough past the last card
}

func (e *DanglingReferenceError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("card %q: %s falls past the last card", e.From, e.Trigger)
	}
	return fmt.Sprintf("card %q: %s goes to unknown card %q", e.From, e.Trigger, e.Target)
}

func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}

// Resolve returns the index of the card that follows index when t fires.
// Timer expiry falls through to the next card in storage order; choices
// jump to their goto ID.
func Resolve(cards Cards, index int, t Trigger) (int, error) {
	c, err := cards.CardAt(index)
	if err != nil {
		return -1, err
	}

	var target string
	switch {
	case t == TimerExpired && c.HasAutoAdvance:
		next := index + 1
		if next >= cards.Len() {
			return -1, &DanglingReferenceError{From: c.ID, Trigger: t}
		}
		return next, nil
	case t == ChoiceASelected && c.ChoiceA.Present() && !c.HasAutoAdvance:
		target = c.ChoiceA.Goto
	case t == ChoiceBSelected && c.ChoiceB.Present() && !c.HasAutoAdvance:
		target = c.ChoiceB.Goto
	default:
		return -1, fmt.Errorf("%w: %s on card %q", ErrInvalidTrigger, t, c.ID)
	}

	next, err := cards.FindIndexByID(target)
	if err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return -1, &DanglingReferenceError{From: c.ID, Trigger: t, Target: target}
		}
		return -1, err
	}
	return next, nil
}
