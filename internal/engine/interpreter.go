package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arcanaland/adventurer/internal/card"
	"github.com/arcanaland/adventurer/internal/textwrap"
)

// DefaultTextWidth is the text area width in columns of a 320px screen
const DefaultTextWidth = 37

// Interpreter walks a card graph, rendering each card through a Presenter
// and moving on by timer or by the player's choice.
type Interpreter struct {
	cards     Cards
	presenter Presenter
	input     Input
	logger    *zap.Logger
	textWidth int
	sleep     func(ctx context.Context, d time.Duration) error
}

// Option configures an Interpreter
type Option func(*Interpreter)

func WithLogger(l *zap.Logger) Option { return func(it *Interpreter) { it.logger = l } }

func WithTextWidth(w int) Option {
	return func(it *Interpreter) {
		if w > 0 {
			it.textWidth = w
		}
	}
}

// WithSleep replaces the auto-advance wait
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(it *Interpreter) { it.sleep = fn }
}

func New(cards Cards, presenter Presenter, input Input, opts ...Option) *Interpreter {
	it := &Interpreter{
		cards:     cards,
		presenter: presenter,
		input:     input,
		logger:    zap.NewNop(),
		textWidth: DefaultTextWidth,
		sleep:     sleepContext,
	}
	for _, o := range opts {
		o(it)
	}
	return it
}

// Run plays from the card at start until the player quits, the context is
// cancelled or navigation fails. Quitting returns nil.
func (it *Interpreter) Run(ctx context.Context, start int) error {
	index := start
	for {
		next, err := it.Step(ctx, index)
		if err != nil {
			if errors.Is(err, ErrQuit) {
				it.logger.Info("player quit", zap.Int("index", index))
				return nil
			}
			if ctx.Err() == nil {
				it.logger.Error("interpreter stopped", zap.Int("index", index), zap.Error(err))
			}
			return err
		}
		index = next
	}
}

// Step renders the card at index, waits for its trigger and returns the
// index of the next card.
func (it *Interpreter) Step(ctx context.Context, index int) (int, error) {
	c, err := it.cards.CardAt(index)
	if err != nil {
		return -1, err
	}
	log := it.logger.With(zap.Int("index", index), zap.String("card", c.ID))
	log.Debug("enter card")

	offered := it.Render(c)

	var trigger Trigger
	switch {
	case c.HasAutoAdvance:
		if c.ChoiceA.Present() || c.ChoiceB.Present() {
			log.Debug("auto advance overrides choices")
		}
		if err := it.sleep(ctx, c.AutoAdvance); err != nil {
			return -1, err
		}
		trigger = TimerExpired
	default:
		if offered.Empty() {
			log.Warn("dead end card, waiting for quit")
		}
		trigger, err = it.input.Await(ctx, offered)
		if err != nil {
			return -1, err
		}
		it.report(log, "stop sound", it.presenter.StopSound())
	}

	next, err := Resolve(it.cards, index, trigger)
	if err != nil {
		return -1, fmt.Errorf("resolve %s on card %q: %w", trigger, c.ID, err)
	}
	log.Debug("resolved", zap.Stringer("trigger", trigger), zap.Int("next", next))
	return next, nil
}

// Render clears the previous card's side effects and presents c. It returns
// the controls that were shown.
func (it *Interpreter) Render(c card.Card) Affordances {
	log := it.logger.With(zap.String("card", c.ID))

	it.report(log, "stop sound", it.presenter.StopSound())
	it.report(log, "clear text", it.presenter.ShowText(nil, card.Black, card.None))
	it.report(log, "clear choices", it.presenter.ShowChoices(Affordances{}))

	it.report(log, "show background", it.presenter.ShowBackground(c.BackgroundImage))

	if c.Text != "" {
		lines, err := textwrap.Wrap(c.Text, it.textWidth)
		if err == nil {
			err = it.presenter.ShowText(lines, c.TextColor, c.TextBackground)
		}
		it.report(log, "show text", err)
	}

	offered := AffordancesFor(c)
	if !offered.Empty() {
		it.report(log, "show choices", it.presenter.ShowChoices(offered))
	}

	if c.Sound != "" {
		it.report(log, "play sound", it.presenter.PlaySound(c.Sound, c.SoundRepeat, false))
	}
	return offered
}

func (it *Interpreter) report(log *zap.Logger, what string, err error) {
	if err != nil {
		log.Warn(what+" failed", zap.Error(err))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
