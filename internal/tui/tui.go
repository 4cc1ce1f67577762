// Package tui plays a game full screen with bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/arcanaland/adventurer/internal/art"
	"github.com/arcanaland/adventurer/internal/card"
	"github.com/arcanaland/adventurer/internal/engine"
)

// Host is both the Presenter and the Input of an interpreter. Presenter
// calls become program messages; key presses come back as triggers.
type Host struct {
	program *tea.Program
	assets  fs.FS
	art     art.Renderer

	triggers chan engine.Trigger
	done     chan struct{}
	doneOnce sync.Once
}

// New creates a host drawing assets from the game directory. The program
// is bound to ctx; cancelling it tears the screen down.
func New(ctx context.Context, assets fs.FS, renderer art.Renderer, opts ...tea.ProgramOption) *Host {
	h := &Host{
		assets:   assets,
		art:      renderer,
		triggers: make(chan engine.Trigger, 1),
		done:     make(chan struct{}),
	}
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	h.program = tea.NewProgram(newModel(h.emit, h.stop), opts...)
	return h
}

// Run blocks until the player quits or the context ends
func (h *Host) Run(ctx context.Context) error {
	_, err := h.program.Run()
	h.stop()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Play runs the screen and play side by side. Quitting the screen cancels
// the context play runs under, so a pending auto-advance wait ends at once;
// play ending closes the screen. A player quit returns nil.
func (h *Host) Play(ctx context.Context, play func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	playCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return h.Run(gctx)
	})
	g.Go(func() error {
		defer h.Quit()
		err := play(playCtx)
		if err != nil && h.quit() && ctx.Err() == nil {
			return nil
		}
		return err
	})
	return g.Wait()
}

// quit reports whether the screen has closed
func (h *Host) quit() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Quit closes the screen from outside the event loop
func (h *Host) Quit() {
	h.program.Quit()
}

func (h *Host) emit(t engine.Trigger) {
	select {
	case h.triggers <- t:
	default:
		// a trigger is already pending; the interpreter has not caught up
	}
}

func (h *Host) stop() {
	h.doneOnce.Do(func() { close(h.done) })
}

func (h *Host) ShowBackground(ref string) error {
	if ref == "" {
		h.program.Send(backgroundMsg{})
		return nil
	}
	ansiArt, err := h.art.Render(h.assets, ref)
	if err != nil {
		return err
	}
	h.program.Send(backgroundMsg{art: ansiArt})
	return nil
}

func (h *Host) ShowText(lines []string, fg, bg card.Color) error {
	h.program.Send(textMsg{lines: lines, fg: fg, bg: bg})
	return nil
}

func (h *Host) ShowChoices(a engine.Affordances) error {
	h.program.Send(choicesMsg{offer: a})
	return nil
}

func (h *Host) PlaySound(ref string, repeat, wait bool) error {
	if ref == "" {
		return h.StopSound()
	}
	if _, err := fs.Stat(h.assets, ref); err != nil {
		return fmt.Errorf("could not locate sound file %s: %w", ref, err)
	}
	h.program.Send(soundMsg{ref: ref, repeat: repeat})
	return nil
}

func (h *Host) StopSound() error {
	h.program.Send(soundMsg{})
	return nil
}

// Await returns the next offered trigger. Presses left over from an
// earlier card are dropped.
func (h *Host) Await(ctx context.Context, a engine.Affordances) (engine.Trigger, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-h.done:
			return 0, engine.ErrQuit
		case t := <-h.triggers:
			if a.Offers(t) {
				return t, nil
			}
		}
	}
}
