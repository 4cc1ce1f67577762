// Package console plays a game on a line-oriented terminal or pipe.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/arcanaland/adventurer/internal/art"
	"github.com/arcanaland/adventurer/internal/card"
	"github.com/arcanaland/adventurer/internal/engine"
)

// Host prints cards to out and reads choices from in, one per line
type Host struct {
	in     io.Reader
	out    io.Writer
	assets fs.FS
	art    art.Renderer
	noArt  bool

	once  sync.Once
	lines chan string

	mu    sync.Mutex
	sound string
}

// Option configures a Host
type Option func(*Host)

// WithoutArt skips background images
func WithoutArt() Option { return func(h *Host) { h.noArt = true } }

func New(in io.Reader, out io.Writer, assets fs.FS, renderer art.Renderer, opts ...Option) *Host {
	h := &Host{
		in:     in,
		out:    out,
		assets: assets,
		art:    renderer,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

var divider = color.New(color.FgHiBlack)

func (h *Host) ShowBackground(ref string) error {
	if ref == "" || h.noArt {
		return nil
	}
	ansiArt, err := h.art.Render(h.assets, ref)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(h.out, ansiArt)
	return err
}

func (h *Host) ShowText(lines []string, fg, bg card.Color) error {
	if lines == nil {
		_, err := divider.Fprintln(h.out, strings.Repeat("─", 40))
		return err
	}
	style := textStyle(fg, bg)
	for _, line := range lines {
		if _, err := style.Fprintln(h.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) ShowChoices(a engine.Affordances) error {
	var err error
	switch len(a.Buttons) {
	case 0:
	case 1:
		_, err = fmt.Fprintf(h.out, "\n        %s\n", buttonLabel("enter", a.Buttons[0].Label))
	default:
		_, err = fmt.Fprintf(h.out, "\n%s    %s\n",
			buttonLabel("a", a.Buttons[0].Label), buttonLabel("b", a.Buttons[1].Label))
	}
	return err
}

func buttonLabel(key, label string) string {
	return color.New(color.Bold).Sprintf("[%s]", key) + " " + label
}

func (h *Host) PlaySound(ref string, repeat, wait bool) error {
	if err := h.StopSound(); err != nil {
		return err
	}
	if ref == "" {
		return nil
	}
	if _, err := fs.Stat(h.assets, ref); err != nil {
		return fmt.Errorf("could not locate sound file %s: %w", ref, err)
	}

	h.mu.Lock()
	h.sound = ref
	h.mu.Unlock()

	mark := "♪"
	if repeat {
		mark = "↻"
	}
	_, err := color.New(color.FgCyan).Fprintf(h.out, "%s %s\n", mark, ref)
	return err
}

func (h *Host) StopSound() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sound = ""
	return nil
}

func (h *Host) playing() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sound
}

// Await reads lines until one selects an offered control. "q" quits; end of
// input quits as well.
func (h *Host) Await(ctx context.Context, a engine.Affordances) (engine.Trigger, error) {
	h.once.Do(h.startReader)
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case line, ok := <-h.lines:
			if !ok {
				return 0, engine.ErrQuit
			}
			t, quit := parseLine(line, a)
			if quit {
				return 0, engine.ErrQuit
			}
			if t != 0 && a.Offers(t) {
				return t, nil
			}
			if !a.Empty() {
				fmt.Fprintln(h.out, h.hint(a))
			}
		}
	}
}

func (h *Host) startReader() {
	h.lines = make(chan string)
	go func() {
		defer close(h.lines)
		scanner := bufio.NewScanner(h.in)
		for scanner.Scan() {
			h.lines <- scanner.Text()
		}
	}()
}

func parseLine(line string, a engine.Affordances) (engine.Trigger, bool) {
	key := strings.ToLower(strings.TrimSpace(line))
	switch key {
	case "q", "quit", "exit":
		return 0, true
	}
	switch len(a.Buttons) {
	case 1:
		if key == "" || key == "a" || key == "1" {
			return a.Buttons[0].Trigger, false
		}
	case 2:
		switch key {
		case "a", "1", "left":
			return a.Buttons[0].Trigger, false
		case "b", "2", "right":
			return a.Buttons[1].Trigger, false
		}
	}
	return 0, false
}

// hint answers unrecognised input and repeats the active sound
func (h *Host) hint(a engine.Affordances) string {
	msg := "type a or b, q to quit"
	if a.Single() {
		msg = "press enter to continue, q to quit"
	}
	if sound := h.playing(); sound != "" {
		msg += " (♪ " + sound + ")"
	}
	return msg
}
