package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/adventurer/internal/card"
	"github.com/arcanaland/adventurer/internal/engine"
)

const defaultWidth = 40

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	soundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

type backgroundMsg struct{ art string }

type textMsg struct {
	lines  []string
	fg, bg card.Color
}

type choicesMsg struct{ offer engine.Affordances }

type soundMsg struct {
	ref    string
	repeat bool
}

// model is the screen: one background, one text block, up to two buttons
// and the sound status line.
type model struct {
	art    string
	lines  []string
	fg, bg card.Color
	offer  engine.Affordances
	sound  string
	repeat bool
	width  int

	emit func(engine.Trigger)
	quit func()
}

func newModel(emit func(engine.Trigger), quit func()) model {
	return model{
		fg:    card.Black,
		bg:    card.None,
		width: defaultWidth,
		emit:  emit,
		quit:  quit,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case backgroundMsg:
		m.art = msg.art
	case textMsg:
		m.lines, m.fg, m.bg = msg.lines, msg.fg, msg.bg
	case choicesMsg:
		m.offer = msg.offer
	case soundMsg:
		m.sound, m.repeat = msg.ref, msg.repeat
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit()
			return m, tea.Quit
		}
		if t, ok := m.pressed(msg.String()); ok {
			// one press per offer; the next card brings a fresh one
			m.offer = engine.Affordances{}
			m.emit(t)
		}
	}
	return m, nil
}

// pressed maps a key onto the trigger of an offered button
func (m model) pressed(key string) (engine.Trigger, bool) {
	buttons := m.offer.Buttons
	switch len(buttons) {
	case 1:
		switch key {
		case "enter", " ", "space", "a", "1":
			return buttons[0].Trigger, true
		}
	case 2:
		switch key {
		case "a", "1", "left":
			return buttons[0].Trigger, true
		case "b", "2", "right":
			return buttons[1].Trigger, true
		}
	}
	return 0, false
}

func (m model) View() string {
	var sections []string
	if m.art != "" {
		sections = append(sections, strings.TrimSuffix(m.art, "\n"))
	}
	if len(m.lines) > 0 {
		sections = append(sections, textStyle(m.fg, m.bg).Render(strings.Join(m.lines, "\n")))
	}
	if buttons := m.buttons(); buttons != "" {
		sections = append(sections, buttons)
	}
	if m.sound != "" {
		mark := "♪"
		if m.repeat {
			mark = "↻"
		}
		sections = append(sections, soundStyle.Render(mark+" "+m.sound))
	}
	sections = append(sections, helpStyle.Render(m.help()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m model) buttons() string {
	buttons := m.offer.Buttons
	switch len(buttons) {
	case 1:
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			buttonStyle.Render(keyStyle.Render("⏎")+" "+buttons[0].Label))
	case 2:
		left := buttonStyle.Render(keyStyle.Render("a") + " " + buttons[0].Label)
		right := buttonStyle.Render(keyStyle.Render("b") + " " + buttons[1].Label)
		gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
	}
	return ""
}

func (m model) help() string {
	switch len(m.offer.Buttons) {
	case 1:
		return "enter: continue • q: quit"
	case 2:
		return "a/b: choose • q: quit"
	}
	return "q: quit"
}

// textStyle paints card colors. Black text without a background uses the
// terminal default so it stays readable on dark screens.
func textStyle(fg, bg card.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg.Valid() && (fg != card.Black || bg.Valid()) {
		style = style.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.Valid() {
		style = style.Background(lipgloss.Color(bg.Hex()))
	}
	return style
}
