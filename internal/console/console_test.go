package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/adventurer/internal/art"
	"github.com/arcanaland/adventurer/internal/card"
	"github.com/arcanaland/adventurer/internal/engine"
)

func newHost(input string, assets fstest.MapFS) (*Host, *bytes.Buffer) {
	color.NoColor = true
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, assets, art.Renderer{Width: 4, Height: 2}), out
}

var twoButtons = engine.Affordances{Buttons: []engine.Button{
	{Label: "Left", Trigger: engine.ChoiceASelected},
	{Label: "Right", Trigger: engine.ChoiceBSelected},
}}

var onlyB = engine.Affordances{Buttons: []engine.Button{
	{Label: "Onward", Trigger: engine.ChoiceBSelected},
}}

func TestAwaitChoices(t *testing.T) {
	h, out := newHost("x\nB\n", nil)

	trig, err := h.Await(context.Background(), twoButtons)
	require.NoError(t, err)
	assert.Equal(t, engine.ChoiceBSelected, trig)
	assert.Contains(t, out.String(), "type a or b")
}

func TestAwaitSingleButtonMapsEnter(t *testing.T) {
	h, _ := newHost("\n", nil)

	trig, err := h.Await(context.Background(), onlyB)
	require.NoError(t, err)
	assert.Equal(t, engine.ChoiceBSelected, trig)
}

func TestAwaitQuitAndEOF(t *testing.T) {
	h, _ := newHost("q\n", nil)
	_, err := h.Await(context.Background(), twoButtons)
	assert.ErrorIs(t, err, engine.ErrQuit)

	h, _ = newHost("", nil)
	_, err = h.Await(context.Background(), twoButtons)
	assert.ErrorIs(t, err, engine.ErrQuit)
}

func TestAwaitEmptyOfferIgnoresInput(t *testing.T) {
	h, out := newHost("a\n\nq\n", nil)

	_, err := h.Await(context.Background(), engine.Affordances{})
	assert.ErrorIs(t, err, engine.ErrQuit)
	assert.Empty(t, out.String())
}

func TestAwaitCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	h := New(r, &bytes.Buffer{}, nil, art.Renderer{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := h.Await(ctx, twoButtons)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRenderCard(t *testing.T) {
	assets := fstest.MapFS{"chime.wav": {Data: []byte("RIFF")}}
	h, out := newHost("", assets)

	require.NoError(t, h.ShowText(nil, card.Black, card.None))
	require.NoError(t, h.ShowText([]string{"The quick", "brown fox"}, card.Black, card.None))
	require.NoError(t, h.ShowChoices(twoButtons))
	require.NoError(t, h.PlaySound("chime.wav", true, false))

	got := out.String()
	assert.Contains(t, got, "─")
	assert.Contains(t, got, "The quick\nbrown fox\n")
	assert.Contains(t, got, "[a] Left    [b] Right")
	assert.Contains(t, got, "↻ chime.wav")
	assert.Equal(t, "chime.wav", h.playing())

	require.NoError(t, h.StopSound())
	assert.Empty(t, h.playing())
}

func TestMissingAssets(t *testing.T) {
	h, _ := newHost("", fstest.MapFS{})

	assert.Error(t, h.PlaySound("nope.wav", false, false))
	assert.Empty(t, h.playing())
	assert.Error(t, h.ShowBackground("nope.bmp"))
	assert.NoError(t, h.ShowBackground(""))
}

func TestNearest(t *testing.T) {
	assert.Equal(t, color.FgHiRed, nearest(0xFF0000))
	assert.Equal(t, color.FgBlack, nearest(0x050505))
	assert.Equal(t, color.FgHiWhite, nearest(0xFAFAFA))
	assert.Equal(t, color.BgHiRed, asBackground(color.FgHiRed))
}

func TestHintRepeatsSound(t *testing.T) {
	assets := fstest.MapFS{"hum.wav": {Data: []byte("RIFF")}}
	h, out := newHost("x\nq\n", assets)
	require.NoError(t, h.PlaySound("hum.wav", false, false))

	_, err := h.Await(context.Background(), onlyB)
	assert.ErrorIs(t, err, engine.ErrQuit)
	assert.Contains(t, out.String(), "press enter to continue, q to quit (♪ hum.wav)")
}
