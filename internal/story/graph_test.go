package story

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/adventurer/internal/card"
)

const robots = `[
  {
    "card_id": "startup",
    "text": "Welcome to the robot factory.",
    "text_color": "0xFFFFFF",
    "background_image": "startup.bmp",
    "sound": "startup.wav",
    "auto_advance": "2.5"
  },
  {
    "card_id": "home",
    "text": "Where to?",
    "text_color": 255,
    "text_background_color": "#000000",
    "sound": "loop.wav",
    "sound_repeat": "True",
    "button01_text": "Left",
    "button01_goto_card_id": "left",
    "button02_text": "Right",
    "button02_goto_card_id": "right"
  },
  {
    "card_id": "left",
    "text": "Dead end.",
    "button01_text": "Back",
    "button01_goto_card_id": "home"
  },
  {
    "card_id": "right",
    "text": "The end.",
    "text_color": "purple"
  }
]`

func TestLoadRoundTrip(t *testing.T) {
	fsys := fstest.MapFS{FileName: {Data: []byte(robots)}}

	g, err := Load(fsys)
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())

	for i, id := range []string{"startup", "home", "left", "right"} {
		c, err := g.CardAt(i)
		require.NoError(t, err)
		assert.Equal(t, id, c.ID)
	}
}

func TestLoadFields(t *testing.T) {
	g, err := Parse("robots", []byte(robots))
	require.NoError(t, err)

	startup, _ := g.CardAt(0)
	assert.Equal(t, card.White, startup.TextColor)
	assert.Equal(t, card.None, startup.TextBackground)
	assert.Equal(t, "startup.bmp", startup.BackgroundImage)
	assert.True(t, startup.HasAutoAdvance)
	assert.Equal(t, 2500*time.Millisecond, startup.AutoAdvance)
	assert.False(t, startup.SoundRepeat)

	home, _ := g.CardAt(1)
	assert.Equal(t, card.Color(0x0000FF), home.TextColor)
	assert.Equal(t, card.Black, home.TextBackground)
	assert.True(t, home.SoundRepeat)
	assert.Equal(t, card.Choice{Label: "Left", Goto: "left"}, home.ChoiceA)
	assert.Equal(t, card.Choice{Label: "Right", Goto: "right"}, home.ChoiceB)
	assert.False(t, home.HasAutoAdvance)

	left, _ := g.CardAt(2)
	assert.True(t, left.ChoiceA.Present())
	assert.False(t, left.ChoiceB.Present())

	right, _ := g.CardAt(3)
	assert.Equal(t, card.Black, right.TextColor)
	assert.True(t, right.DeadEnd())
	require.Len(t, g.Warnings(), 1)
	assert.Contains(t, g.Warnings()[0], `"right"`)
}

func TestFindIndexByID(t *testing.T) {
	g, err := Parse("robots", []byte(robots))
	require.NoError(t, err)

	i, err := g.FindIndexByID("left")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = g.FindIndexByID("nowhere")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestDuplicateIDsReturnFirst(t *testing.T) {
	doc := `[{"card_id":"a","text":"first"},{"card_id":"b"},{"card_id":"a","text":"second"}]`
	g, err := Parse("dupes", []byte(doc))
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())

	i, err := g.FindIndexByID("a")
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, []string{"a"}, g.Duplicates())
}

func TestCardAtOutOfRange(t *testing.T) {
	g, err := Parse("one", []byte(`[{"card_id":"only"}]`))
	require.NoError(t, err)

	_, err = g.CardAt(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = g.CardAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrMalformed)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, NotFound, lerr.Kind)

	_, err = LoadDir(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMalformed(t *testing.T) {
	docs := map[string]string{
		"invalid json":     `[{"card_id": "a",]`,
		"object root":      `{"card_id": "a"}`,
		"non-object card":  `["a"]`,
		"missing id":       `[{"text": "hi"}]`,
		"bad auto advance": `[{"card_id": "a", "auto_advance": "soon"}]`,
		"negative delay":   `[{"card_id": "a", "auto_advance": -1}]`,
		"huge delay":       `[{"card_id": "a", "auto_advance": 1e10}, {"card_id": "b"}]`,
		"huge delay text":  `[{"card_id": "a", "auto_advance": "1e300"}, {"card_id": "b"}]`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(name, []byte(doc))
			assert.ErrorIs(t, err, ErrMalformed)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.json")
	require.NoError(t, os.WriteFile(path, []byte(robots), 0644))

	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
}

func TestCardsIsACopy(t *testing.T) {
	g, err := Parse("robots", []byte(robots))
	require.NoError(t, err)

	cards := g.Cards()
	cards[0].ID = "changed"

	c, _ := g.CardAt(0)
	assert.Equal(t, "startup", c.ID)
}
