package story

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/arcanaland/adventurer/internal/card"
)

// Field names of the canonical card schema
const (
	FieldCardID              = "card_id"
	FieldText                = "text"
	FieldTextColor           = "text_color"
	FieldTextBackgroundColor = "text_background_color"
	FieldBackgroundImage     = "background_image"
	FieldSound               = "sound"
	FieldSoundRepeat         = "sound_repeat"
	FieldButton01Text        = "button01_text"
	FieldButton01Goto        = "button01_goto_card_id"
	FieldButton02Text        = "button02_text"
	FieldButton02Goto        = "button02_goto_card_id"
	FieldAutoAdvance         = "auto_advance"
)

// Parse decodes a card document. source only labels errors.
func Parse(source string, data []byte) (*Graph, error) {
	return parse(data, source)
}

func parse(data []byte, source string) (*Graph, error) {
	if !gjson.ValidBytes(data) {
		return nil, malformed(source, "invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, malformed(source, "expected an array of cards, got %s", root.Type)
	}

	var (
		cards    []card.Card
		warnings []string
		perr     error
	)
	root.ForEach(func(_, value gjson.Result) bool {
		c, warns, err := parseCard(len(cards), value)
		if err != nil {
			perr = malformed(source, "%w", err)
			return false
		}
		cards = append(cards, c)
		warnings = append(warnings, warns...)
		return true
	})
	if perr != nil {
		return nil, perr
	}

	g := newGraph(cards)
	g.warnings = warnings
	return g, nil
}

func parseCard(pos int, v gjson.Result) (card.Card, []string, error) {
	if !v.IsObject() {
		return card.Card{}, nil, fmt.Errorf("card %d: expected an object, got %s", pos, v.Type)
	}

	id := v.Get(FieldCardID)
	if !scalar(id) || id.String() == "" {
		return card.Card{}, nil, fmt.Errorf("card %d: %s is required", pos, FieldCardID)
	}

	c := card.Card{
		ID:              id.String(),
		Text:            v.Get(FieldText).String(),
		BackgroundImage: v.Get(FieldBackgroundImage).String(),
		Sound:           v.Get(FieldSound).String(),
		ChoiceA: card.Choice{
			Label: v.Get(FieldButton01Text).String(),
			Goto:  v.Get(FieldButton01Goto).String(),
		},
		ChoiceB: card.Choice{
			Label: v.Get(FieldButton02Text).String(),
			Goto:  v.Get(FieldButton02Goto).String(),
		},
	}

	var warnings []string
	warn := func(field string, raw gjson.Result) {
		warnings = append(warnings, fmt.Sprintf("card %q: invalid %s %s, using default", c.ID, field, raw.Raw))
	}

	var ok bool
	if c.TextColor, ok = parseColor(v.Get(FieldTextColor)); !ok {
		c.TextColor = card.Black
		if raw := v.Get(FieldTextColor); raw.Exists() && raw.Type != gjson.Null {
			warn(FieldTextColor, raw)
		}
	}
	if c.TextBackground, ok = parseColor(v.Get(FieldTextBackgroundColor)); !ok {
		c.TextBackground = card.None
		if raw := v.Get(FieldTextBackgroundColor); raw.Exists() && raw.Type != gjson.Null {
			warn(FieldTextBackgroundColor, raw)
		}
	}

	if raw := v.Get(FieldSoundRepeat); raw.Exists() {
		switch raw.Type {
		case gjson.True, gjson.False:
			c.SoundRepeat = raw.Bool()
		case gjson.String:
			b, err := strconv.ParseBool(raw.Str)
			if err != nil {
				warn(FieldSoundRepeat, raw)
			}
			c.SoundRepeat = b
		case gjson.Null:
		default:
			warn(FieldSoundRepeat, raw)
		}
	}

	if raw := v.Get(FieldAutoAdvance); raw.Exists() && raw.Type != gjson.Null {
		d, err := parseSeconds(raw)
		if err != nil {
			return card.Card{}, nil, fmt.Errorf("card %q: %s: %w", c.ID, FieldAutoAdvance, err)
		}
		c.AutoAdvance = d
		c.HasAutoAdvance = true
	}

	return c, warnings, nil
}

func scalar(r gjson.Result) bool {
	return r.Type == gjson.String || r.Type == gjson.Number
}

// parseColor reports false for absent and invalid values
func parseColor(r gjson.Result) (card.Color, bool) {
	switch r.Type {
	case gjson.Number:
		if r.Num != math.Trunc(r.Num) {
			return card.None, false
		}
		return card.ColorFromInt(r.Int())
	case gjson.String:
		return card.ParseColor(r.Str)
	default:
		return card.None, false
	}
}

// maxSeconds is the first delay a time.Duration cannot hold
const maxSeconds = float64(math.MaxInt64) / float64(time.Second)

func parseSeconds(r gjson.Result) (time.Duration, error) {
	var secs float64
	switch r.Type {
	case gjson.Number:
		secs = r.Num
	case gjson.String:
		f, err := strconv.ParseFloat(r.Str, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", r.Str)
		}
		secs = f
	default:
		return 0, fmt.Errorf("not a number: %s", r.Raw)
	}
	if secs < 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, fmt.Errorf("invalid delay %v", secs)
	}
	if secs >= maxSeconds {
		return 0, fmt.Errorf("delay %v out of range", secs)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
