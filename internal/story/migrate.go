package story

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Legacy page-based field names and their card-based replacements
var legacyFields = []struct{ from, to string }{
	{"page_id", FieldCardID},
	{"button01_goto_page_id", FieldButton01Goto},
	{"button02_goto_page_id", FieldButton02Goto},
}

// IsLegacy reports whether a card document uses the page_id schema
func IsLegacy(data []byte) bool {
	legacy := false
	gjson.ParseBytes(data).ForEach(func(_, value gjson.Result) bool {
		for _, f := range legacyFields {
			if value.Get(f.from).Exists() {
				legacy = true
				return false
			}
		}
		return true
	})
	return legacy
}

// MigrateLegacy rewrites a page_id document into the card_id schema and
// returns the rewritten document with the number of cards changed. Field
// order and all other fields are preserved.
func MigrateLegacy(data []byte) ([]byte, int, error) {
	if !gjson.ValidBytes(data) {
		return nil, 0, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, 0, fmt.Errorf("%w: expected an array of cards", ErrMalformed)
	}

	out := data
	changed := 0
	for i, value := range root.Array() {
		touched := false
		for _, f := range legacyFields {
			old := value.Get(f.from)
			if !old.Exists() {
				continue
			}
			if value.Get(f.to).Exists() {
				return nil, 0, fmt.Errorf("%w: card %d has both %s and %s", ErrMalformed, i, f.from, f.to)
			}
			var err error
			if out, err = sjson.SetRawBytes(out, fmt.Sprintf("%d.%s", i, f.to), []byte(old.Raw)); err != nil {
				return nil, 0, fmt.Errorf("card %d: set %s: %w", i, f.to, err)
			}
			if out, err = sjson.DeleteBytes(out, fmt.Sprintf("%d.%s", i, f.from)); err != nil {
				return nil, 0, fmt.Errorf("card %d: delete %s: %w", i, f.from, err)
			}
			touched = true
		}
		if touched {
			changed++
		}
	}
	return out, changed, nil
}
