package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/adventurer/internal/game"
)

func writeGame(t *testing.T, doc string, assets ...string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cyoa.json"), []byte(doc), 0644))
	for _, a := range assets {
		require.NoError(t, os.WriteFile(filepath.Join(dir, a), []byte("asset"), 0644))
	}
	return dir
}

func containsMessage(msgs []string, fragment string) bool {
	for _, m := range msgs {
		if strings.Contains(m, fragment) {
			return true
		}
	}
	return false
}

func TestValidGame(t *testing.T) {
	dir := writeGame(t, `[
	  {"card_id": "start", "text": "Hi", "background_image": "start.bmp", "sound": "hum.wav", "auto_advance": 1},
	  {"card_id": "home", "text": "Where?",
	   "button01_text": "Left", "button01_goto_card_id": "start",
	   "button02_text": "Stay", "button02_goto_card_id": "home"}
	]`, "start.bmp", "hum.wav")

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.True(t, results.Valid(), results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestMissingDocument(t *testing.T) {
	_, err := NewValidator(t.TempDir()).Validate()
	assert.Error(t, err)
}

func TestMalformedAndLegacyDocuments(t *testing.T) {
	results, err := NewValidator(writeGame(t, `{"card_id": "x"}`)).Validate()
	require.NoError(t, err)
	assert.False(t, results.Valid())

	results, err = NewValidator(writeGame(t, `[]`)).Validate()
	require.NoError(t, err)
	assert.True(t, containsMessage(results.Errors, "no cards"))

	results, err = NewValidator(writeGame(t, `[{"page_id": "x", "text": "old"}]`)).Validate()
	require.NoError(t, err)
	assert.True(t, containsMessage(results.Errors, "legacy page_id"))
}

func TestNavigationProblems(t *testing.T) {
	dir := writeGame(t, `[
	  {"card_id": "a", "text": "1",
	   "button01_text": "Go", "button01_goto_card_id": "nowhere",
	   "button02_text": "Lost"},
	  {"card_id": "a", "text": "2"},
	  {"card_id": "c", "text": "3", "button02_text": "Only B", "button02_goto_card_id": "a"},
	  {"card_id": "d", "text": "4", "auto_advance": 2, "button01_text": "Ignored", "button01_goto_card_id": "a"},
	  {"card_id": "e", "text": "5", "background_image": "gone.bmp", "sound": "gone.wav", "text_color": "purple", "auto_advance": 1}
	]`)

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)

	for _, want := range []string{
		`button01 goes to unknown card "nowhere"`,
		`button02 "Lost" has no goto card`,
		`duplicate card_id "a"`,
		`auto_advance on the last card`,
		`background image not found: gone.bmp`,
		`sound not found: gone.wav`,
	} {
		assert.True(t, containsMessage(results.Errors, want), "missing error %q in %v", want, results.Errors)
	}

	for _, want := range []string{
		`card "a": dead end`,
		`card "c": button02 is set without button01`,
		`card "d": auto_advance is set`,
		`card "c" (#2) is unreachable`,
		`invalid text_color`,
	} {
		assert.True(t, containsMessage(results.Warnings, want), "missing warning %q in %v", want, results.Warnings)
	}
}

func TestManifest(t *testing.T) {
	dir := writeGame(t, `[
	  {"card_id": "intro", "text": "Hi", "auto_advance": 1},
	  {"card_id": "home", "text": "Where?", "button01_text": "Again", "button01_goto_card_id": "home"}
	]`)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.toml"), []byte("[game]\nstart_card = \"home\"\n"), 0644))
	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.True(t, results.Valid(), results.Errors)
	assert.True(t, containsMessage(results.Warnings, `card "intro" (#0) is unreachable`), results.Warnings)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.toml"), []byte("[game]\nstart_card = \"nowhere\"\n"), 0644))
	results, err = NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.True(t, containsMessage(results.Errors, `start_card "nowhere"`), results.Errors)
}

func TestSampleGameIsClean(t *testing.T) {
	dir, _, err := game.InstallSample(t.TempDir())
	require.NoError(t, err)

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}
