package game

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed sample
var sample embed.FS

// SampleName is the game bundled with the binary
const SampleName = "robots"

// InstallSample copies the bundled game into libraryPath. An existing game
// of the same name is left alone.
func InstallSample(libraryPath string) (string, bool, error) {
	dest := filepath.Join(libraryPath, SampleName)
	if _, err := os.Stat(dest); err == nil {
		return dest, false, nil
	}

	root, err := fs.Sub(sample, "sample/"+SampleName)
	if err != nil {
		return "", false, err
	}
	if err := os.CopyFS(dest, root); err != nil {
		return "", false, fmt.Errorf("error installing %s: %w", SampleName, err)
	}
	return dest, true, nil
}
