// Package art turns background images into ANSI half-block art.
package art

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
)

// Renderer converts images to ANSI art of Width x Height terminal cells
type Renderer struct {
	Width     int
	Height    int
	TrueColor bool
	// CacheDir stores rendered art keyed by CacheKey; empty disables caching.
	CacheDir string
	// CacheKey namespaces cache entries, usually the game directory.
	CacheKey string
}

// Render decodes name from fsys and returns its ANSI art
func (r Renderer) Render(fsys fs.FS, name string) (string, error) {
	cachePath := ""
	if r.CacheDir != "" {
		sum := md5.Sum([]byte(fmt.Sprintf("%s|%s|%dx%d|%t", r.CacheKey, name, r.Width, r.Height, r.TrueColor)))
		cachePath = filepath.Join(r.CacheDir, fmt.Sprintf("%x.ansi", sum))
		if data, err := os.ReadFile(cachePath); err == nil {
			return string(data), nil
		}
	}

	file, err := fsys.Open(name)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image %s: %w", name, err)
	}

	ansiArt := ImageToAnsi(img, r.Width, r.Height, r.TrueColor)

	if cachePath != "" {
		if err := os.MkdirAll(r.CacheDir, 0755); err == nil {
			// A failed cache write only costs a re-render next time.
			_ = os.WriteFile(cachePath, []byte(ansiArt), 0644)
		}
	}
	return ansiArt, nil
}

// ImageToAnsi converts an image to ANSI art using upper half blocks: the
// top pixel pair is the foreground, the bottom pair the background.
func ImageToAnsi(img image.Image, width, height int, trueColor bool) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			col2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			fg := averageColor(col1, col2)
			bg := averageColor(col3, col4)

			buffer.WriteString(ansiColorString('▀', fg, bg, trueColor))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// ansiColorString formats a character with 24-bit or 256-color escapes
func ansiColorString(char rune, fg, bg colorful.Color, trueColor bool) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()

	if trueColor {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
			r1, g1, b1, r2, g2, b2, char)
	}
	return fmt.Sprintf("\x1b[38;5;%dm\x1b[48;5;%dm%c\x1b[0m",
		xterm256(r1, g1, b1), xterm256(r2, g2, b2), char)
}

// xterm256 maps an RGB value onto the 6x6x6 color cube
func xterm256(r, g, b uint8) int {
	level := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return 16 + 36*level(r) + 6*level(g) + level(b)
}
