// Package ogimage renders the Open Graph share card for a career path.
package ogimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Card dimensions recommended for og:image.
const (
	Width  = 1200
	Height = 630
	margin = 80
)

var (
	backgroundTop    = color.RGBA{0xf0, 0xf4, 0xf8, 0xff}
	backgroundBottom = color.RGBA{0xee, 0xf2, 0xf5, 0xff}
	primary          = color.RGBA{0x0e, 0xa5, 0xe9, 0xff}
	primaryDark      = color.RGBA{0x02, 0x84, 0xc7, 0xff}
	neutral          = color.RGBA{0x64, 0x74, 0x8b, 0xff}
	ink              = color.RGBA{0x0f, 0x17, 0x2a, 0xff}
)

// Card is the text printed on the share image.
type Card struct {
	Eyebrow  string
	Name     string
	Title    string
	Subtitle string
	URL      string
}

// Render draws the card and encodes it as PNG.
func Render(c Card) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillGradient(img, backgroundTop, backgroundBottom)
	fillRect(img, image.Rect(0, 0, Width, 12), primary)
	fillRect(img, image.Rect(margin, 190, margin+120, 196), primaryDark)

	face := basicfont.Face7x13
	y := 110
	y = drawLine(img, face, strings.ToUpper(c.Eyebrow), margin, y, 3, primaryDark)
	y = drawLine(img, face, c.Name, margin, y+40, 6, ink)
	y = drawLine(img, face, c.Title, margin, y+30, 4, primary)
	for _, line := range wrap(c.Subtitle, (Width-2*margin)/(face.Advance*3)) {
		y = drawLine(img, face, line, margin, y+16, 3, neutral)
	}
	drawLine(img, face, c.URL, margin, Height-margin-13*2, 2, neutral)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLine renders s with the bitmap face, scales it by scale, and returns the
// y coordinate just below the drawn line.
func drawLine(dst *image.RGBA, face *basicfont.Face, s string, x, y, scale int, col color.Color) int {
	lineHeight := face.Metrics().Height.Ceil()
	if s == "" {
		return y + lineHeight*scale
	}
	w := font.MeasureString(face, s).Ceil()
	src := image.NewRGBA(image.Rect(0, 0, w, lineHeight))
	d := &font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	maxW := Width - margin - x
	dw := w * scale
	if dw > maxW {
		dw = maxW
	}
	xdraw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+dw, y+lineHeight*scale), src, src.Bounds(), xdraw.Over, nil)
	return y + lineHeight*scale
}

func fillGradient(img *image.RGBA, top, bottom color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / float64(b.Dy())
		row := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xff,
		}
		fillRect(img, image.Rect(b.Min.X, y, b.Max.X, y+1), row)
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	xdraw.Draw(img, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// wrap splits s into lines of at most width characters on word boundaries.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// Cache renders each card once.
type Cache struct {
	mu    sync.Mutex
	cards map[string][]byte
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{cards: make(map[string][]byte)}
}

// Get returns the PNG for key, rendering c on first use.
func (c *Cache) Get(key string, card Card) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.cards[key]; ok {
		return b, nil
	}
	b, err := Render(card)
	if err != nil {
		return nil, err
	}
	c.cards[key] = b
	return b, nil
}
