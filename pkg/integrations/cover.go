package integrations

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	coverWidth  = 600
	coverHeight = 800
	coverScale  = 3
)

var (
	coverTop    = color.RGBA{0x26, 0x32, 0x38, 0xff}
	coverBottom = color.RGBA{0x4a, 0x3b, 0x6b, 0xff}
	coverInk    = color.RGBA{0xee, 0xff, 0xff, 0xff}
	coverAccent = color.RGBA{0xff, 0x6b, 0x9d, 0xff}
)

// RenderCover draws a plain PNG cover with the title and subtitle centred.
// The basic font only covers ASCII, so callers pass transliterated names.
func RenderCover(title, subtitle string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, coverWidth, coverHeight))
	for y := 0; y < coverHeight; y++ {
		c := blend(coverTop, coverBottom, float64(y)/coverHeight)
		draw.Draw(img, image.Rect(0, y, coverWidth, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
	draw.Draw(img, image.Rect(60, 380, coverWidth-60, 384), image.NewUniform(coverAccent), image.Point{}, draw.Src)

	drawCentered(img, title, 340, coverScale, coverInk)
	drawCentered(img, subtitle, 440, 2, coverInk)
	drawCentered(img, "PulseSoul", coverHeight-60, 1, coverAccent)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawCentered renders text at 1x and scales it up so short titles read as
// headings.
func drawCentered(dst *image.RGBA, text string, baseline, scale int, c color.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	maxWidth := (coverWidth - 40) / scale
	for width > maxWidth && len(text) > 4 {
		text = text[:len(text)-4] + "..."
		width = font.MeasureString(face, text).Ceil()
	}

	line := image.NewRGBA(image.Rect(0, 0, width, face.Height))
	d := &font.Drawer{
		Dst:  line,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	w, h := width*scale, face.Height*scale
	x := (coverWidth - w) / 2
	y := baseline - face.Ascent*scale
	draw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+w, y+h), line, line.Bounds(), draw.Over, nil)
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}
