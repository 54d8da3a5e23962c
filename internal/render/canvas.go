package render

import (
	"errors"
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// ErrNoData signals that the input held nothing to draw; callers surface a
// text reply instead of an empty canvas.
var ErrNoData = errors.New("no data to render")

// Shared palette. Values mirror the card's dark theme.
var (
	colorBackground = rgb(20, 20, 20)
	colorBorder     = rgb(50, 50, 50)
	colorWhite      = rgb(255, 255, 255)
	colorBright     = rgb(200, 200, 200)
	colorMuted      = rgb(150, 150, 150)
	colorFaint      = rgb(100, 100, 100)
	colorEast       = rgb(0, 150, 255)
	colorWest       = rgb(255, 50, 50)
)

type color struct{ r, g, b int }

func rgb(r, g, b int) color { return color{r, g, b} }

func setColor(dc *gg.Context, c color) {
	dc.SetRGB255(c.r, c.g, c.b)
}

// newCanvas builds a fixed-size context with the dark background and the
// inset border every image type shares.
func newCanvas(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	setColor(dc, colorBackground)
	dc.Clear()

	setColor(dc, colorBorder)
	dc.SetLineWidth(5)
	dc.DrawRectangle(10, 10, float64(width-20), float64(height-20))
	dc.Stroke()
	return dc
}

// drawText places a string with an anchored alignment: ax/ay are the
// fractions of the text box aligned to (x, y).
func drawText(dc *gg.Context, s string, x, y float64, ax, ay float64, points float64, c color) {
	dc.SetFontFace(getFont(points))
	setColor(dc, c)
	dc.DrawStringAnchored(s, x, y, ax, ay)
}

// scaleImage resamples an image to the given size with a high-quality
// kernel.
func scaleImage(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
