package render

import (
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Common Linux font paths, covering the usual Docker/Debian images. The
// first loadable path wins; a bitmap face is the last resort, so rendering
// never fails outright on a fontless host.
var fontPaths = []string{
	"/usr/share/fonts/truetype/noto/NotoSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/noto/NotoSans-Bold.ttf",
	"/usr/share/fonts/Adwaita/AdwaitaSans-Bold.ttf",
}

var (
	fontMu    sync.Mutex
	fontFaces = map[float64]font.Face{}
)

func getFont(points float64) font.Face {
	fontMu.Lock()
	defer fontMu.Unlock()

	if face, ok := fontFaces[points]; ok {
		return face
	}
	for _, path := range fontPaths {
		if face, err := gg.LoadFontFace(path, points); err == nil {
			fontFaces[points] = face
			return face
		}
	}
	fontFaces[points] = basicfont.Face7x13
	return basicfont.Face7x13
}
