package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

var textFaces = map[font.Face]*text.GoXFace{}

// drawText draws s with its baseline at (x, y).
func drawText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	f, ok := textFaces[face]
	if !ok {
		f = text.NewGoXFace(face)
		textFaces[face] = f
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-f.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, f, op)
}
