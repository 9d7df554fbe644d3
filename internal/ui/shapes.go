// internal/ui/shapes.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var fillImg *ebiten.Image

// fillPolygon fills a convex polygon given as x,y pairs.
func fillPolygon(screen *ebiten.Image, clr color.Color, points ...[2]float32) {
	if len(points) < 3 {
		return
	}
	if fillImg == nil {
		fillImg = ebiten.NewImage(3, 3)
		fillImg.Fill(color.White)
	}
	var path vector.Path
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, fillImg.SubImage(fillImg.Bounds().Inset(1)).(*ebiten.Image), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokePolygon outlines a closed polygon.
func strokePolygon(screen *ebiten.Image, width float32, clr color.Color, points ...[2]float32) {
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(screen, p[0], p[1], q[0], q[1], width, clr, true)
	}
}

// drawTextCentered draws s centered on (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := cx - bounds.Dx()/2
	y := cy + bounds.Dy()/2 - bounds.Max.Y
	text.Draw(screen, s, face, x, y, clr)
}

// clickScale is the bounce applied to a control right after it was clicked.
func clickScale(elapsed float64) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}
