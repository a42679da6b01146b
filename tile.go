package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw paints the element. Rects scale about their own center.
func (e *Element) Draw(screen *ebiten.Image, faces *Faces) {
	if e.Opacity <= 0 || e.Scale <= 0 {
		return
	}
	switch e.Kind {
	case KindRect:
		size := e.Size * e.Scale
		x := float32(e.X + e.Size/2 - size/2)
		y := float32(e.Y + e.Size/2 - size/2)
		vector.DrawFilledRect(screen, x, y, float32(size), float32(size), faded(e.Fill, e.Opacity), true)
		vector.StrokeRect(screen, x, y, float32(size), float32(size),
			float32(e.StrokeWidth*e.Scale), faded(e.Stroke, e.Opacity), true)
	case KindCircle:
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y),
			float32(e.Radius*e.Scale), faded(e.Fill, e.Opacity), true)
	case KindText:
		if faces == nil {
			return
		}
		face := faces.Face(e.Font, e.FontSize)
		bounds := text.BoundString(face, e.Text)
		x := int(math.Round(e.X)) - bounds.Min.X - bounds.Dx()/2
		y := int(math.Round(e.Y)) - bounds.Min.Y - bounds.Dy()/2
		text.Draw(screen, e.Text, face, x, y, faded(e.Fill, e.Opacity))
	}
}

func faded(c color.RGBA, opacity float64) color.NRGBA {
	if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A)*opacity + 0.5)}
}
