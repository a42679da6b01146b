package main

import (
	"image/color"

	"github.com/zucenko/toxicgrid/model"
)

type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindText
)

// Element is the drawable state behind one model.ElementID.
type Element struct {
	Kind Kind
	// X, Y is the top-left corner for rects and the center otherwise.
	X, Y   float64
	Size   float64
	Radius float64

	Scale   float64
	Opacity float64

	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64

	Text     string
	Font     model.Font
	FontSize float64
}

func lerp(from, to float64, p float32) float64 {
	return from + (to-from)*float64(p)
}

func lerpColor(from, to color.RGBA, p float32) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(lerp(float64(a), float64(b), p) + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
