package model

import (
	"image/color"
	"time"

	"github.com/tanema/gween/ease"
)

type Font int

const (
	FontRegular Font = iota
	FontBold
)

func (f Font) Name() string {
	switch f {
	case FontBold:
		return "bold"
	default:
		return "regular"
	}
}

type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	Font        Font
	FontSize    float64
}

// Transition describes how a change is applied. The zero value applies it
// at once.
type Transition struct {
	Duration time.Duration
	Ease     ease.TweenFunc
}

var Immediate = Transition{}

func (t Transition) Animated() bool {
	return t.Duration > 0
}

// Surface is everything the simulation needs from a rendering backend.
// New elements start at scale 1 and opacity 1.
//
// Rect takes the top-left corner, Circle and Text take the center. Move
// uses the same anchor as the element's constructor. Scale is applied
// about the element's own center.
type Surface interface {
	Rect(id ElementID, x, y, size float64, style Style)
	Circle(id ElementID, cx, cy, radius float64, style Style)
	Text(id ElementID, cx, cy float64, s string, style Style)

	Move(id ElementID, x, y float64, tr Transition)
	Scale(id ElementID, scale float64, tr Transition)
	Fade(id ElementID, opacity float64, tr Transition)
	Stroke(id ElementID, c color.RGBA, tr Transition)
	Fill(id ElementID, c color.RGBA, tr Transition)

	// Remove drops the element once after has elapsed.
	Remove(id ElementID, after time.Duration)
}

// NopSurface discards every command. Headless simulations use it.
type NopSurface struct{}

func (NopSurface) Rect(ElementID, float64, float64, float64, Style) {}
func (NopSurface) Circle(ElementID, float64, float64, float64, Style) {}
func (NopSurface) Text(ElementID, float64, float64, string, Style) {}
func (NopSurface) Move(ElementID, float64, float64, Transition) {}
func (NopSurface) Scale(ElementID, float64, Transition) {}
func (NopSurface) Fade(ElementID, float64, Transition) {}
func (NopSurface) Stroke(ElementID, color.RGBA, Transition) {}
func (NopSurface) Fill(ElementID, color.RGBA, Transition) {}
func (NopSurface) Remove(ElementID, time.Duration) {}
