package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zucenko/toxicgrid/model"
)

// Surface is the ebiten side of model.Surface: it keeps the element
// state the simulation commands and animates transitions with gween.
type Surface struct {
	elements map[model.ElementID]*Element
	order    []model.ElementID
	tweens   *Tweens
	faces    *Faces
}

func NewSurface(faces *Faces) *Surface {
	return &Surface{
		elements: make(map[model.ElementID]*Element),
		order:    make([]model.ElementID, 0),
		tweens:   NewTweens(),
		faces:    faces,
	}
}

func (s *Surface) add(id model.ElementID, e *Element) {
	if _, found := s.elements[id]; !found {
		s.order = append(s.order, id)
	}
	s.elements[id] = e
}

func (s *Surface) Rect(id model.ElementID, x, y, size float64, style model.Style) {
	s.add(id, &Element{
		Kind:        KindRect,
		X:           x,
		Y:           y,
		Size:        size,
		Scale:       1,
		Opacity:     1,
		Fill:        style.Fill,
		Stroke:      style.Stroke,
		StrokeWidth: style.StrokeWidth,
	})
}

func (s *Surface) Circle(id model.ElementID, cx, cy, radius float64, style model.Style) {
	s.add(id, &Element{
		Kind:    KindCircle,
		X:       cx,
		Y:       cy,
		Radius:  radius,
		Scale:   1,
		Opacity: 1,
		Fill:    style.Fill,
	})
}

func (s *Surface) Text(id model.ElementID, cx, cy float64, text string, style model.Style) {
	s.add(id, &Element{
		Kind:     KindText,
		X:        cx,
		Y:        cy,
		Scale:    1,
		Opacity:  1,
		Fill:     style.Fill,
		Text:     text,
		Font:     style.Font,
		FontSize: style.FontSize,
	})
}

func (s *Surface) Move(id model.ElementID, x, y float64, tr model.Transition) {
	e := s.elements[id]
	if e == nil {
		return
	}
	key := tweenKey{id: id, attr: attrPosition}
	if !tr.Animated() {
		s.tweens.cancel(key)
		e.X, e.Y = x, y
		return
	}
	fromX, fromY := e.X, e.Y
	s.tweens.Start(key, tr, func(p float32) {
		e.X = lerp(fromX, x, p)
		e.Y = lerp(fromY, y, p)
	})
}

func (s *Surface) Scale(id model.ElementID, scale float64, tr model.Transition) {
	e := s.elements[id]
	if e == nil {
		return
	}
	s.animate(tweenKey{id: id, attr: attrScale}, &e.Scale, scale, tr)
}

func (s *Surface) Fade(id model.ElementID, opacity float64, tr model.Transition) {
	e := s.elements[id]
	if e == nil {
		return
	}
	s.animate(tweenKey{id: id, attr: attrOpacity}, &e.Opacity, opacity, tr)
}

func (s *Surface) Stroke(id model.ElementID, c color.RGBA, tr model.Transition) {
	e := s.elements[id]
	if e == nil {
		return
	}
	s.animateColor(tweenKey{id: id, attr: attrStroke}, &e.Stroke, c, tr)
}

func (s *Surface) Fill(id model.ElementID, c color.RGBA, tr model.Transition) {
	e := s.elements[id]
	if e == nil {
		return
	}
	s.animateColor(tweenKey{id: id, attr: attrFill}, &e.Fill, c, tr)
}

func (s *Surface) Remove(id model.ElementID, after time.Duration) {
	if _, found := s.elements[id]; !found {
		return
	}
	if after <= 0 {
		s.drop(id)
		return
	}
	action := s.tweens.Start(tweenKey{id: id, attr: attrRemoval}, model.Transition{Duration: after}, nil)
	action.addOnFinish(func() {
		s.drop(id)
	})
}

func (s *Surface) animate(key tweenKey, field *float64, to float64, tr model.Transition) {
	if !tr.Animated() {
		s.tweens.cancel(key)
		*field = to
		return
	}
	from := *field
	s.tweens.Start(key, tr, func(p float32) {
		*field = lerp(from, to, p)
	})
}

func (s *Surface) animateColor(key tweenKey, field *color.RGBA, to color.RGBA, tr model.Transition) {
	if !tr.Animated() {
		s.tweens.cancel(key)
		*field = to
		return
	}
	from := *field
	s.tweens.Start(key, tr, func(p float32) {
		*field = lerpColor(from, to, p)
	})
}

func (s *Surface) drop(id model.ElementID) {
	s.tweens.CancelElement(id)
	delete(s.elements, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Element returns the live element for id, or nil.
func (s *Surface) Element(id model.ElementID) *Element {
	return s.elements[id]
}

func (s *Surface) Len() int {
	return len(s.elements)
}

// Update advances running transitions by dt.
func (s *Surface) Update(dt time.Duration) {
	s.tweens.Update(float32(dt.Seconds()))
}

// Draw paints elements in creation order, so later ones sit on top.
func (s *Surface) Draw(screen *ebiten.Image) {
	for _, id := range s.order {
		s.elements[id].Draw(screen, s.faces)
	}
}
