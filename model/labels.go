package model

import "github.com/tanema/gween/ease"

type letter struct {
	ID   ElementID
	Cell Cell
}

// Label is a word spelled one letter per slot along a row.
type Label struct {
	Word    Word
	letters []letter
	hovered bool
}

func (l *Label) Hovered() bool {
	return l.hovered
}

// Slots lists the slots the visible letters sit in.
func (l *Label) Slots() []Cell {
	out := make([]Cell, len(l.letters))
	for i, lt := range l.letters {
		out[i] = lt.Cell
	}
	return out
}

type Labels struct {
	cfg     *Config
	geom    Geometry
	surface Surface
	ids     *idSource

	labels []*Label
}

func (l *Labels) Labels() []*Label {
	return l.labels
}

// Populate draws every word. Letters that fall outside the grid are
// skipped, and so are words with no visible letter.
func (l *Labels) Populate(words []Word) {
	for _, w := range words {
		label := &Label{Word: w}
		for i, r := range []rune(w.Text) {
			at := Cell{Row: w.Row, Col: i}
			if !l.geom.Contains(at) {
				continue
			}
			lt := letter{ID: l.ids.New(), Cell: at}
			cx, cy := l.geom.Center(at)
			l.surface.Text(lt.ID, cx, cy, string(r), Style{
				Fill:     l.cfg.Colors.Label,
				Font:     w.Font,
				FontSize: l.cfg.LabelFontSize,
			})
			label.letters = append(label.letters, lt)
		}
		if len(label.letters) > 0 {
			l.labels = append(l.labels, label)
		}
	}
}

// Hover recolors a whole word while the pointer is over any of its
// letters.
func (l *Labels) Hover(px, py float64) {
	for _, label := range l.labels {
		over := false
		for _, lt := range label.letters {
			if l.geom.Hit(lt.Cell, px, py) {
				over = true
				break
			}
		}
		if over == label.hovered {
			continue
		}
		label.hovered = over
		fill := l.cfg.Colors.Label
		if over {
			fill = l.cfg.Colors.LabelHover
		}
		tr := Transition{Duration: l.cfg.LabelFade, Ease: ease.InOutCubic}
		for _, lt := range label.letters {
			l.surface.Fill(lt.ID, fill, tr)
		}
	}
}

func (l *Labels) teardown() {
	for _, label := range l.labels {
		for _, lt := range label.letters {
			l.surface.Remove(lt.ID, 0)
		}
	}
	l.labels = nil
}
