package main

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/zucenko/toxicgrid/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const dpi = 72

type faceKey struct {
	font model.Font
	size float64
}

// Faces hands out font faces per label font and size, built lazily.
type Faces struct {
	fonts map[model.Font]*truetype.Font
	faces map[faceKey]font.Face
}

func LoadFaces() (*Faces, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Faces{
		fonts: map[model.Font]*truetype.Font{
			model.FontRegular: regular,
			model.FontBold:    bold,
		},
		faces: make(map[faceKey]font.Face),
	}, nil
}

func (f *Faces) Face(which model.Font, size float64) font.Face {
	key := faceKey{font: which, size: size}
	if face, found := f.faces[key]; found {
		return face
	}
	tt, found := f.fonts[which]
	if !found {
		tt = f.fonts[model.FontRegular]
	}
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	f.faces[key] = face
	return face
}
