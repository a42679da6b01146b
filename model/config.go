package model

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"time"
)

// Config holds every tunable of a Simulation.
type Config struct {
	CellSize float64
	Gap      float64

	// FillProbability is the chance a free slot gets a static cell.
	FillProbability  float64
	HoverRadius      float64
	MaxScale         float64
	BreatheAmplitude float64
	BreatheFrequency float64
	StrokeWidth      float64

	MinAgents, MaxAgents int

	StepInterval   time.Duration
	MoveDuration   time.Duration
	DeleteDuration time.Duration

	Burst  BurstConfig
	Colors Palette

	LabelFontSize float64
	LabelFade     time.Duration
	Words         []Word
}

type BurstConfig struct {
	Particles   int
	MinSpeed    float64
	SpeedSpread float64
	Decay       float64
	Gravity     float64
	Radius      float64
}

type Palette struct {
	Background  color.RGBA
	CellFill    color.RGBA
	AgentStroke color.RGBA
	Highlight   color.RGBA
	Particle    color.RGBA
	Label       color.RGBA
	LabelHover  color.RGBA
}

// Word is one label drawn letter by letter along a grid row.
type Word struct {
	Row  int
	Text string
	Font Font
}

func DefaultWords() []Word {
	return []Word{
		{Row: 0, Text: "DES", Font: FontBold},
		{Row: 2, Text: "PROJECTS", Font: FontRegular},
		{Row: 4, Text: "ABOUT", Font: FontRegular},
		{Row: 6, Text: "KYIV", Font: FontRegular},
		{Row: 8, Text: "2024", Font: FontBold},
	}
}

func DefaultConfig() Config {
	return Config{
		CellSize:         50,
		Gap:              7,
		FillProbability:  0.69,
		HoverRadius:      100,
		MaxScale:         1.5,
		BreatheAmplitude: 0.02,
		BreatheFrequency: 0.3,
		StrokeWidth:      2,
		MinAgents:        1,
		MaxAgents:        5,
		StepInterval:     200 * time.Millisecond,
		MoveDuration:     200 * time.Millisecond,
		DeleteDuration:   300 * time.Millisecond,
		Burst: BurstConfig{
			Particles:   20,
			MinSpeed:    5,
			SpeedSpread: 5,
			Decay:       0.02,
			Gravity:     0.2,
			Radius:      2,
		},
		Colors: Palette{
			Background:  color.RGBA{0x11, 0x11, 0x11, 0xff},
			CellFill:    color.RGBA{0x00, 0x00, 0x00, 0xff},
			AgentStroke: color.RGBA{0xff, 0xa5, 0x00, 0xff},
			Highlight:   color.RGBA{0xff, 0x00, 0x00, 0xff},
			Particle:    color.RGBA{0xff, 0x00, 0x00, 0xff},
			Label:       color.RGBA{0x00, 0xff, 0x00, 0xff},
			LabelHover:  color.RGBA{0xff, 0x00, 0x00, 0xff},
		},
		LabelFontSize: 46,
		LabelFade:     200 * time.Millisecond,
		Words:         DefaultWords(),
	}
}

// ToxicGreen draws rgb(r,255,b) with r and b in [0,150).
func ToxicGreen(rnd Rand) color.RGBA {
	r := uint8(intn(rnd, 150))
	b := uint8(intn(rnd, 150))
	return color.RGBA{R: r, G: 255, B: b, A: 0xff}
}

// ReadWords parses a label layout, one word per line:
//
//	<row> <bold|regular> <TEXT>
//
// Blank lines and lines starting with # are ignored.
func ReadWords(reader io.Reader) ([]Word, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	words := make([]Word, 0)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want <row> <font> <text>, got %q", line, s)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil || row < 0 {
			return nil, fmt.Errorf("line %d: bad row %q", line, fields[0])
		}
		var f Font
		switch strings.ToLower(fields[1]) {
		case "bold":
			f = FontBold
		case "regular":
			f = FontRegular
		default:
			return nil, fmt.Errorf("line %d: unknown font %q", line, fields[1])
		}
		words = append(words, Word{Row: row, Font: f, Text: strings.Join(fields[2:], " ")})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return words, nil
}
