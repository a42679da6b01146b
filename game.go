package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/toxicgrid/model"
)

// PointerSource represents an input device pointing at the grid.
type PointerSource interface {
	Position() (int, int)
	IsJustPressed() bool
}

// MouseSource is a PointerSource implementation of mouse.
type MouseSource struct{}

func (m *MouseSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseSource) IsJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// TouchSource is a PointerSource implementation of touch.
type TouchSource struct {
	ID ebiten.TouchID
}

func (t *TouchSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchSource) IsJustPressed() bool {
	return inpututil.TouchPressDuration(t.ID) == 1
}

type Game struct {
	cfg   model.Config
	rnd   *rand.Rand
	faces *Faces
	debug bool

	// width, height is what the grid was built for; layoutW, layoutH is
	// what ebiten last asked for.
	width, height    int
	layoutW, layoutH int

	sim     *model.Simulation
	clock   *model.Clock
	surface *Surface
	last    time.Time

	mouse          MouseSource
	touches        []ebiten.TouchID
	mouseSeen      bool
	mouseX, mouseY int
}

func NewGame(cfg model.Config, faces *Faces, rnd *rand.Rand, debug bool) *Game {
	return &Game{
		cfg:     cfg,
		rnd:     rnd,
		faces:   faces,
		debug:   debug,
		touches: make([]ebiten.TouchID, 0),
	}
}

// rebuild tears the running grid down and lays out a fresh one for the
// given viewport.
func (g *Game) rebuild(width, height int, now time.Time) {
	if g.sim != nil {
		g.clock.Stop()
		g.sim.Teardown()
		log.Debugf("tore down %dx%d grid", g.width, g.height)
	}
	g.width, g.height = width, height
	g.surface = NewSurface(g.faces)
	g.sim = model.New(g.cfg, width, height, g.surface, g.rnd)
	g.sim.Populate()
	g.clock = model.NewClock(g.sim, g.cfg.StepInterval)
	g.clock.Start(now)
	g.last = now
	g.mouseSeen = false
	log.WithFields(log.Fields{
		"cols":   g.sim.Geometry.Cols,
		"rows":   g.sim.Geometry.Rows,
		"cells":  g.sim.Cells.Len(),
		"agents": g.sim.Agents.Len(),
	}).Info("grid built")
}

func (g *Game) Update() error {
	now := time.Now()
	if g.layoutW > 0 && g.layoutH > 0 && (g.layoutW != g.width || g.layoutH != g.height) {
		g.rebuild(g.layoutW, g.layoutH, now)
	}
	if g.sim == nil {
		return nil
	}
	dt := now.Sub(g.last)
	g.last = now

	g.handleMouse()
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		g.tap(&TouchSource{ID: id})
	}

	g.clock.Advance(now)
	g.surface.Update(dt)
	return nil
}

// handleMouse reports cursor moves. The first reading after a rebuild
// only sets the baseline.
func (g *Game) handleMouse() {
	x, y := g.mouse.Position()
	if g.mouseSeen && (x != g.mouseX || y != g.mouseY) {
		g.sim.PointerMove(float64(x), float64(y))
	}
	g.mouseSeen = true
	g.mouseX, g.mouseY = x, y
	if g.mouse.IsJustPressed() {
		g.sim.Click()
	}
}

func (g *Game) tap(src PointerSource) {
	x, y := src.Position()
	g.sim.PointerMove(float64(x), float64(y))
	if src.IsJustPressed() {
		g.sim.Click()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Colors.Background)
	if g.surface == nil {
		return
	}
	g.surface.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  cells %d  agents %d  bursts %d  ticks %d",
			ebiten.ActualTPS(),
			g.sim.Cells.Len(),
			g.sim.Agents.Len(),
			len(g.sim.Explosions.Active()),
			g.sim.Ticks(),
		), 4, 4)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close stops the clock and removes everything the grid drew.
func (g *Game) Close() {
	if g.sim == nil {
		return
	}
	g.clock.Stop()
	g.sim.Teardown()
}

type options struct {
	width, height int
	seed          int64
	labels        string
	debug         bool
}

func parseFlags() options {
	var opts options
	flag.IntVar(&opts.width, "width", 1024, "initial window width")
	flag.IntVar(&opts.height, "height", 768, "initial window height")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.StringVar(&opts.labels, "labels", "", "label layout file, defaults to the built-in words")
	flag.BoolVar(&opts.debug, "debug", false, "debug logging and overlay")
	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()
	if opts.debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg := model.DefaultConfig()
	if opts.labels != "" {
		words, err := LoadWords(opts.labels)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Words = words
	}

	faces, err := LoadFaces()
	if err != nil {
		log.Fatal(err)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)
	game := NewGame(cfg, faces, rand.New(rand.NewSource(seed)), opts.debug)

	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle("toxic grid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	game.Close()
}
