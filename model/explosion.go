package model

import "math"

type Particle struct {
	ID     ElementID
	X, Y   float64
	VX, VY float64
	Life   float64
}

// Burst is one explosion. All its particles decay at the same rate, so
// the first one stands for the whole batch.
type Burst struct {
	X, Y      float64
	Particles []Particle
}

func (b *Burst) Done() bool {
	return len(b.Particles) == 0 || b.Particles[0].Life <= 0
}

type Explosions struct {
	cfg     *BurstConfig
	style   Style
	surface Surface
	ids     *idSource
	rnd     Rand

	bursts []*Burst
}

func (e *Explosions) Active() []*Burst {
	return e.bursts
}

// Spawn emits particles from (x, y) at equal angles with random speed.
func (e *Explosions) Spawn(x, y float64) *Burst {
	n := e.cfg.Particles
	b := &Burst{X: x, Y: y, Particles: make([]Particle, n)}
	for i := 0; i < n; i++ {
		angle := math.Pi * 2 * float64(i) / float64(n)
		speed := e.cfg.MinSpeed + e.rnd.Float64()*e.cfg.SpeedSpread
		p := Particle{
			ID:   e.ids.New(),
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: 1,
		}
		b.Particles[i] = p
		e.surface.Circle(p.ID, x, y, e.cfg.Radius, e.style)
	}
	e.bursts = append(e.bursts, b)
	return b
}

// Step advances every burst by one frame and drops the finished ones.
func (e *Explosions) Step() {
	live := e.bursts[:0]
	for _, b := range e.bursts {
		for i := range b.Particles {
			p := &b.Particles[i]
			p.X += p.VX
			p.Y += p.VY
			p.Life -= e.cfg.Decay
			p.VY += e.cfg.Gravity
			e.surface.Move(p.ID, p.X, p.Y, Immediate)
			e.surface.Fade(p.ID, math.Max(p.Life, 0), Immediate)
		}
		if b.Done() {
			e.remove(b)
			continue
		}
		live = append(live, b)
	}
	for i := len(live); i < len(e.bursts); i++ {
		e.bursts[i] = nil
	}
	e.bursts = live
}

func (e *Explosions) remove(b *Burst) {
	for _, p := range b.Particles {
		e.surface.Remove(p.ID, 0)
	}
}

func (e *Explosions) teardown() {
	for _, b := range e.bursts {
		e.remove(b)
	}
	e.bursts = nil
}
