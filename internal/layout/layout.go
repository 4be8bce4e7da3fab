// Package layout runs the force-directed simulation that assigns node
// positions: pairwise repulsion, link attraction toward a target separation,
// centering on the viewport, and collision avoidance between node markers.
package layout

import (
	"context"
	"math"
	"sync"
	"time"

	"graphbook/internal/scene"
)

// Config tunes the simulation forces.
type Config struct {
	Width  float64
	Height float64

	ChargeStrength float64 // pairwise repulsion, negative pushes apart
	LinkDistance   float64 // target separation of connected nodes
	CollideRadius  float64 // minimum distance between node centers
	ReheatAlpha    float64 // energy injected on data or viewport changes
}

// DefaultConfig returns the tuning the graph view uses.
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:          width,
		Height:         height,
		ChargeStrength: -500,
		LinkDistance:   150,
		CollideRadius:  40,
		ReheatAlpha:    0.3,
	}
}

const (
	alphaMin      = 0.001
	alphaDecay    = 0.0228 // 1 - alphaMin^(1/300)
	velocityDecay = 0.4
	tickInterval  = 16 * time.Millisecond
)

// Simulation iteratively settles node positions. It is not safe for
// concurrent use; the view controller serializes all access on one
// goroutine, matching the cooperative model the interaction layer assumes.
type Simulation struct {
	cfg   Config
	nodes []*scene.Node
	edges []*scene.Edge

	alpha       float64
	alphaTarget float64

	stopOnce sync.Once
	stopped  bool
}

// New creates a simulation with no nodes. Call SetGraph to load entities.
func New(cfg Config) *Simulation {
	return &Simulation{cfg: cfg, alpha: 1}
}

// SetGraph swaps the node and edge lists in place and reheats so the layout
// re-settles smoothly. Velocities live on the entities themselves, so
// carried-over nodes keep their momentum across the swap.
func (s *Simulation) SetGraph(g *scene.Graph) {
	s.nodes = g.Nodes
	s.edges = g.Edges
	s.Reheat()
}

// SetViewport updates the centering target and reheats.
func (s *Simulation) SetViewport(width, height float64) {
	s.cfg.Width = width
	s.cfg.Height = height
	s.Reheat()
}

// Reheat raises the simulation energy so it responds to a perturbation
// without a full restart.
func (s *Simulation) Reheat() {
	if s.alpha < s.cfg.ReheatAlpha {
		s.alpha = s.cfg.ReheatAlpha
	}
}

// Alpha returns the current energy parameter.
func (s *Simulation) Alpha() float64 {
	return s.alpha
}

// Settled reports whether the simulation has cooled to rest.
func (s *Simulation) Settled() bool {
	return s.alpha < alphaMin && s.alphaTarget < alphaMin
}

// DragStart pins the node at its current position and keeps the simulation
// warm for the duration of the drag so neighbors react to the movement.
func (s *Simulation) DragStart(n *scene.Node) {
	s.alphaTarget = s.cfg.ReheatAlpha
	s.Reheat()
	n.Pin(n.X, n.Y)
}

// Drag moves the pinned node to the pointer position.
func (s *Simulation) Drag(n *scene.Node, x, y float64) {
	n.Pin(x, y)
}

// DragEnd lets the simulation cool again. The node stays pinned at the
// release coordinate: a manual placement should not drift afterwards.
func (s *Simulation) DragEnd(n *scene.Node) {
	s.alphaTarget = 0
	n.Pin(n.X, n.Y)
}

// Tick advances the simulation one settling step and reports whether it is
// still hot. Pinned nodes are snapped to their fixed coordinate with zero
// velocity; everything else integrates accumulated forces.
func (s *Simulation) Tick() bool {
	if s.stopped || len(s.nodes) == 0 {
		return false
	}

	s.alpha += (s.alphaTarget - s.alpha) * alphaDecay

	s.applyCharge()
	s.applyLinks()
	s.applyCollision()

	for _, n := range s.nodes {
		if n.Pinned() {
			n.X, n.Y = *n.FX, *n.FY
			n.VX, n.VY = 0, 0
			continue
		}
		n.VX *= 1 - velocityDecay
		n.VY *= 1 - velocityDecay
		n.X += n.VX
		n.Y += n.VY
	}

	s.applyCentering()

	return !s.Settled()
}

// Run ticks the simulation on a fixed cadence, invoking onTick after each
// step, until it cools to rest, the context is cancelled, or Stop is
// called. It returns the context error if cancelled, nil otherwise.
func (s *Simulation) Run(ctx context.Context, onTick func()) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.Tick() {
				return nil
			}
			if onTick != nil {
				onTick()
			}
		}
	}
}

// Stop freezes the simulation permanently. Safe to call more than once.
func (s *Simulation) Stop() {
	s.stopOnce.Do(func() {
		s.stopped = true
		s.alpha = 0
		s.alphaTarget = 0
	})
}

// applyCharge accumulates pairwise repulsion, strength/dist² along the line
// between each pair.
func (s *Simulation) applyCharge() {
	for i, a := range s.nodes {
		for _, b := range s.nodes[i+1:] {
			dx := b.X - a.X
			dy := b.Y - a.Y
			distSq := dx*dx + dy*dy
			if distSq < 1 {
				distSq = 1
			}
			dist := math.Sqrt(distSq)
			force := s.cfg.ChargeStrength * s.alpha / distSq
			fx := force * dx / dist
			fy := force * dy / dist
			a.VX -= fx
			a.VY -= fy
			b.VX += fx
			b.VY += fy
		}
	}
}

// applyLinks pulls connected nodes toward the configured separation, split
// evenly between the two endpoints.
func (s *Simulation) applyLinks() {
	for _, e := range s.edges {
		dx := e.Target.X - e.Source.X
		dy := e.Target.Y - e.Source.Y
		dist := math.Hypot(dx, dy)
		if dist < 1 {
			dist = 1
		}
		displacement := (dist - s.cfg.LinkDistance) / dist * s.alpha * 0.5
		fx := dx * displacement
		fy := dy * displacement
		e.Target.VX -= fx
		e.Target.VY -= fy
		e.Source.VX += fx
		e.Source.VY += fy
	}
}

// applyCollision pushes apart any pair of centers closer than the collide
// radius.
func (s *Simulation) applyCollision() {
	minDist := s.cfg.CollideRadius
	for i, a := range s.nodes {
		for _, b := range s.nodes[i+1:] {
			dx := b.X - a.X
			dy := b.Y - a.Y
			dist := math.Hypot(dx, dy)
			if dist >= minDist {
				continue
			}
			if dist < 1e-6 {
				// coincident centers get a deterministic nudge
				dx, dy, dist = minDist, 0, minDist
			}
			overlap := (minDist - dist) / dist * 0.5
			fx := dx * overlap
			fy := dy * overlap
			a.VX -= fx
			a.VY -= fy
			b.VX += fx
			b.VY += fy
		}
	}
}

// applyCentering translates the whole layout so its centroid sits at the
// viewport center. Pinned nodes are excluded from the shift so a manual
// placement stays where the user put it.
func (s *Simulation) applyCentering() {
	var sx, sy float64
	free := 0
	for _, n := range s.nodes {
		if n.Pinned() {
			continue
		}
		sx += n.X
		sy += n.Y
		free++
	}
	if free == 0 {
		return
	}
	shiftX := (s.cfg.Width/2 - sx/float64(free)) * s.alpha
	shiftY := (s.cfg.Height/2 - sy/float64(free)) * s.alpha
	for _, n := range s.nodes {
		if n.Pinned() {
			continue
		}
		n.X += shiftX
		n.Y += shiftY
	}
}
