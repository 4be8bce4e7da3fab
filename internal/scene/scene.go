// Package scene holds the runtime entities the layout engine and renderer
// operate on. Entities exist only while a graph view is mounted; they are
// rebuilt from service records on every data refresh, carrying over live
// positions where possible.
package scene

import (
	"math/rand"

	"graphbook/internal/service"
)

// placementMargin keeps randomly placed nodes away from the viewport edge.
const placementMargin = 50

// Node is a node entity with live simulation state. X/Y are the current
// coordinates, VX/VY the accumulated velocity. FX/FY, when non-nil, pin the
// node at a fixed coordinate that the simulation must not move.
type Node struct {
	ID    string
	Title string
	Tags  []string

	X, Y   float64
	VX, VY float64
	FX, FY *float64
}

// Label returns the node's display label, falling back to the id when the
// title is empty.
func (n *Node) Label() string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}

// Pin fixes the node at (x, y).
func (n *Node) Pin(x, y float64) {
	n.X, n.Y = x, y
	fx, fy := x, y
	n.FX, n.FY = &fx, &fy
}

// Unpin releases the node back to free simulation.
func (n *Node) Unpin() {
	n.FX, n.FY = nil, nil
}

// Pinned reports whether the node holds a fixed coordinate.
func (n *Node) Pinned() bool {
	return n.FX != nil && n.FY != nil
}

// Edge is an edge entity whose endpoints are references into the scene's
// node list, never copies: position reads always see the simulation's
// current coordinates.
type Edge struct {
	ID     string
	Source *Node
	Target *Node
	Type   string
	Weight float64
}

// Graph is the adapted scene: nodes with coordinates assigned and edges
// restricted to pairs whose endpoints are both present.
type Graph struct {
	Nodes []*Node
	Edges []*Edge

	byID map[string]*Node
}

// Node looks up a node entity by id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Build adapts service records into scene entities for a width×height
// viewport. A node with a stored position starts pinned there so it does not
// drift until dragged; a node without one is placed uniformly at random
// inside the viewport margins and left free. Edges referencing a node that
// is not in the node list are dropped without error — that is the expected
// shape after an out-of-band delete. When prev is non-nil, live coordinates
// and velocities of surviving nodes are carried over so a refresh does not
// restart the layout.
func Build(nodes []service.Node, edges []service.Edge, width, height float64, rng *rand.Rand, prev *Graph) *Graph {
	g := &Graph{
		Nodes: make([]*Node, 0, len(nodes)),
		Edges: make([]*Edge, 0, len(edges)),
		byID:  make(map[string]*Node, len(nodes)),
	}

	for _, record := range nodes {
		entity := &Node{
			ID:    record.ID,
			Title: record.Title,
			Tags:  record.Tags,
		}
		switch {
		case prev != nil && carryOver(entity, prev):
			// live position wins over anything stored
		case record.Position != nil:
			entity.Pin(record.Position.X, record.Position.Y)
		default:
			entity.X = placementMargin + rng.Float64()*(width-2*placementMargin)
			entity.Y = placementMargin + rng.Float64()*(height-2*placementMargin)
		}
		g.Nodes = append(g.Nodes, entity)
		g.byID[entity.ID] = entity
	}

	for _, record := range edges {
		source, ok := g.byID[record.Source.ID]
		if !ok {
			continue
		}
		target, ok := g.byID[record.Target.ID]
		if !ok {
			continue
		}
		g.Edges = append(g.Edges, &Edge{
			ID:     record.ID,
			Source: source,
			Target: target,
			Type:   record.Type,
			Weight: record.Weight,
		})
	}

	return g
}

func carryOver(entity *Node, prev *Graph) bool {
	old, ok := prev.byID[entity.ID]
	if !ok {
		return false
	}
	entity.X, entity.Y = old.X, old.Y
	entity.VX, entity.VY = old.VX, old.VY
	if old.Pinned() {
		entity.Pin(*old.FX, *old.FY)
	}
	return true
}
