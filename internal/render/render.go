// Package render reconciles scene entities against a retained set of
// visuals: enter for new ids, update in place for surviving ones, exit for
// removed ones. Visuals are never torn down wholesale, so drag and
// selection state survive data refreshes. The retained scene can be written
// out as an SVG document.
package render

import (
	"fmt"
	"html"
	"io"
	"sort"

	"graphbook/internal/scene"
)

const (
	nodeRadius = 20
	labelDX    = 25
	labelDY    = 4
)

// NodeVisual is the retained visual for one node. The struct identity is
// stable across reconciliations: an update re-binds its fields, it does not
// allocate a new visual.
type NodeVisual struct {
	ID          string
	Label       string
	X, Y        float64
	Highlighted bool
}

// EdgeVisual is the retained visual for one directed edge.
type EdgeVisual struct {
	ID       string
	SourceID string
	TargetID string
	X1, Y1   float64
	X2, Y2   float64
	Selected bool
}

// Trace is the provisional dashed line drawn while a link is pending.
type Trace struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Diff reports what one reconciliation pass did.
type Diff struct {
	EnteredNodes []string
	ExitedNodes  []string
	EnteredEdges []string
	ExitedEdges  []string
	UpdatedNodes int
	UpdatedEdges int
}

// Renderer holds the retained scene. The logical viewBox is fixed at mount
// time; later container resizes must not make the layout jump.
type Renderer struct {
	width  float64
	height float64

	nodes map[string]*NodeVisual
	edges map[string]*EdgeVisual
	trace *Trace
}

// New creates a renderer with a width×height viewBox.
func New(width, height float64) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		nodes:  make(map[string]*NodeVisual),
		edges:  make(map[string]*EdgeVisual),
	}
}

// Reconcile diffs the graph against the retained visuals, keyed by id.
// Entities new to the scene enter, surviving ones are updated in place, and
// visuals whose entity is gone exit.
func (r *Renderer) Reconcile(g *scene.Graph) Diff {
	var diff Diff

	seenNodes := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		seenNodes[n.ID] = true
		if v, ok := r.nodes[n.ID]; ok {
			v.Label = n.Label()
			v.X, v.Y = n.X, n.Y
			diff.UpdatedNodes++
			continue
		}
		r.nodes[n.ID] = &NodeVisual{ID: n.ID, Label: n.Label(), X: n.X, Y: n.Y}
		diff.EnteredNodes = append(diff.EnteredNodes, n.ID)
	}
	for id := range r.nodes {
		if !seenNodes[id] {
			delete(r.nodes, id)
			diff.ExitedNodes = append(diff.ExitedNodes, id)
		}
	}

	seenEdges := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		seenEdges[e.ID] = true
		if v, ok := r.edges[e.ID]; ok {
			v.SourceID, v.TargetID = e.Source.ID, e.Target.ID
			v.X1, v.Y1 = e.Source.X, e.Source.Y
			v.X2, v.Y2 = e.Target.X, e.Target.Y
			diff.UpdatedEdges++
			continue
		}
		r.edges[e.ID] = &EdgeVisual{
			ID:       e.ID,
			SourceID: e.Source.ID,
			TargetID: e.Target.ID,
			X1:       e.Source.X, Y1: e.Source.Y,
			X2: e.Target.X, Y2: e.Target.Y,
		}
		diff.EnteredEdges = append(diff.EnteredEdges, e.ID)
	}
	for id := range r.edges {
		if !seenEdges[id] {
			delete(r.edges, id)
			diff.ExitedEdges = append(diff.ExitedEdges, id)
		}
	}

	return diff
}

// ApplyTick copies current simulation coordinates into the retained
// visuals. Position-dependent attributes only; nothing enters or exits.
func (r *Renderer) ApplyTick(g *scene.Graph) {
	for _, n := range g.Nodes {
		if v, ok := r.nodes[n.ID]; ok {
			v.X, v.Y = n.X, n.Y
		}
	}
	for _, e := range g.Edges {
		if v, ok := r.edges[e.ID]; ok {
			v.X1, v.Y1 = e.Source.X, e.Source.Y
			v.X2, v.Y2 = e.Target.X, e.Target.Y
		}
	}
}

// Node returns the retained visual for a node id.
func (r *Renderer) Node(id string) (*NodeVisual, bool) {
	v, ok := r.nodes[id]
	return v, ok
}

// Edge returns the retained visual for an edge id.
func (r *Renderer) Edge(id string) (*EdgeVisual, bool) {
	v, ok := r.edges[id]
	return v, ok
}

// SetTrace draws the provisional link line from (x1,y1) to (x2,y2).
func (r *Renderer) SetTrace(x1, y1, x2, y2 float64) {
	r.trace = &Trace{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// MoveTrace updates the free end of the provisional link line. A move with
// no active trace is ignored.
func (r *Renderer) MoveTrace(x, y float64) {
	if r.trace == nil {
		return
	}
	r.trace.X2, r.trace.Y2 = x, y
}

// ClearTrace removes the provisional link line.
func (r *Renderer) ClearTrace() {
	r.trace = nil
}

// SelectEdge marks one edge selected, clearing any other.
func (r *Renderer) SelectEdge(id string) {
	for _, v := range r.edges {
		v.Selected = v.ID == id
	}
}

// ClearEdgeSelection deselects every edge.
func (r *Renderer) ClearEdgeSelection() {
	for _, v := range r.edges {
		v.Selected = false
	}
}

// HighlightNode marks one node highlighted, clearing any other.
func (r *Renderer) HighlightNode(id string) {
	for _, v := range r.nodes {
		v.Highlighted = v.ID == id
	}
}

// ClearHighlight removes every node highlight.
func (r *Renderer) ClearHighlight() {
	for _, v := range r.nodes {
		v.Highlighted = false
	}
}

// WriteSVG writes the retained scene as an SVG document. The arrowhead
// marker is defined once in defs and referenced by every edge. Output is
// sorted by id so documents are stable across runs.
func (r *Renderer) WriteSVG(w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">`+"\n", r.width, r.height); err != nil {
		return err
	}

	const defs = `<defs><marker id="arrowhead" viewBox="0 -5 10 10" refX="20" refY="0" markerWidth="6" markerHeight="6" orient="auto"><path d="M0,-5L10,0L0,5" fill="#999"/></marker></defs>` + "\n"
	if _, err := io.WriteString(w, defs); err != nil {
		return err
	}

	for _, v := range sortedEdges(r.edges) {
		class := "edge"
		if v.Selected {
			class = "edge selected"
		}
		if _, err := fmt.Fprintf(w,
			`<line class=%q x1="%g" y1="%g" x2="%g" y2="%g" stroke="#999" marker-end="url(#arrowhead)"/>`+"\n",
			class, v.X1, v.Y1, v.X2, v.Y2); err != nil {
			return err
		}
	}

	if r.trace != nil {
		if _, err := fmt.Fprintf(w,
			`<line class="trace" x1="%g" y1="%g" x2="%g" y2="%g" stroke="#999" stroke-dasharray="5,5"/>`+"\n",
			r.trace.X1, r.trace.Y1, r.trace.X2, r.trace.Y2); err != nil {
			return err
		}
	}

	for _, v := range sortedNodes(r.nodes) {
		fill := "#69b3a2"
		if v.Highlighted {
			fill = "#ffab00"
		}
		if _, err := fmt.Fprintf(w,
			`<g class="node" transform="translate(%g,%g)"><circle r="%d" fill=%q/><text dx="%d" dy="%d">%s</text></g>`+"\n",
			v.X, v.Y, nodeRadius, fill, labelDX, labelDY, html.EscapeString(v.Label)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</svg>\n")
	return err
}

func sortedNodes(m map[string]*NodeVisual) []*NodeVisual {
	out := make([]*NodeVisual, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedEdges(m map[string]*EdgeVisual) []*EdgeVisual {
	out := make([]*EdgeVisual, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
