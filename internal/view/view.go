// Package view composes the scene adapter, layout engine, interaction
// machine and renderer into a graph view over the data API. The controller
// is single-goroutine by contract: callers serialize Load, Dispatch and
// Tick the way a UI event loop would.
package view

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"graphbook/internal/contextutil"
	"graphbook/internal/interaction"
	"graphbook/internal/layout"
	"graphbook/internal/render"
	"graphbook/internal/scene"
	"graphbook/internal/service"
)

// Config configures a mounted graph view.
type Config struct {
	FileID string // collection to display; empty shows every node
	Width  float64
	Height float64
	Rand   *rand.Rand // source for initial placement; nil uses a default

	// OnActivateNode opens a node's read view. Optional.
	OnActivateNode func(id string)
	// OnEditNode opens a node's edit form. Optional.
	OnEditNode func(id string)
}

// Controller owns the lifecycle of one mounted graph view.
type Controller struct {
	api service.GraphService
	cfg Config
	rng *rand.Rand

	graph    *scene.Graph
	sim      *layout.Simulation
	renderer *render.Renderer
	state    interaction.State

	closeOnce sync.Once
}

// NewController mounts a graph view. The renderer's viewBox is fixed from
// the configured size and held stable for the controller's lifetime.
func NewController(api service.GraphService, cfg Config) *Controller {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Controller{
		api:      api,
		cfg:      cfg,
		rng:      rng,
		sim:      layout.New(layout.DefaultConfig(cfg.Width, cfg.Height)),
		renderer: render.New(cfg.Width, cfg.Height),
	}
}

// Load runs the fetch-filter-adapt cycle: fetch the collection's nodes and
// the full edge set, adapt them into scene entities (dangling edges drop
// out here), and hand the result to the simulation and renderer. Positions
// of surviving nodes carry over so a refresh never restarts the layout.
func (c *Controller) Load(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	var nodes []service.Node
	var err error
	if c.cfg.FileID == "" {
		nodes, err = c.api.ListNodes(ctx)
	} else {
		nodes, err = c.api.ListFileNodes(ctx, c.cfg.FileID)
	}
	if err != nil {
		return fmt.Errorf("failed to load nodes: %w", err)
	}
	edges, err := c.api.ListEdges(ctx)
	if err != nil {
		return fmt.Errorf("failed to load edges: %w", err)
	}

	c.graph = scene.Build(nodes, edges, c.cfg.Width, c.cfg.Height, c.rng, c.graph)
	c.sim.SetGraph(c.graph)
	c.renderer.Reconcile(c.graph)

	logger.DebugContext(ctx, "graph view loaded",
		"file_id", c.cfg.FileID, "nodes", len(c.graph.Nodes), "edges", len(c.graph.Edges))
	return nil
}

// SetFile switches the displayed collection and reloads. The simulation
// instance is reused across the transition to avoid restart jank.
func (c *Controller) SetFile(ctx context.Context, fileID string) error {
	c.cfg.FileID = fileID
	return c.Load(ctx)
}

// Tick advances the simulation one step and pushes the new coordinates
// into the retained visuals. Returns false once the layout is at rest.
func (c *Controller) Tick() bool {
	hot := c.sim.Tick()
	if c.graph != nil {
		c.renderer.ApplyTick(c.graph)
	}
	return hot
}

// Run settles the layout continuously until it cools or the context ends,
// updating visuals after every tick.
func (c *Controller) Run(ctx context.Context) error {
	return c.sim.Run(ctx, func() {
		if c.graph != nil {
			c.renderer.ApplyTick(c.graph)
		}
	})
}

// State returns the interaction state.
func (c *Controller) State() interaction.State {
	return c.state
}

// Scene returns the current scene graph.
func (c *Controller) Scene() *scene.Graph {
	return c.graph
}

// Renderer returns the retained scene renderer.
func (c *Controller) Renderer() *render.Renderer {
	return c.renderer
}

// Dispatch feeds one input event through the interaction machine and
// executes the resulting effects in order. Persistence effects go through
// the data API; node moves are optimistic, everything else waits for the
// API before the scene refreshes.
func (c *Controller) Dispatch(ctx context.Context, ev interaction.Event) error {
	next, effects := interaction.Transition(c.state, ev)
	c.state = next

	for _, effect := range effects {
		if err := c.apply(ctx, effect); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) apply(ctx context.Context, effect interaction.Effect) error {
	logger := contextutil.LoggerFromContext(ctx)

	switch e := effect.(type) {
	case interaction.ActivateNode:
		if c.cfg.OnActivateNode != nil {
			c.cfg.OnActivateNode(e.ID)
		}
	case interaction.RequestNodeEdit:
		if c.cfg.OnEditNode != nil {
			c.cfg.OnEditNode(e.ID)
		}
	case interaction.SelectEdge:
		c.renderer.SelectEdge(e.ID)
	case interaction.ClearEdgeSelection:
		c.renderer.ClearEdgeSelection()
	case interaction.HighlightSource:
		c.renderer.HighlightNode(e.ID)
	case interaction.ClearSourceHighlight:
		c.renderer.ClearHighlight()
	case interaction.BeginLinkTrace:
		if n, ok := c.graph.Node(e.SourceID); ok {
			c.renderer.SetTrace(n.X, n.Y, n.X, n.Y)
		}
	case interaction.UpdateLinkTrace:
		c.renderer.MoveTrace(e.X, e.Y)
	case interaction.ClearLinkTrace:
		c.renderer.ClearTrace()
	case interaction.BeginDrag:
		if n, ok := c.graph.Node(e.ID); ok {
			c.sim.DragStart(n)
			c.sim.Drag(n, e.X, e.Y)
		}
	case interaction.ContinueDrag:
		if n, ok := c.graph.Node(e.ID); ok {
			c.sim.Drag(n, e.X, e.Y)
		}
	case interaction.EndDrag:
		if n, ok := c.graph.Node(e.ID); ok {
			c.sim.DragEnd(n)
		}
	case interaction.MoveNode:
		return c.persistMove(ctx, e)
	case interaction.RequestEdge:
		if _, err := c.api.CreateEdge(ctx, service.CreateEdgeInput{
			Source: service.Ref(e.Source),
			Target: service.Ref(e.Target),
		}); err != nil {
			return fmt.Errorf("failed to create edge: %w", err)
		}
		return c.Load(ctx)
	case interaction.RequestEdgeDelete:
		if err := c.api.DeleteEdge(ctx, e.ID); err != nil {
			return fmt.Errorf("failed to delete edge: %w", err)
		}
		return c.Load(ctx)
	default:
		logger.WarnContext(ctx, "unhandled interaction effect", "effect", fmt.Sprintf("%T", effect))
	}
	return nil
}

// persistMove is the one optimistic path: the scene already shows the node
// at the release coordinate, the API call follows. A failure triggers a
// full reload as the sole consistency mechanism — no localized rollback.
func (c *Controller) persistMove(ctx context.Context, e interaction.MoveNode) error {
	if n, ok := c.graph.Node(e.ID); ok {
		n.Pin(e.X, e.Y)
		c.renderer.ApplyTick(c.graph)
	}

	if _, err := c.api.UpdateNodePosition(ctx, e.ID, service.Position{X: e.X, Y: e.Y}); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "move persistence failed, reloading",
			"node_id", e.ID, "error", err)
		if loadErr := c.Load(ctx); loadErr != nil {
			return loadErr
		}
		return fmt.Errorf("failed to persist node position: %w", err)
	}
	return nil
}

// Close stops the simulation. Safe to call more than once.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.sim.Stop()
	})
}
