package handlers

import (
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"

	"graphbook/internal/contextutil"
	"graphbook/internal/layout"
	"graphbook/internal/render"
	"graphbook/internal/scene"
	"graphbook/internal/service"
)

// settleTickCap bounds the server-side layout loop for SVG rendering.
const settleTickCap = 600

// GraphHandler serves a file's graph as JSON and as a settled SVG.
type GraphHandler struct {
	service service.GraphService
	width   float64
	height  float64
}

// NewGraphHandler creates a new GraphHandler rendering into a width×height
// viewport.
func NewGraphHandler(svc service.GraphService, width, height float64) *GraphHandler {
	return &GraphHandler{service: svc, width: width, height: height}
}

// graphResponse is the collection read model: the file's nodes plus the
// edges whose endpoints both belong to the collection.
type graphResponse struct {
	Nodes []service.Node `json:"nodes"`
	Edges []service.Edge `json:"edges"`
}

// Get returns the file's graph as JSON.
func (h *GraphHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.load(r)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load graph")
		return
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// SVG runs the layout engine to rest server-side and writes the scene as
// an SVG document.
func (h *GraphHandler) SVG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	resp, err := h.load(r)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load graph")
		return
	}

	g := scene.Build(resp.Nodes, resp.Edges, h.width, h.height, rand.New(rand.NewSource(rand.Int63())), nil)
	sim := layout.New(layout.DefaultConfig(h.width, h.height))
	sim.SetGraph(g)
	defer sim.Stop()
	for i := 0; i < settleTickCap && sim.Tick(); i++ {
	}

	renderer := render.New(h.width, h.height)
	renderer.Reconcile(g)

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := renderer.WriteSVG(w); err != nil {
		logger.ErrorContext(ctx, "failed to write svg", "error", err)
	}
}

// load fetches the file's nodes and restricts the global edge set to
// in-collection pairs.
func (h *GraphHandler) load(r *http.Request) (graphResponse, error) {
	ctx := r.Context()
	fileID := chi.URLParam(r, "id")

	nodes, err := h.service.ListFileNodes(ctx, fileID)
	if err != nil {
		return graphResponse{}, err
	}
	edges, err := h.service.ListEdges(ctx)
	if err != nil {
		return graphResponse{}, err
	}

	member := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		member[n.ID] = true
	}
	filtered := make([]service.Edge, 0, len(edges))
	for _, e := range edges {
		if member[e.Source.ID] && member[e.Target.ID] {
			filtered = append(filtered, e)
		}
	}

	return graphResponse{Nodes: nodes, Edges: filtered}, nil
}
