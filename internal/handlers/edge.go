package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"graphbook/internal/service"
)

// EdgeHandler handles edge CRUD requests.
type EdgeHandler struct {
	service service.GraphService
}

// NewEdgeHandler creates a new EdgeHandler.
func NewEdgeHandler(svc service.GraphService) *EdgeHandler {
	return &EdgeHandler{service: svc}
}

// List returns every edge with populated source and target nodes.
func (h *EdgeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	edges, err := h.service.ListEdges(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list edges")
		return
	}
	writeJSON(ctx, w, http.StatusOK, edges)
}

// Create creates an edge. Source and target may be bare id strings or
// populated node objects.
func (h *EdgeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.CreateEdgeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	edge, err := h.service.CreateEdge(ctx, input)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to create edge")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, edge)
}

// Delete removes one edge by id.
func (h *EdgeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.DeleteEdge(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(ctx, w, err, "Failed to delete edge")
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Edge deleted"})
}

// DeleteByNode bulk-deletes every edge touching the node given by the
// nodeId query parameter.
func (h *EdgeHandler) DeleteByNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	nodeID := r.URL.Query().Get("nodeId")
	if nodeID == "" {
		writeError(w, http.StatusBadRequest, "nodeId query parameter is required")
		return
	}

	deleted, err := h.service.DeleteNodeEdges(ctx, nodeID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to delete edges")
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]int64{"deleted": deleted})
}
