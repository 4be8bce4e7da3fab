package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"graphbook/internal/service"
)

// NodeHandler handles node CRUD requests.
type NodeHandler struct {
	service service.GraphService
}

// NewNodeHandler creates a new NodeHandler.
func NewNodeHandler(svc service.GraphService) *NodeHandler {
	return &NodeHandler{service: svc}
}

// List returns every node.
func (h *NodeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	nodes, err := h.service.ListNodes(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list nodes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, nodes)
}

// Create creates a node.
func (h *NodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.CreateNodeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	node, err := h.service.CreateNode(ctx, input)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to create node")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, node)
}

// Get returns one node by id.
func (h *NodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	node, err := h.service.GetNode(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get node")
		return
	}
	writeJSON(ctx, w, http.StatusOK, node)
}

// Update applies a partial update to a node.
func (h *NodeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.UpdateNodeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	node, err := h.service.UpdateNode(ctx, chi.URLParam(r, "id"), input)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to update node")
		return
	}
	writeJSON(ctx, w, http.StatusOK, node)
}

// UpdatePosition stores a node's layout position. This is the lightweight
// path drag persistence uses.
func (h *NodeHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var pos service.Position
	if err := json.NewDecoder(r.Body).Decode(&pos); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	node, err := h.service.UpdateNodePosition(ctx, chi.URLParam(r, "id"), pos)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to update node position")
		return
	}
	writeJSON(ctx, w, http.StatusOK, node)
}

// Delete removes a node. Its edges and file memberships go with it.
func (h *NodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.DeleteNode(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(ctx, w, err, "Failed to delete node")
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Node deleted"})
}
