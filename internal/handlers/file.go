package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"graphbook/internal/service"
)

// FileHandler handles file (collection) CRUD and membership requests.
type FileHandler struct {
	service service.GraphService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(svc service.GraphService) *FileHandler {
	return &FileHandler{service: svc}
}

// List returns every file ordered by sequence number, members populated.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	files, err := h.service.ListFiles(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list files")
		return
	}
	writeJSON(ctx, w, http.StatusOK, files)
}

// Create creates a file with the next sequence number.
func (h *FileHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.CreateFileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	file, err := h.service.CreateFile(ctx, input)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to create file")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, file)
}

// Get returns one file with its member nodes.
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	file, err := h.service.GetFile(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get file")
		return
	}
	writeJSON(ctx, w, http.StatusOK, file)
}

// Update applies a partial update to a file.
func (h *FileHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.UpdateFileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	file, err := h.service.UpdateFile(ctx, chi.URLParam(r, "id"), input)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to update file")
		return
	}
	writeJSON(ctx, w, http.StatusOK, file)
}

// Delete removes a file and its member nodes, then renumbers the sequence.
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.DeleteFile(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(ctx, w, err, "Failed to delete file")
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "File deleted"})
}

// addNodeRequest is the body for adding a node to a file.
type addNodeRequest struct {
	NodeID string `json:"nodeId"`
}

// AddNode adds an existing node to the file's member set.
func (h *FileHandler) AddNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NodeID == "" {
		writeError(w, http.StatusBadRequest, "nodeId is required")
		return
	}

	file, err := h.service.AddNodeToFile(ctx, chi.URLParam(r, "id"), req.NodeID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to add node to file")
		return
	}
	writeJSON(ctx, w, http.StatusOK, file)
}

// RemoveNode removes a node from the file's member set without deleting
// the node itself.
func (h *FileHandler) RemoveNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, err := h.service.RemoveNodeFromFile(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "nodeId"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to remove node from file")
		return
	}
	writeJSON(ctx, w, http.StatusOK, file)
}
