package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_graph_service.go -package=mocks -mock_names=GraphService=MockGraphService graphbook/internal/service GraphService

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"graphbook/internal/contextutil"
	"graphbook/internal/storage"
)

// CreateNodeInput carries the fields for creating a node.
type CreateNodeInput struct {
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Tags     []string  `json:"tags"`
	Position *Position `json:"position,omitempty"`
}

// UpdateNodeInput carries a partial node update; nil fields are left untouched.
type UpdateNodeInput struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Position *Position `json:"position,omitempty"`
}

// CreateEdgeInput carries the fields for creating an edge.
type CreateEdgeInput struct {
	Source NodeRef `json:"source"`
	Target NodeRef `json:"target"`
	Type   string  `json:"type,omitempty"`
	Weight float64 `json:"weight,omitempty"`
}

// CreateFileInput carries the fields for creating a file.
type CreateFileInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateFileInput carries a partial file update; nil fields are left untouched.
type UpdateFileInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// GraphService is the data API the graph view consumes. All mutations are
// persisted before they return; the visualization re-reads state afterwards
// instead of trusting its own copy.
type GraphService interface {
	ListNodes(ctx context.Context) ([]Node, error)
	ListFileNodes(ctx context.Context, fileID string) ([]Node, error)
	GetNode(ctx context.Context, id string) (Node, error)
	CreateNode(ctx context.Context, in CreateNodeInput) (Node, error)
	UpdateNode(ctx context.Context, id string, in UpdateNodeInput) (Node, error)
	UpdateNodePosition(ctx context.Context, id string, pos Position) (Node, error)
	DeleteNode(ctx context.Context, id string) error

	ListEdges(ctx context.Context) ([]Edge, error)
	CreateEdge(ctx context.Context, in CreateEdgeInput) (Edge, error)
	DeleteEdge(ctx context.Context, id string) error
	DeleteNodeEdges(ctx context.Context, nodeID string) (int64, error)

	ListFiles(ctx context.Context) ([]File, error)
	GetFile(ctx context.Context, id string) (File, error)
	CreateFile(ctx context.Context, in CreateFileInput) (File, error)
	UpdateFile(ctx context.Context, id string, in UpdateFileInput) (File, error)
	DeleteFile(ctx context.Context, id string) error
	AddNodeToFile(ctx context.Context, fileID, nodeID string) (File, error)
	RemoveNodeFromFile(ctx context.Context, fileID, nodeID string) (File, error)
}

// graphService implements GraphService over the storage repos.
type graphService struct {
	nodes storage.NodeStore
	edges storage.EdgeStore
	files storage.FileStore
}

// NewGraphService creates a new GraphService.
func NewGraphService(nodes storage.NodeStore, edges storage.EdgeStore, files storage.FileStore) GraphService {
	return &graphService{
		nodes: nodes,
		edges: edges,
		files: files,
	}
}

func (s *graphService) ListNodes(ctx context.Context) ([]Node, error) {
	records, err := s.nodes.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list nodes")
	}
	return toNodes(records), nil
}

func (s *graphService) ListFileNodes(ctx context.Context, fileID string) ([]Node, error) {
	if _, err := s.files.Get(ctx, fileID); err != nil {
		return nil, s.mapStorageErr(err, "file")
	}
	records, err := s.nodes.ListByFile(ctx, fileID)
	if err != nil {
		return nil, WrapError(err, "failed to list file nodes")
	}
	return toNodes(records), nil
}

func (s *graphService) GetNode(ctx context.Context, id string) (Node, error) {
	record, err := s.nodes.Get(ctx, id)
	if err != nil {
		return Node{}, s.mapStorageErr(err, "node")
	}
	return toNode(*record), nil
}

func (s *graphService) CreateNode(ctx context.Context, in CreateNodeInput) (Node, error) {
	logger := contextutil.LoggerFromContext(ctx)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Node{}, &ValidationError{Field: "title", Message: "cannot be empty"}
	}

	record := storage.NodeRecord{
		Title:   title,
		Content: in.Content,
		Tags:    in.Tags,
	}
	if in.Position != nil {
		record.PosX = sql.NullFloat64{Float64: in.Position.X, Valid: true}
		record.PosY = sql.NullFloat64{Float64: in.Position.Y, Valid: true}
	}
	if err := s.nodes.Create(ctx, &record); err != nil {
		return Node{}, WrapError(err, "failed to create node")
	}

	logger.InfoContext(ctx, "node created", "node_id", record.ID, "title", title)
	return toNode(record), nil
}

func (s *graphService) UpdateNode(ctx context.Context, id string, in UpdateNodeInput) (Node, error) {
	record, err := s.nodes.Get(ctx, id)
	if err != nil {
		return Node{}, s.mapStorageErr(err, "node")
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return Node{}, &ValidationError{Field: "title", Message: "cannot be empty"}
		}
		record.Title = title
	}
	if in.Content != nil {
		record.Content = *in.Content
	}
	if in.Tags != nil {
		record.Tags = in.Tags
	}
	if in.Position != nil {
		record.PosX = sql.NullFloat64{Float64: in.Position.X, Valid: true}
		record.PosY = sql.NullFloat64{Float64: in.Position.Y, Valid: true}
	}

	if err := s.nodes.Update(ctx, record); err != nil {
		return Node{}, s.mapStorageErr(err, "node")
	}
	return toNode(*record), nil
}

func (s *graphService) UpdateNodePosition(ctx context.Context, id string, pos Position) (Node, error) {
	if err := s.nodes.UpdatePosition(ctx, id, pos.X, pos.Y); err != nil {
		return Node{}, s.mapStorageErr(err, "node")
	}
	record, err := s.nodes.Get(ctx, id)
	if err != nil {
		return Node{}, s.mapStorageErr(err, "node")
	}
	return toNode(*record), nil
}

func (s *graphService) DeleteNode(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)
	if err := s.nodes.Delete(ctx, id); err != nil {
		return s.mapStorageErr(err, "node")
	}
	// Edges and file memberships are removed by the storage cascades.
	logger.InfoContext(ctx, "node deleted", "node_id", id)
	return nil
}

func (s *graphService) ListEdges(ctx context.Context) ([]Edge, error) {
	records, err := s.edges.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list edges")
	}
	nodeRecords, err := s.nodes.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list nodes")
	}
	byID := make(map[string]*Node, len(nodeRecords))
	for i := range nodeRecords {
		node := toNode(nodeRecords[i])
		byID[node.ID] = &node
	}

	edges := make([]Edge, 0, len(records))
	for _, record := range records {
		edge := toEdge(record)
		edge.Source.Node = byID[record.SourceID]
		edge.Target.Node = byID[record.TargetID]
		edges = append(edges, edge)
	}
	return edges, nil
}

func (s *graphService) CreateEdge(ctx context.Context, in CreateEdgeInput) (Edge, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if in.Source.ID == "" {
		return Edge{}, &ValidationError{Field: "source", Message: "is required"}
	}
	if in.Target.ID == "" {
		return Edge{}, &ValidationError{Field: "target", Message: "is required"}
	}
	if in.Source.ID == in.Target.ID {
		return Edge{}, &ValidationError{Field: "target", Message: "cannot equal source (self-loop)"}
	}
	// Both endpoints must exist at creation time.
	for _, ref := range []struct {
		field string
		id    string
	}{{"source", in.Source.ID}, {"target", in.Target.ID}} {
		if _, err := s.nodes.Get(ctx, ref.id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return Edge{}, &ValidationError{Field: ref.field, Message: "node does not exist"}
			}
			return Edge{}, WrapError(err, "failed to check edge endpoint")
		}
	}

	record := storage.EdgeRecord{
		SourceID: in.Source.ID,
		TargetID: in.Target.ID,
		Type:     in.Type,
		Weight:   in.Weight,
	}
	if err := s.edges.Create(ctx, &record); err != nil {
		return Edge{}, WrapError(err, "failed to create edge")
	}

	logger.InfoContext(ctx, "edge created", "edge_id", record.ID,
		"source", record.SourceID, "target", record.TargetID, "type", record.Type)
	return toEdge(record), nil
}

func (s *graphService) DeleteEdge(ctx context.Context, id string) error {
	if err := s.edges.Delete(ctx, id); err != nil {
		return s.mapStorageErr(err, "edge")
	}
	return nil
}

func (s *graphService) DeleteNodeEdges(ctx context.Context, nodeID string) (int64, error) {
	deleted, err := s.edges.DeleteByNode(ctx, nodeID)
	if err != nil {
		return 0, WrapError(err, "failed to delete node edges")
	}
	return deleted, nil
}

func (s *graphService) ListFiles(ctx context.Context) ([]File, error) {
	records, err := s.files.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list files")
	}
	files := make([]File, 0, len(records))
	for _, record := range records {
		file, err := s.populateFile(ctx, record)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func (s *graphService) GetFile(ctx context.Context, id string) (File, error) {
	record, err := s.files.Get(ctx, id)
	if err != nil {
		return File{}, s.mapStorageErr(err, "file")
	}
	return s.populateFile(ctx, *record)
}

func (s *graphService) CreateFile(ctx context.Context, in CreateFileInput) (File, error) {
	logger := contextutil.LoggerFromContext(ctx)

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return File{}, &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if err := s.checkFileName(ctx, name, ""); err != nil {
		return File{}, err
	}

	record := storage.FileRecord{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}
	if err := s.files.Create(ctx, &record); err != nil {
		return File{}, WrapError(err, "failed to create file")
	}

	logger.InfoContext(ctx, "file created", "file_id", record.ID, "name", name, "sr_no", record.SrNo)
	return s.populateFile(ctx, record)
}

func (s *graphService) UpdateFile(ctx context.Context, id string, in UpdateFileInput) (File, error) {
	record, err := s.files.Get(ctx, id)
	if err != nil {
		return File{}, s.mapStorageErr(err, "file")
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return File{}, &ValidationError{Field: "name", Message: "cannot be empty"}
		}
		if err := s.checkFileName(ctx, name, id); err != nil {
			return File{}, err
		}
		record.Name = name
	}
	if in.Description != nil {
		record.Description = strings.TrimSpace(*in.Description)
	}

	if err := s.files.Update(ctx, record); err != nil {
		return File{}, s.mapStorageErr(err, "file")
	}
	return s.populateFile(ctx, *record)
}

func (s *graphService) DeleteFile(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)
	if err := s.files.Delete(ctx, id); err != nil {
		return s.mapStorageErr(err, "file")
	}
	logger.InfoContext(ctx, "file deleted", "file_id", id)
	return nil
}

func (s *graphService) AddNodeToFile(ctx context.Context, fileID, nodeID string) (File, error) {
	if _, err := s.files.Get(ctx, fileID); err != nil {
		return File{}, s.mapStorageErr(err, "file")
	}
	if _, err := s.nodes.Get(ctx, nodeID); err != nil {
		return File{}, s.mapStorageErr(err, "node")
	}
	if err := s.files.AddNode(ctx, fileID, nodeID); err != nil {
		return File{}, WrapError(err, "failed to add node to file")
	}
	return s.GetFile(ctx, fileID)
}

func (s *graphService) RemoveNodeFromFile(ctx context.Context, fileID, nodeID string) (File, error) {
	if _, err := s.files.Get(ctx, fileID); err != nil {
		return File{}, s.mapStorageErr(err, "file")
	}
	if err := s.files.RemoveNode(ctx, fileID, nodeID); err != nil {
		return File{}, WrapError(err, "failed to remove node from file")
	}
	return s.GetFile(ctx, fileID)
}

// checkFileName enforces unique file names, optionally excluding one file id.
func (s *graphService) checkFileName(ctx context.Context, name, excludeID string) error {
	existing, err := s.files.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return WrapError(err, "failed to check file name")
	}
	if existing.ID != excludeID {
		return &ValidationError{Field: "name", Message: "a file with this name already exists"}
	}
	return nil
}

func (s *graphService) populateFile(ctx context.Context, record storage.FileRecord) (File, error) {
	nodes, err := s.nodes.ListByFile(ctx, record.ID)
	if err != nil {
		return File{}, WrapError(err, "failed to load file nodes")
	}
	file := toFile(record)
	file.Nodes = toNodes(nodes)
	return file, nil
}

// mapStorageErr turns storage sentinels into service sentinels.
func (s *graphService) mapStorageErr(err error, what string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return WrapError(ErrNotFound, what)
	}
	return WrapError(err, "storage error")
}

func toNode(record storage.NodeRecord) Node {
	node := Node{
		ID:        record.ID,
		Title:     record.Title,
		Content:   record.Content,
		Tags:      record.Tags,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	if record.HasPosition() {
		node.Position = &Position{X: record.PosX.Float64, Y: record.PosY.Float64}
	}
	return node
}

func toNodes(records []storage.NodeRecord) []Node {
	nodes := make([]Node, 0, len(records))
	for _, record := range records {
		nodes = append(nodes, toNode(record))
	}
	return nodes
}

func toEdge(record storage.EdgeRecord) Edge {
	return Edge{
		ID:        record.ID,
		Source:    Ref(record.SourceID),
		Target:    Ref(record.TargetID),
		Type:      record.Type,
		Weight:    record.Weight,
		CreatedAt: record.CreatedAt,
	}
}

func toFile(record storage.FileRecord) File {
	return File{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		SrNo:        record.SrNo,
		Nodes:       []Node{},
		CreatedAt:   record.CreatedAt,
	}
}
