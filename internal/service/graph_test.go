package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"graphbook/internal/storage"
)

func newTestService(t *testing.T) GraphService {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGraphService(
		storage.NewNodeRepo(db),
		storage.NewEdgeRepo(db),
		storage.NewFileRepo(db),
	)
}

func mustNode(t *testing.T, svc GraphService, title string) Node {
	t.Helper()
	node, err := svc.CreateNode(context.Background(), CreateNodeInput{Title: title})
	if err != nil {
		t.Fatalf("failed to create node %q: %v", title, err)
	}
	return node
}

func TestCreateNode(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateNodeInput
		wantErr bool
	}{
		{
			name:  "basic node",
			input: CreateNodeInput{Title: "Go", Content: "notes on Go", Tags: []string{"lang"}},
		},
		{
			name:  "title gets trimmed",
			input: CreateNodeInput{Title: "  padded  "},
		},
		{
			name:  "with position",
			input: CreateNodeInput{Title: "placed", Position: &Position{X: 100, Y: 200}},
		},
		{
			name:    "empty title",
			input:   CreateNodeInput{Title: ""},
			wantErr: true,
		},
		{
			name:    "whitespace title",
			input:   CreateNodeInput{Title: "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := svc.CreateNode(ctx, tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if node.ID == "" {
				t.Error("expected node to get an id")
			}
			if node.Title != "" && (node.Title[0] == ' ' || node.Title[len(node.Title)-1] == ' ') {
				t.Errorf("title not trimmed: %q", node.Title)
			}
			if tt.input.Position != nil {
				if node.Position == nil {
					t.Fatal("expected position to survive creation")
				}
				if node.Position.X != tt.input.Position.X || node.Position.Y != tt.input.Position.Y {
					t.Errorf("position = %+v, want %+v", node.Position, tt.input.Position)
				}
			}
		})
	}
}

func TestUpdateNodePartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	node := mustNode(t, svc, "original")

	content := "body text"
	updated, err := svc.UpdateNode(ctx, node.ID, UpdateNodeInput{Content: &content})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "original" {
		t.Errorf("untouched title changed to %q", updated.Title)
	}
	if updated.Content != content {
		t.Errorf("content = %q, want %q", updated.Content, content)
	}

	empty := "  "
	if _, err := svc.UpdateNode(ctx, node.ID, UpdateNodeInput{Title: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for whitespace title, got %v", err)
	}

	if _, err := svc.UpdateNode(ctx, "no-such-node", UpdateNodeInput{Content: &content}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateNodePosition(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	node := mustNode(t, svc, "drifter")

	moved, err := svc.UpdateNodePosition(ctx, node.ID, Position{X: 320, Y: 240})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.Position == nil || moved.Position.X != 320 || moved.Position.Y != 240 {
		t.Errorf("position = %+v, want {320 240}", moved.Position)
	}

	if _, err := svc.UpdateNodePosition(ctx, "missing", Position{X: 1, Y: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateEdgeValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	a := mustNode(t, svc, "a")
	b := mustNode(t, svc, "b")

	tests := []struct {
		name    string
		input   CreateEdgeInput
		wantErr bool
	}{
		{
			name:  "valid edge",
			input: CreateEdgeInput{Source: Ref(a.ID), Target: Ref(b.ID)},
		},
		{
			name:    "self loop",
			input:   CreateEdgeInput{Source: Ref(a.ID), Target: Ref(a.ID)},
			wantErr: true,
		},
		{
			name:    "missing source",
			input:   CreateEdgeInput{Target: Ref(b.ID)},
			wantErr: true,
		},
		{
			name:    "unknown target",
			input:   CreateEdgeInput{Source: Ref(a.ID), Target: Ref("ghost")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edge, err := svc.CreateEdge(ctx, tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if edge.Type != "related" {
				t.Errorf("default type = %q, want %q", edge.Type, "related")
			}
			if edge.Weight != 1 {
				t.Errorf("default weight = %v, want 1", edge.Weight)
			}
		})
	}
}

func TestListEdgesPopulatesEndpoints(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	a := mustNode(t, svc, "alpha")
	b := mustNode(t, svc, "beta")

	if _, err := svc.CreateEdge(ctx, CreateEdgeInput{Source: Ref(a.ID), Target: Ref(b.ID)}); err != nil {
		t.Fatalf("failed to create edge: %v", err)
	}

	edges, err := svc.ListEdges(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	edge := edges[0]
	if edge.Source.Node == nil || edge.Source.Node.Title != "alpha" {
		t.Errorf("source not populated: %+v", edge.Source)
	}
	if edge.Target.Node == nil || edge.Target.Node.Title != "beta" {
		t.Errorf("target not populated: %+v", edge.Target)
	}
}

func TestDeleteNodeCascadesEdges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	a := mustNode(t, svc, "a")
	b := mustNode(t, svc, "b")
	c := mustNode(t, svc, "c")

	for _, pair := range [][2]string{{a.ID, b.ID}, {b.ID, c.ID}, {a.ID, c.ID}} {
		if _, err := svc.CreateEdge(ctx, CreateEdgeInput{Source: Ref(pair[0]), Target: Ref(pair[1])}); err != nil {
			t.Fatalf("failed to create edge: %v", err)
		}
	}

	if err := svc.DeleteNode(ctx, a.ID); err != nil {
		t.Fatalf("failed to delete node: %v", err)
	}

	edges, err := svc.ListEdges(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("got %d edges after cascade, want 1", len(edges))
	}
	if edges[0].Source.ID != b.ID || edges[0].Target.ID != c.ID {
		t.Errorf("surviving edge = %s->%s, want %s->%s",
			edges[0].Source.ID, edges[0].Target.ID, b.ID, c.ID)
	}
}

func TestDeleteNodeEdges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	a := mustNode(t, svc, "hub")
	b := mustNode(t, svc, "spoke1")
	c := mustNode(t, svc, "spoke2")

	for _, pair := range [][2]string{{a.ID, b.ID}, {c.ID, a.ID}, {b.ID, c.ID}} {
		if _, err := svc.CreateEdge(ctx, CreateEdgeInput{Source: Ref(pair[0]), Target: Ref(pair[1])}); err != nil {
			t.Fatalf("failed to create edge: %v", err)
		}
	}

	deleted, err := svc.DeleteNodeEdges(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted %d edges, want 2", deleted)
	}
}

func TestFileLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateFile(ctx, CreateFileInput{Name: "projects"})
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if first.SrNo != 1 {
		t.Errorf("first file sr_no = %d, want 1", first.SrNo)
	}

	second, err := svc.CreateFile(ctx, CreateFileInput{Name: "reading"})
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if second.SrNo != 2 {
		t.Errorf("second file sr_no = %d, want 2", second.SrNo)
	}

	if _, err := svc.CreateFile(ctx, CreateFileInput{Name: " projects "}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected duplicate name to be rejected, got %v", err)
	}

	// Renaming the second file to its own name is fine; to the first's is not.
	name := "reading"
	if _, err := svc.UpdateFile(ctx, second.ID, UpdateFileInput{Name: &name}); err != nil {
		t.Errorf("self-rename should succeed, got %v", err)
	}
	name = "projects"
	if _, err := svc.UpdateFile(ctx, second.ID, UpdateFileInput{Name: &name}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected rename collision to be rejected, got %v", err)
	}

	if err := svc.DeleteFile(ctx, first.ID); err != nil {
		t.Fatalf("failed to delete file: %v", err)
	}
	files, err := svc.ListFiles(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0].SrNo != 1 {
		t.Errorf("expected remaining file renumbered to 1, got %+v", files)
	}
}

func TestFileMembership(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	file, err := svc.CreateFile(ctx, CreateFileInput{Name: "workspace"})
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	node := mustNode(t, svc, "member")

	file, err = svc.AddNodeToFile(ctx, file.ID, node.ID)
	if err != nil {
		t.Fatalf("failed to add node: %v", err)
	}
	if len(file.Nodes) != 1 || file.Nodes[0].ID != node.ID {
		t.Fatalf("file nodes = %+v, want the added node", file.Nodes)
	}

	// Adding twice is idempotent.
	file, err = svc.AddNodeToFile(ctx, file.ID, node.ID)
	if err != nil {
		t.Fatalf("repeat add failed: %v", err)
	}
	if len(file.Nodes) != 1 {
		t.Errorf("got %d members after repeat add, want 1", len(file.Nodes))
	}

	nodes, err := svc.ListFileNodes(ctx, file.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Errorf("ListFileNodes returned %d nodes, want 1", len(nodes))
	}

	file, err = svc.RemoveNodeFromFile(ctx, file.ID, node.ID)
	if err != nil {
		t.Fatalf("failed to remove node: %v", err)
	}
	if len(file.Nodes) != 0 {
		t.Errorf("got %d members after removal, want 0", len(file.Nodes))
	}

	// Removal does not delete the node itself.
	if _, err := svc.GetNode(ctx, node.ID); err != nil {
		t.Errorf("node should survive removal from file, got %v", err)
	}

	if _, err := svc.AddNodeToFile(ctx, "missing-file", node.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown file, got %v", err)
	}
}

func TestDeleteFileDeletesMemberNodes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	file, err := svc.CreateFile(ctx, CreateFileInput{Name: "doomed"})
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	member := mustNode(t, svc, "inside")
	outsider := mustNode(t, svc, "outside")
	if _, err := svc.AddNodeToFile(ctx, file.ID, member.ID); err != nil {
		t.Fatalf("failed to add node: %v", err)
	}

	if err := svc.DeleteFile(ctx, file.ID); err != nil {
		t.Fatalf("failed to delete file: %v", err)
	}

	if _, err := svc.GetNode(ctx, member.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("member node should be deleted with the file, got %v", err)
	}
	if _, err := svc.GetNode(ctx, outsider.ID); err != nil {
		t.Errorf("node outside the file should survive, got %v", err)
	}
}
