package storage

import (
	"context"
	"database/sql"
	"testing"
)

func TestNodeRepo_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewNodeRepo(db)

	tests := []struct {
		name  string
		node  NodeRecord
		check func(t *testing.T, got *NodeRecord)
	}{
		{
			name: "minimal node",
			node: NodeRecord{Title: "First"},
			check: func(t *testing.T, got *NodeRecord) {
				if got.ID == "" {
					t.Error("Create() did not assign an id")
				}
				if got.Content != "" {
					t.Errorf("Content = %q, want empty", got.Content)
				}
				if len(got.Tags) != 0 {
					t.Errorf("Tags = %v, want empty", got.Tags)
				}
				if got.HasPosition() {
					t.Error("new node without position reports HasPosition() = true")
				}
				if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
					t.Error("timestamps not populated")
				}
			},
		},
		{
			name: "node with tags and position",
			node: NodeRecord{
				Title:   "Second",
				Content: "body text",
				Tags:    []string{"go", "graphs"},
				PosX:    sql.NullFloat64{Float64: 10, Valid: true},
				PosY:    sql.NullFloat64{Float64: 20, Valid: true},
			},
			check: func(t *testing.T, got *NodeRecord) {
				if len(got.Tags) != 2 || got.Tags[0] != "go" || got.Tags[1] != "graphs" {
					t.Errorf("Tags = %v, want [go graphs]", got.Tags)
				}
				if !got.HasPosition() {
					t.Fatal("HasPosition() = false, want true")
				}
				if got.PosX.Float64 != 10 || got.PosY.Float64 != 20 {
					t.Errorf("position = (%v, %v), want (10, 20)", got.PosX.Float64, got.PosY.Float64)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := tt.node
			if err := repo.Create(context.Background(), &node); err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			got, err := repo.Get(context.Background(), node.ID)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestNodeRepo_GetNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewNodeRepo(db)

	_, err := repo.Get(context.Background(), "missing-id")
	if err != ErrNotFound {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestNodeRepo_Update(t *testing.T) {
	db := openTestDB(t)
	repo := NewNodeRepo(db)

	node := mustCreateNode(t, db, "Before")
	node.Title = "After"
	node.Content = "updated"
	node.Tags = []string{"edited"}

	if err := repo.Update(context.Background(), node); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.Get(context.Background(), node.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "After" || got.Content != "updated" {
		t.Errorf("updated node = %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "edited" {
		t.Errorf("Tags = %v, want [edited]", got.Tags)
	}

	missing := &NodeRecord{ID: "missing-id", Title: "x"}
	if err := repo.Update(context.Background(), missing); err != ErrNotFound {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestNodeRepo_UpdatePosition(t *testing.T) {
	db := openTestDB(t)
	repo := NewNodeRepo(db)

	node := mustCreateNode(t, db, "Movable")
	if err := repo.UpdatePosition(context.Background(), node.ID, 400, 250); err != nil {
		t.Fatalf("UpdatePosition() error = %v", err)
	}

	got, err := repo.Get(context.Background(), node.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.HasPosition() || got.PosX.Float64 != 400 || got.PosY.Float64 != 250 {
		t.Errorf("position = %+v, want (400, 250)", got)
	}

	if err := repo.UpdatePosition(context.Background(), "missing-id", 1, 2); err != ErrNotFound {
		t.Errorf("UpdatePosition(missing) error = %v, want ErrNotFound", err)
	}
}

func TestNodeRepo_DeleteCascadesEdges(t *testing.T) {
	db := openTestDB(t)
	nodeRepo := NewNodeRepo(db)
	edgeRepo := NewEdgeRepo(db)

	a := mustCreateNode(t, db, "A")
	b := mustCreateNode(t, db, "B")

	edge := &EdgeRecord{SourceID: a.ID, TargetID: b.ID}
	if err := edgeRepo.Create(context.Background(), edge); err != nil {
		t.Fatalf("EdgeRepo.Create() error = %v", err)
	}

	if err := nodeRepo.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	edges, err := edgeRepo.List(context.Background())
	if err != nil {
		t.Fatalf("EdgeRepo.List() error = %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("edges after node delete = %d, want 0", len(edges))
	}

	if err := nodeRepo.Delete(context.Background(), a.ID); err != ErrNotFound {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestNodeRepo_ListByFile(t *testing.T) {
	db := openTestDB(t)
	nodeRepo := NewNodeRepo(db)
	fileRepo := NewFileRepo(db)

	file := &FileRecord{Name: "Demo"}
	if err := fileRepo.Create(context.Background(), file); err != nil {
		t.Fatalf("FileRepo.Create() error = %v", err)
	}

	in := mustCreateNode(t, db, "member")
	mustCreateNode(t, db, "outsider")
	if err := fileRepo.AddNode(context.Background(), file.ID, in.ID); err != nil {
		t.Fatalf("AddNode() error = %v", err)
	}

	nodes, err := nodeRepo.ListByFile(context.Background(), file.ID)
	if err != nil {
		t.Fatalf("ListByFile() error = %v", err)
	}
	if len(nodes) != 1 || nodes[0].ID != in.ID {
		t.Errorf("ListByFile() = %+v, want exactly the member node", nodes)
	}
}
