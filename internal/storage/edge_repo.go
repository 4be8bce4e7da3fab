package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// EdgeStore defines the interface for edge storage operations.
type EdgeStore interface {
	// Get gets an edge by id. Returns nil and ErrNotFound if not found.
	Get(ctx context.Context, id string) (*EdgeRecord, error)
	// List returns all edges ordered by creation time.
	List(ctx context.Context) ([]EdgeRecord, error)
	// Create inserts a new edge, generating a UUID if the record has none.
	// Both endpoints must exist; the FK constraint rejects the insert otherwise.
	Create(ctx context.Context, edge *EdgeRecord) error
	// Delete removes an edge. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
	// DeleteByNode removes every edge whose source or target is the given
	// node and returns how many were removed.
	DeleteByNode(ctx context.Context, nodeID string) (int64, error)
}

// EdgeRepo provides methods for edge operations.
// It implements the EdgeStore interface.
type EdgeRepo struct {
	db *sql.DB
}

// NewEdgeRepo creates a new EdgeRepo.
func NewEdgeRepo(db *sql.DB) *EdgeRepo {
	return &EdgeRepo{db: db}
}

const edgeColumns = "id, source_id, target_id, type, weight, created_at"

// Get gets an edge by id. Returns nil and ErrNotFound if not found.
func (r *EdgeRepo) Get(ctx context.Context, id string) (*EdgeRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+edgeColumns+" FROM edges WHERE id = ?", id)
	edge, err := scanEdge(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query edge: %w", err)
	}
	return edge, nil
}

// List returns all edges ordered by creation time.
func (r *EdgeRepo) List(ctx context.Context) ([]EdgeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+edgeColumns+" FROM edges ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	var edges []EdgeRecord
	for rows.Next() {
		edge, err := scanEdge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		edges = append(edges, *edge)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

// Create inserts a new edge, generating a UUID if the record has none.
func (r *EdgeRepo) Create(ctx context.Context, edge *EdgeRecord) error {
	if edge.ID == "" {
		edge.ID = uuid.New().String()
	}
	if edge.Type == "" {
		edge.Type = "related"
	}
	if edge.Weight == 0 {
		edge.Weight = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO edges (id, source_id, target_id, type, weight)
		 VALUES (?, ?, ?, ?, ?)`,
		edge.ID, edge.SourceID, edge.TargetID, edge.Type, edge.Weight)
	if err != nil {
		return fmt.Errorf("failed to insert edge: %w", err)
	}
	created, err := r.Get(ctx, edge.ID)
	if err != nil {
		return err
	}
	*edge = *created
	return nil
}

// Delete removes an edge.
func (r *EdgeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM edges WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete edge: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByNode removes every edge touching the given node.
func (r *EdgeRepo) DeleteByNode(ctx context.Context, nodeID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM edges WHERE source_id = ? OR target_id = ?", nodeID, nodeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete edges for node %s: %w", nodeID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func scanEdge(row rowScanner) (*EdgeRecord, error) {
	var edge EdgeRecord
	var createdAtStr string
	err := row.Scan(&edge.ID, &edge.SourceID, &edge.TargetID,
		&edge.Type, &edge.Weight, &createdAtStr)
	if err != nil {
		return nil, err
	}
	if edge.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, err
	}
	return &edge, nil
}
