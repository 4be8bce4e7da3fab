package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_stores.go -package=mocks graphbook/internal/storage NodeStore,EdgeStore,FileStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// NodeStore defines the interface for node storage operations.
type NodeStore interface {
	// Get gets a node by id. Returns nil and ErrNotFound if not found.
	Get(ctx context.Context, id string) (*NodeRecord, error)
	// List returns all nodes ordered by creation time.
	List(ctx context.Context) ([]NodeRecord, error)
	// ListByFile returns the nodes belonging to a file, ordered by creation time.
	ListByFile(ctx context.Context, fileID string) ([]NodeRecord, error)
	// Create inserts a new node, generating a UUID if the record has none.
	Create(ctx context.Context, node *NodeRecord) error
	// Update rewrites title, content, tags and position and bumps updated_at.
	Update(ctx context.Context, node *NodeRecord) error
	// UpdatePosition stores the layout position for a node without touching
	// the rest of the record.
	UpdatePosition(ctx context.Context, id string, x, y float64) error
	// Delete removes a node. Edges and file memberships referencing it are
	// removed by the schema's FK cascades. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// NodeRepo provides methods for node operations.
// It implements the NodeStore interface.
type NodeRepo struct {
	db *sql.DB
}

// NewNodeRepo creates a new NodeRepo.
func NewNodeRepo(db *sql.DB) *NodeRepo {
	return &NodeRepo{db: db}
}

const nodeColumns = "id, title, content, tags, pos_x, pos_y, created_at, updated_at"

// Get gets a node by id. Returns nil and ErrNotFound if not found.
func (r *NodeRepo) Get(ctx context.Context, id string) (*NodeRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+nodeColumns+" FROM nodes WHERE id = ?", id)
	node, err := scanNode(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query node: %w", err)
	}
	return node, nil
}

// List returns all nodes ordered by creation time.
func (r *NodeRepo) List(ctx context.Context) ([]NodeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+nodeColumns+" FROM nodes ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()
	return collectNodes(rows)
}

// ListByFile returns the nodes belonging to a file, ordered by creation time.
func (r *NodeRepo) ListByFile(ctx context.Context, fileID string) ([]NodeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT n.id, n.title, n.content, n.tags, n.pos_x, n.pos_y, n.created_at, n.updated_at
		 FROM nodes n
		 JOIN file_nodes fn ON fn.node_id = n.id
		 WHERE fn.file_id = ?
		 ORDER BY n.created_at, n.id`, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query file nodes: %w", err)
	}
	defer rows.Close()
	return collectNodes(rows)
}

// Create inserts a new node, generating a UUID if the record has none.
func (r *NodeRepo) Create(ctx context.Context, node *NodeRecord) error {
	if node.ID == "" {
		node.ID = uuid.New().String()
	}
	tags, err := marshalTags(node.Tags)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO nodes (id, title, content, tags, pos_x, pos_y)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		node.ID, node.Title, node.Content, tags, node.PosX, node.PosY)
	if err != nil {
		return fmt.Errorf("failed to insert node: %w", err)
	}
	created, err := r.Get(ctx, node.ID)
	if err != nil {
		return err
	}
	*node = *created
	return nil
}

// Update rewrites title, content, tags and position and bumps updated_at.
func (r *NodeRepo) Update(ctx context.Context, node *NodeRecord) error {
	tags, err := marshalTags(node.Tags)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE nodes
		 SET title = ?, content = ?, tags = ?, pos_x = ?, pos_y = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		node.Title, node.Content, tags, node.PosX, node.PosY, node.ID)
	if err != nil {
		return fmt.Errorf("failed to update node: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	updated, err := r.Get(ctx, node.ID)
	if err != nil {
		return err
	}
	*node = *updated
	return nil
}

// UpdatePosition stores the layout position for a node.
func (r *NodeRepo) UpdatePosition(ctx context.Context, id string, x, y float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE nodes SET pos_x = ?, pos_y = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		x, y, id)
	if err != nil {
		return fmt.Errorf("failed to update node position: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a node. Edges and file memberships referencing it are
// removed by the schema's FK cascades.
func (r *NodeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM nodes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete node: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner) (*NodeRecord, error) {
	var node NodeRecord
	var tagsJSON string
	var createdAtStr, updatedAtStr string

	err := row.Scan(&node.ID, &node.Title, &node.Content, &tagsJSON,
		&node.PosX, &node.PosY, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &node.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags for node %s: %w", node.ID, err)
	}
	if node.Tags == nil {
		node.Tags = []string{}
	}
	if node.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, err
	}
	if node.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, err
	}
	return &node, nil
}

func collectNodes(rows *sql.Rows) ([]NodeRecord, error) {
	var nodes []NodeRecord
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		nodes = append(nodes, *node)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nodes, nil
}

func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(data), nil
}
