package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// FileStore defines the interface for file (collection) storage operations.
type FileStore interface {
	// Get gets a file with its member node ids. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*FileRecord, error)
	// GetByName gets a file by its exact name. Returns ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*FileRecord, error)
	// List returns all files ordered by sr_no, with member node ids attached.
	List(ctx context.Context) ([]FileRecord, error)
	// Create inserts a new file with the next sr_no and renumbers the
	// sequence to 1..N, all in one transaction.
	Create(ctx context.Context, file *FileRecord) error
	// Update rewrites name and description.
	Update(ctx context.Context, file *FileRecord) error
	// Delete removes a file along with its member nodes (whose edges cascade)
	// and renumbers the remaining files to 1..N, all in one transaction.
	Delete(ctx context.Context, id string) error
	// AddNode adds a node to the file's member set. Adding a member twice is
	// a no-op.
	AddNode(ctx context.Context, fileID, nodeID string) error
	// RemoveNode removes a node from the file's member set without deleting
	// the node itself.
	RemoveNode(ctx context.Context, fileID, nodeID string) error
}

// FileRepo provides methods for file operations.
// It implements the FileStore interface.
type FileRepo struct {
	db *sql.DB
}

// NewFileRepo creates a new FileRepo.
func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{db: db}
}

// Get gets a file with its member node ids.
func (r *FileRepo) Get(ctx context.Context, id string) (*FileRecord, error) {
	return r.getWhere(ctx, "id = ?", id)
}

// GetByName gets a file by its exact name.
func (r *FileRepo) GetByName(ctx context.Context, name string) (*FileRecord, error) {
	return r.getWhere(ctx, "name = ?", name)
}

func (r *FileRepo) getWhere(ctx context.Context, where string, arg any) (*FileRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, sr_no, created_at FROM files WHERE "+where, arg)
	file, err := scanFile(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query file: %w", err)
	}
	if file.NodeIDs, err = r.nodeIDs(ctx, file.ID); err != nil {
		return nil, err
	}
	return file, nil
}

// List returns all files ordered by sr_no, with member node ids attached.
func (r *FileRepo) List(ctx context.Context) ([]FileRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description, sr_no, created_at FROM files ORDER BY sr_no")
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	var files []FileRecord
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, *file)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range files {
		if files[i].NodeIDs, err = r.nodeIDs(ctx, files[i].ID); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// Create inserts a new file with the next sr_no, then renumbers.
func (r *FileRepo) Create(ctx context.Context, file *FileRecord) error {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var next int
		if err := tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(sr_no), 0) + 1 FROM files").Scan(&next); err != nil {
			return fmt.Errorf("failed to find next sr_no: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO files (id, name, description, sr_no) VALUES (?, ?, ?, ?)",
			file.ID, file.Name, file.Description, next); err != nil {
			return fmt.Errorf("failed to insert file: %w", err)
		}
		return renumberFiles(ctx, tx)
	})
	if err != nil {
		return err
	}
	created, err := r.Get(ctx, file.ID)
	if err != nil {
		return err
	}
	*file = *created
	return nil
}

// Update rewrites name and description.
func (r *FileRepo) Update(ctx context.Context, file *FileRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE files SET name = ?, description = ? WHERE id = ?",
		file.Name, file.Description, file.ID)
	if err != nil {
		return fmt.Errorf("failed to update file: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	updated, err := r.Get(ctx, file.ID)
	if err != nil {
		return err
	}
	*file = *updated
	return nil
}

// Delete removes a file, its member nodes and their edges, then renumbers.
func (r *FileRepo) Delete(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		// Deleting the member nodes cascades to their edges and to the
		// file_nodes rows; deleting the file cascades to any remaining
		// membership rows.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM nodes WHERE id IN (SELECT node_id FROM file_nodes WHERE file_id = ?)`,
			id); err != nil {
			return fmt.Errorf("failed to delete file nodes: %w", err)
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM files WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete file: %w", err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrNotFound
		}
		return renumberFiles(ctx, tx)
	})
}

// AddNode adds a node to the file's member set.
func (r *FileRepo) AddNode(ctx context.Context, fileID, nodeID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO file_nodes (file_id, node_id) VALUES (?, ?)
		 ON CONFLICT (file_id, node_id) DO NOTHING`,
		fileID, nodeID)
	if err != nil {
		return fmt.Errorf("failed to add node to file: %w", err)
	}
	return nil
}

// RemoveNode removes a node from the file's member set.
func (r *FileRepo) RemoveNode(ctx context.Context, fileID, nodeID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM file_nodes WHERE file_id = ? AND node_id = ?", fileID, nodeID)
	if err != nil {
		return fmt.Errorf("failed to remove node from file: %w", err)
	}
	return nil
}

// renumberFiles rewrites sr_no to be contiguous 1..N in sr_no order.
// O(number of files) per mutation, which is fine at personal-collection scale.
func renumberFiles(ctx context.Context, tx *sql.Tx) error {
	rows, err := tx.QueryContext(ctx, "SELECT id FROM files ORDER BY sr_no")
	if err != nil {
		return fmt.Errorf("failed to list files for renumbering: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	_ = rows.Close()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			"UPDATE files SET sr_no = ? WHERE id = ?", i+1, id); err != nil {
			return fmt.Errorf("failed to renumber file %s: %w", id, err)
		}
	}
	return nil
}

func (r *FileRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *FileRepo) nodeIDs(ctx context.Context, fileID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT fn.node_id FROM file_nodes fn
		 JOIN nodes n ON n.id = fn.node_id
		 WHERE fn.file_id = ?
		 ORDER BY n.created_at, n.id`, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query file members: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func scanFile(row rowScanner) (*FileRecord, error) {
	var file FileRecord
	var createdAtStr string
	err := row.Scan(&file.ID, &file.Name, &file.Description, &file.SrNo, &createdAtStr)
	if err != nil {
		return nil, err
	}
	if file.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, err
	}
	return &file, nil
}
