package storage

import (
	"database/sql"
	"time"
)

// NodeRecord represents a labeled, tagged text note in the database.
type NodeRecord struct {
	ID        string // UUID
	Title     string
	Content   string
	Tags      []string        // stored as a JSON array in the tags column
	PosX      sql.NullFloat64 // NULL means "not yet placed"
	PosY      sql.NullFloat64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPosition reports whether the node has a stored layout position.
func (n *NodeRecord) HasPosition() bool {
	return n.PosX.Valid && n.PosY.Valid
}

// EdgeRecord represents a directed, typed relation between two nodes.
type EdgeRecord struct {
	ID        string // UUID
	SourceID  string // foreign key to nodes.id
	TargetID  string // foreign key to nodes.id
	Type      string // free-form label, default "related"
	Weight    float64
	CreatedAt time.Time
}

// FileRecord represents a named collection of nodes.
type FileRecord struct {
	ID          string // UUID
	Name        string // unique, trimmed
	Description string
	SrNo        int      // display order, renumbered to 1..N after create/delete
	NodeIDs     []string // member node ids, from file_nodes
	CreatedAt   time.Time
}
