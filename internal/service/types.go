package service

import (
	"encoding/json"
	"fmt"
	"time"
)

// Position is a stored 2D layout coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a labeled, tagged text note.
type Node struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Position  *Position `json:"position,omitempty"` // nil means "not yet placed"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NodeRef is an edge endpoint: a node id, optionally populated with the node
// itself. On the wire it is either a bare id string or a node object — both
// forms are accepted, so callers can hand back edges exactly as they were
// listed.
type NodeRef struct {
	ID   string
	Node *Node
}

// Ref builds an unpopulated reference.
func Ref(id string) NodeRef {
	return NodeRef{ID: id}
}

// MarshalJSON emits the populated node object when present, else the bare id.
func (r NodeRef) MarshalJSON() ([]byte, error) {
	if r.Node != nil {
		return json.Marshal(r.Node)
	}
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts either a bare id string or an object with an id field.
func (r *NodeRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Node = nil
		return nil
	}
	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("node reference must be an id or a node object: %w", err)
	}
	if node.ID == "" {
		return fmt.Errorf("node reference object has no id")
	}
	r.ID = node.ID
	r.Node = &node
	return nil
}

// Edge is a directed, typed relation between two nodes.
type Edge struct {
	ID        string    `json:"id"`
	Source    NodeRef   `json:"source"`
	Target    NodeRef   `json:"target"`
	Type      string    `json:"type"`
	Weight    float64   `json:"weight"`
	CreatedAt time.Time `json:"created_at"`
}

// File is a named, ordered collection of nodes.
type File struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SrNo        int       `json:"sr_no"`
	Nodes       []Node    `json:"nodes"`
	CreatedAt   time.Time `json:"created_at"`
}
