// Package store provides the directed-graph container for drift
// simulations: node attributes, directed edges, and shortest-path queries.
// The store is purely structural — simulation results are never written
// back into it.
package store

import (
	"errors"
	"fmt"

	"github.com/pcbaker4669/PerceptualDrift/internal/models"
)

// ErrDuplicateNode is returned when adding a node whose ID already exists.
var ErrDuplicateNode = errors.New("duplicate node id")

// ErrNodeNotFound is returned when an operation references an unknown node.
var ErrNodeNotFound = errors.New("node not found")

// Edge is a directed edge between two node IDs.
type Edge struct {
	From int
	To   int
}

// NoPathError reports that no directed path exists between two nodes.
// It is fatal for the requesting run but recoverable for a sweep.
type NoPathError struct {
	Source int
	Target int
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path from node %d to node %d", e.Source, e.Target)
}

// Graph is the directed-graph interface consumed by the propagation engine.
type Graph interface {
	// AddNode inserts a node. Fails with ErrDuplicateNode if the ID exists.
	AddNode(node models.Node) error

	// AddEdge inserts a directed edge. Both endpoints must already exist.
	AddEdge(from, to int) error

	// Node returns the node with the given ID, or false if absent.
	Node(id int) (models.Node, bool)

	// Nodes returns all nodes ordered by ID.
	Nodes() []models.Node

	// Edges returns all directed edges in insertion order.
	Edges() []Edge

	// ShortestPath returns the unweighted shortest directed path from
	// source to target, inclusive of both endpoints. Returns
	// ErrNodeNotFound for unknown endpoints and *NoPathError when the
	// nodes are disconnected.
	ShortestPath(source, target int) ([]int, error)
}
