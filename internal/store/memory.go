package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pcbaker4669/PerceptualDrift/internal/models"
)

// MemoryGraph implements Graph with in-memory maps. It is safe for
// concurrent use so that independent sweep runs can share read access.
type MemoryGraph struct {
	mu    sync.RWMutex
	nodes map[int]models.Node
	adj   map[int][]int
	edges []Edge
}

// NewMemoryGraph creates an empty in-memory graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		nodes: make(map[int]models.Node),
		adj:   make(map[int][]int),
	}
}

// AddNode inserts a node into the graph.
func (g *MemoryGraph) AddNode(node models.Node) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[node.ID]; exists {
		return fmt.Errorf("add node %d: %w", node.ID, ErrDuplicateNode)
	}
	g.nodes[node.ID] = node
	return nil
}

// AddEdge inserts a directed edge from one existing node to another.
func (g *MemoryGraph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[from]; !exists {
		return fmt.Errorf("add edge %d->%d: source: %w", from, to, ErrNodeNotFound)
	}
	if _, exists := g.nodes[to]; !exists {
		return fmt.Errorf("add edge %d->%d: target: %w", from, to, ErrNodeNotFound)
	}
	g.adj[from] = append(g.adj[from], to)
	g.edges = append(g.edges, Edge{From: from, To: to})
	return nil
}

// Node retrieves a node by ID.
func (g *MemoryGraph) Node(id int) (models.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, exists := g.nodes[id]
	return node, exists
}

// Nodes returns all nodes sorted by ID.
func (g *MemoryGraph) Nodes() []models.Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]models.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// Edges returns a copy of all directed edges in insertion order.
func (g *MemoryGraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// ShortestPath runs a breadth-first search from source to target and
// returns the node IDs along an unweighted shortest directed path.
func (g *MemoryGraph) ShortestPath(source, target int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.nodes[source]; !exists {
		return nil, fmt.Errorf("shortest path: source %d: %w", source, ErrNodeNotFound)
	}
	if _, exists := g.nodes[target]; !exists {
		return nil, fmt.Errorf("shortest path: target %d: %w", target, ErrNodeNotFound)
	}

	if source == target {
		return []int{source}, nil
	}

	// BFS with predecessor tracking for path reconstruction.
	prev := map[int]int{source: source}
	queue := []int{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.adj[current] {
			if _, visited := prev[next]; visited {
				continue
			}
			prev[next] = current
			if next == target {
				return reconstructPath(prev, source, target), nil
			}
			queue = append(queue, next)
		}
	}

	return nil, &NoPathError{Source: source, Target: target}
}

// reconstructPath walks the predecessor map backwards from target to source.
func reconstructPath(prev map[int]int, source, target int) []int {
	var reversed []int
	for id := target; id != source; id = prev[id] {
		reversed = append(reversed, id)
	}
	reversed = append(reversed, source)

	path := make([]int, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path
}
