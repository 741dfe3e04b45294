package store

import (
	"errors"
	"testing"

	"github.com/pcbaker4669/PerceptualDrift/internal/models"
)

// addNode is a test helper that adds a node and fails the test on error.
func addNode(t *testing.T, g *MemoryGraph, id int) {
	t.Helper()
	node, err := models.NewNode(id, 0.5, 1.0)
	if err != nil {
		t.Fatalf("addNode(%d): NewNode: %v", id, err)
	}
	if err := g.AddNode(node); err != nil {
		t.Fatalf("addNode(%d): %v", id, err)
	}
}

// addEdge is a test helper that adds a directed edge and fails the test on error.
func addEdge(t *testing.T, g *MemoryGraph, from, to int) {
	t.Helper()
	if err := g.AddEdge(from, to); err != nil {
		t.Fatalf("addEdge(%d->%d): %v", from, to, err)
	}
}

func TestAddNodeDuplicate(t *testing.T) {
	g := NewMemoryGraph()
	addNode(t, g, 1)

	node, _ := models.NewNode(1, 0.9, 2.0)
	err := g.AddNode(node)
	if !errors.Is(err, ErrDuplicateNode) {
		t.Fatalf("expected ErrDuplicateNode, got %v", err)
	}
}

func TestAddEdgeUnknownEndpoint(t *testing.T) {
	g := NewMemoryGraph()
	addNode(t, g, 0)

	if err := g.AddEdge(0, 99); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("unknown target: expected ErrNodeNotFound, got %v", err)
	}
	if err := g.AddEdge(99, 0); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("unknown source: expected ErrNodeNotFound, got %v", err)
	}
}

func TestNodesSortedByID(t *testing.T) {
	g := NewMemoryGraph()
	for _, id := range []int{4, 0, 2, 3, 1} {
		addNode(t, g, id)
	}

	nodes := g.Nodes()
	if len(nodes) != 5 {
		t.Fatalf("got %d nodes, want 5", len(nodes))
	}
	for i, n := range nodes {
		if n.ID != i {
			t.Errorf("nodes[%d].ID = %d, want %d", i, n.ID, i)
		}
	}
}

func TestShortestPathChain(t *testing.T) {
	g := NewMemoryGraph()
	for id := 0; id < 5; id++ {
		addNode(t, g, id)
		if id > 0 {
			addEdge(t, g, id-1, id)
		}
	}

	path, err := g.ShortestPath(0, 4)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	want := []int{0, 1, 2, 3, 4}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestShortestPathPrefersFewerHops(t *testing.T) {
	// 0->1->2->3 and a shortcut 0->4->3: BFS must take the shortcut.
	g := NewMemoryGraph()
	for id := 0; id < 5; id++ {
		addNode(t, g, id)
	}
	addEdge(t, g, 0, 1)
	addEdge(t, g, 1, 2)
	addEdge(t, g, 2, 3)
	addEdge(t, g, 0, 4)
	addEdge(t, g, 4, 3)

	path, err := g.ShortestPath(0, 3)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if len(path) != 3 {
		t.Fatalf("path = %v, want 3 nodes via the shortcut", path)
	}
	if path[0] != 0 || path[1] != 4 || path[2] != 3 {
		t.Errorf("path = %v, want [0 4 3]", path)
	}
}

func TestShortestPathSameNode(t *testing.T) {
	g := NewMemoryGraph()
	addNode(t, g, 0)

	path, err := g.ShortestPath(0, 0)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if len(path) != 1 || path[0] != 0 {
		t.Errorf("path = %v, want [0]", path)
	}
}

func TestShortestPathDisconnected(t *testing.T) {
	g := NewMemoryGraph()
	addNode(t, g, 0)
	addNode(t, g, 1)
	addNode(t, g, 2)
	addEdge(t, g, 0, 1)

	_, err := g.ShortestPath(0, 2)
	var noPath *NoPathError
	if !errors.As(err, &noPath) {
		t.Fatalf("expected *NoPathError, got %v", err)
	}
	if noPath.Source != 0 || noPath.Target != 2 {
		t.Errorf("NoPathError endpoints = (%d, %d), want (0, 2)", noPath.Source, noPath.Target)
	}
}

func TestShortestPathUnknownEndpoints(t *testing.T) {
	g := NewMemoryGraph()
	addNode(t, g, 0)

	if _, err := g.ShortestPath(0, 9); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("unknown target: expected ErrNodeNotFound, got %v", err)
	}
	if _, err := g.ShortestPath(9, 0); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("unknown source: expected ErrNodeNotFound, got %v", err)
	}
}

func TestEdgesReturnsCopy(t *testing.T) {
	g := NewMemoryGraph()
	addNode(t, g, 0)
	addNode(t, g, 1)
	addEdge(t, g, 0, 1)

	edges := g.Edges()
	edges[0] = Edge{From: 42, To: 43}

	fresh := g.Edges()
	if fresh[0].From != 0 || fresh[0].To != 1 {
		t.Errorf("mutating the returned slice leaked into the store: %+v", fresh[0])
	}
}
