package simulation

import (
	"github.com/pcbaker4669/PerceptualDrift/internal/models"
	"github.com/pcbaker4669/PerceptualDrift/internal/store"
)

// Scenario defines a complete propagation experiment.
type Scenario struct {
	Name        string
	Nodes       []NodeSpec
	Edges       []EdgeSpec
	Source      int
	Target      int
	Sensitivity float64

	// Chain, when true, auto-links each listed node to its predecessor
	// in slice order, matching the experiment driver's chain topology.
	// Explicit Edges are added on top.
	Chain bool
}

// NodeSpec is a flat builder for constructing graph nodes in tests.
type NodeSpec struct {
	ID       int
	Ideology float64
	Bias     float64
}

// ToNode converts a NodeSpec into a validated models.Node, defaulting a
// zero Bias to 1.0 so specs can omit it.
func (s NodeSpec) ToNode() (models.Node, error) {
	bias := s.Bias
	if bias == 0 {
		bias = 1.0
	}
	return models.NewNode(s.ID, s.Ideology, bias)
}

// EdgeSpec defines a pre-seeded directed edge in the graph.
type EdgeSpec struct {
	From int
	To   int
}

// ToEdge converts an EdgeSpec to a store.Edge.
func (e EdgeSpec) ToEdge() store.Edge {
	return store.Edge{From: e.From, To: e.To}
}
