package simulation

import (
	"testing"

	"github.com/pcbaker4669/PerceptualDrift/internal/propagation"
	"github.com/pcbaker4669/PerceptualDrift/internal/store"
)

// Runner orchestrates propagation experiments against a real graph store
// and engine.
type Runner struct {
	t     *testing.T
	graph *store.MemoryGraph
}

// NewRunner creates a simulation runner with a fresh in-memory graph.
func NewRunner(t *testing.T) *Runner {
	t.Helper()
	return &Runner{t: t, graph: store.NewMemoryGraph()}
}

// Graph exposes the underlying graph for assertions that inspect topology.
func (r *Runner) Graph() *store.MemoryGraph {
	return r.graph
}

// Run seeds the graph from the scenario, propagates once, and returns the
// trace. Scenario construction errors fail the test; propagation errors
// are surfaced via RunExpectingError instead.
func (r *Runner) Run(scenario Scenario) *propagation.Trace {
	r.t.Helper()

	trace, err := r.propagate(scenario)
	if err != nil {
		r.t.Fatalf("scenario %q: Propagate: %v", scenario.Name, err)
	}
	return trace
}

// RunExpectingError runs the scenario and returns the propagation error,
// failing the test if propagation unexpectedly succeeds.
func (r *Runner) RunExpectingError(scenario Scenario) error {
	r.t.Helper()

	_, err := r.propagate(scenario)
	if err == nil {
		r.t.Fatalf("scenario %q: expected propagation error, got none", scenario.Name)
	}
	return err
}

func (r *Runner) propagate(scenario Scenario) (*propagation.Trace, error) {
	r.t.Helper()
	r.seedGraph(scenario)

	engine := propagation.NewEngine(r.graph)
	return engine.Propagate(scenario.Source, scenario.Target, scenario.Sensitivity)
}

// seedGraph inserts all nodes and edges from the scenario into the store.
func (r *Runner) seedGraph(scenario Scenario) {
	r.t.Helper()

	for i, ns := range scenario.Nodes {
		node, err := ns.ToNode()
		if err != nil {
			r.t.Fatalf("seedGraph: NodeSpec(%d): %v", ns.ID, err)
		}
		if err := r.graph.AddNode(node); err != nil {
			r.t.Fatalf("seedGraph: AddNode(%d): %v", ns.ID, err)
		}
		if scenario.Chain && i > 0 {
			prev := scenario.Nodes[i-1].ID
			if err := r.graph.AddEdge(prev, ns.ID); err != nil {
				r.t.Fatalf("seedGraph: chain AddEdge(%d->%d): %v", prev, ns.ID, err)
			}
		}
	}

	for _, es := range scenario.Edges {
		if err := r.graph.AddEdge(es.From, es.To); err != nil {
			r.t.Fatalf("seedGraph: AddEdge(%d->%d): %v", es.From, es.To, err)
		}
	}
}
