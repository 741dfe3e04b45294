// Package simulation provides a scenario-based test harness for validating
// propagation dynamics end to end.
//
// Scenarios exercise the real graph store and propagation engine — no
// mocks. A scenario is a Go builder that constructs a pre-seeded graph,
// runs one propagation, and hands the trace to property assertions.
//
// Usage:
//
//	func TestDriftAccumulates(t *testing.T) {
//	    r := simulation.NewRunner(t)
//	    trace := r.Run(simulation.Scenario{
//	        Name:        "drift-accumulates",
//	        Nodes:       []simulation.NodeSpec{...},
//	        Source:      0,
//	        Target:      3,
//	        Sensitivity: 1.0,
//	    })
//	    simulation.AssertFidelityMonotonic(t, trace)
//	}
package simulation
