// Package propagation implements the message propagation engine. A message
// seeded with the source node's ideology is folded sequentially through each
// node on the shortest directed path to the target; every node perturbs it
// via the quadratic drift transform, and the engine accounts cumulative
// fidelity and plausibility drift along the way.
package propagation

import (
	"fmt"
	"math"

	"github.com/pcbaker4669/PerceptualDrift/internal/models"
	"github.com/pcbaker4669/PerceptualDrift/internal/store"
)

// State is the transmission state of a run. Saturation is an absorbing
// state: once the message pins to a boundary, the walk terminates.
type State string

const (
	// StateContinuing means the message is still within the open
	// interval and propagation proceeds.
	StateContinuing State = "continuing"

	// StateSaturated means the message ideology reached exactly 0 or 1.
	// Further transformation would be degenerate, so the run halts.
	StateSaturated State = "saturated"
)

// Result is one observable hop of a propagation run. Hop 0 (the source
// node's own outgoing hop) is never emitted; records start at hop 1.
type Result struct {
	Hop               int     // index of this hop along the path
	NodeID            int     // node that transformed the message
	PathLength        int     // total node count of the path
	InitialIdeology   float64 // message ideology entering the whole path
	NodeIdeology      float64 // the transforming node's own score
	Sensitivity       float64 // global run parameter
	BiasMultiplier    float64 // the transforming node's bias
	Before            float64 // message ideology entering this hop
	After             float64 // message ideology leaving this hop
	FidelityDrift     float64 // cumulative |change| over observed hops
	PlausibilityDrift float64 // cumulative signed change over observed hops
	State             State   // transmission state after this hop
}

// Success reports whether transmission was still succeeding at this hop.
func (r Result) Success() bool {
	return r.State == StateContinuing
}

// Trace is the full outcome of one propagation run. Per-edge carried values
// are returned here rather than written into the graph, so the store stays
// purely structural.
type Trace struct {
	Path            []int
	InitialIdeology float64
	FinalIdeology   float64
	State           State
	Results         []Result

	// EdgeValues maps each traversed edge to the message ideology that
	// crossed it. Used by visualization only.
	EdgeValues map[store.Edge]float64
}

// Success reports whether the message reached the end of its walk without
// saturating.
func (t *Trace) Success() bool {
	return t.State == StateContinuing
}

// Engine walks shortest paths through a graph and applies each node's
// transform in sequence. The engine itself is stateless; all run state
// lives in the Trace built during a call to Propagate.
type Engine struct {
	graph store.Graph
}

// NewEngine creates a propagation engine over the given graph.
func NewEngine(g store.Graph) *Engine {
	return &Engine{graph: g}
}

// Propagate runs one message from source to target with the given
// sensitivity and returns the per-hop trace.
//
// The walk visits every node on the shortest path except the target in
// order, replacing the message ideology with that node's transform output.
// Hop 0 is not observable downstream, so its record is skipped; a path of
// two nodes therefore emits no records at all. If a hop output lands on
// exactly 0 or 1 the message has saturated: the triggering hop is recorded
// (when observable) with StateSaturated and the walk stops there.
//
// A source node already sitting at a boundary is not rejected, but its own
// hop-0 transform is an identity that leaves the message pinned, so such a
// run saturates immediately and emits nothing.
func (e *Engine) Propagate(sourceID, targetID int, sensitivity float64) (*Trace, error) {
	if math.IsNaN(sensitivity) || sensitivity <= 0 {
		return nil, fmt.Errorf("propagate: sensitivity must be positive, got %v", sensitivity)
	}

	path, err := e.graph.ShortestPath(sourceID, targetID)
	if err != nil {
		return nil, err
	}

	source, ok := e.graph.Node(sourceID)
	if !ok {
		return nil, fmt.Errorf("propagate: source %d: %w", sourceID, store.ErrNodeNotFound)
	}

	message, err := models.NewMessage(source.IdeologyScore)
	if err != nil {
		return nil, fmt.Errorf("propagate: %w", err)
	}

	trace := &Trace{
		Path:            path,
		InitialIdeology: message.IdeologyScore,
		State:           StateContinuing,
		Results:         make([]Result, 0, max(len(path)-2, 0)),
		EdgeValues:      make(map[store.Edge]float64, len(path)-1),
	}

	var fidelityDrift, plausibilityDrift float64

	for hop := 0; hop < len(path)-1; hop++ {
		current, ok := e.graph.Node(path[hop])
		if !ok {
			return nil, fmt.Errorf("propagate: node %d on path: %w", path[hop], store.ErrNodeNotFound)
		}

		before := message.IdeologyScore
		after := current.Transform(before, sensitivity)
		message.IdeologyScore = after

		// The edge to the next node carries the transformed value.
		trace.EdgeValues[store.Edge{From: path[hop], To: path[hop+1]}] = after

		if after == 0 || after == 1 {
			trace.State = StateSaturated
		}

		if hop > 0 {
			nodeDrift := after - before
			fidelityDrift += math.Abs(nodeDrift)
			plausibilityDrift += nodeDrift

			trace.Results = append(trace.Results, Result{
				Hop:               hop,
				NodeID:            current.ID,
				PathLength:        len(path),
				InitialIdeology:   trace.InitialIdeology,
				NodeIdeology:      current.IdeologyScore,
				Sensitivity:       sensitivity,
				BiasMultiplier:    current.BiasMultiplier,
				Before:            before,
				After:             after,
				FidelityDrift:     fidelityDrift,
				PlausibilityDrift: plausibilityDrift,
				State:             trace.State,
			})
		}

		if trace.State == StateSaturated {
			break
		}
	}

	trace.FinalIdeology = message.IdeologyScore
	return trace, nil
}
