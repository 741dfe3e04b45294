// Package visualization renders propagated drift graphs in DOT and JSON
// formats. Rendering consumes the graph's node scores and the engine's
// per-edge carried values; it never feeds anything back into a simulation.
package visualization

import (
	"fmt"
	"strings"

	"github.com/pcbaker4669/PerceptualDrift/internal/propagation"
	"github.com/pcbaker4669/PerceptualDrift/internal/store"
)

// Format specifies the output format for graph rendering.
type Format string

const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
)

// ideologyColor buckets a [0,1] ideology score into a cool-to-warm DOT
// color, low scores cold and high scores hot.
func ideologyColor(score float64) string {
	switch {
	case score < 0.2:
		return "steelblue"
	case score < 0.4:
		return "lightskyblue"
	case score < 0.6:
		return "lightgray"
	case score < 0.8:
		return "lightsalmon"
	default:
		return "tomato"
	}
}

// RenderDOT produces a Graphviz DOT representation of the graph. Nodes are
// colored by ideology score; edges traversed by the message are labeled
// with the ideology value that crossed them and drawn bold.
func RenderDOT(g store.Graph, trace *propagation.Trace) string {
	var b strings.Builder
	b.WriteString("digraph drift {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle, style=filled, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	for _, node := range g.Nodes() {
		b.WriteString(fmt.Sprintf("  %d [label=\"%d\\n%.2f\", fillcolor=%q, tooltip=\"bias=%.2f\"];\n",
			node.ID, node.ID, node.IdeologyScore, ideologyColor(node.IdeologyScore), node.BiasMultiplier))
	}
	b.WriteString("\n")

	for _, edge := range g.Edges() {
		carried, traversed := carriedValue(trace, edge)
		if traversed {
			b.WriteString(fmt.Sprintf("  %d -> %d [label=\"%.2f\", style=bold];\n",
				edge.From, edge.To, carried))
		} else {
			b.WriteString(fmt.Sprintf("  %d -> %d [color=gray];\n", edge.From, edge.To))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// RenderJSON produces a JSON-ready graph representation with nodes and
// edges arrays, edges annotated with carried message values where the
// message traversed them.
func RenderJSON(g store.Graph, trace *propagation.Trace) map[string]interface{} {
	nodes := g.Nodes()
	jsonNodes := make([]map[string]interface{}, 0, len(nodes))
	for _, node := range nodes {
		jsonNodes = append(jsonNodes, map[string]interface{}{
			"id":              node.ID,
			"ideology_score":  node.IdeologyScore,
			"bias_multiplier": node.BiasMultiplier,
		})
	}

	edges := g.Edges()
	jsonEdges := make([]map[string]interface{}, 0, len(edges))
	for _, edge := range edges {
		entry := map[string]interface{}{
			"from": edge.From,
			"to":   edge.To,
		}
		if carried, traversed := carriedValue(trace, edge); traversed {
			entry["message_ideology"] = carried
		}
		jsonEdges = append(jsonEdges, entry)
	}

	result := map[string]interface{}{
		"nodes":      jsonNodes,
		"edges":      jsonEdges,
		"node_count": len(jsonNodes),
		"edge_count": len(jsonEdges),
	}
	if trace != nil {
		result["initial_ideology"] = trace.InitialIdeology
		result["final_ideology"] = trace.FinalIdeology
		result["state"] = string(trace.State)
	}
	return result
}

// carriedValue looks up the message value that crossed an edge, if any.
// A nil trace renders the bare graph structure.
func carriedValue(trace *propagation.Trace, edge store.Edge) (float64, bool) {
	if trace == nil {
		return 0, false
	}
	v, ok := trace.EdgeValues[edge]
	return v, ok
}
