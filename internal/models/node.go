// Package models defines the core domain types for perceptual drift
// simulations: network nodes with fixed ideology and bias, and the message
// whose ideology drifts as it passes through them.
package models

import (
	"fmt"
	"math"
)

// Node is a participant in the network. Its ideology score and bias
// multiplier are fixed at creation; a node placed in a graph is immutable.
type Node struct {
	// ID uniquely identifies the node within one graph.
	ID int

	// IdeologyScore is the node's inherent stance on the [0,1] axis.
	IdeologyScore float64

	// BiasMultiplier scales how strongly this node distorts a passing
	// message. Always positive.
	BiasMultiplier float64
}

// NewNode validates and constructs a Node. IdeologyScore must be in [0,1]
// and BiasMultiplier must be positive; invalid inputs are rejected here
// rather than clamped.
func NewNode(id int, ideologyScore, biasMultiplier float64) (Node, error) {
	if math.IsNaN(ideologyScore) || ideologyScore < 0 || ideologyScore > 1 {
		return Node{}, fmt.Errorf("node %d: ideology score must be in [0,1], got %v", id, ideologyScore)
	}
	if math.IsNaN(biasMultiplier) || biasMultiplier <= 0 {
		return Node{}, fmt.Errorf("node %d: bias multiplier must be positive, got %v", id, biasMultiplier)
	}
	return Node{
		ID:             id,
		IdeologyScore:  ideologyScore,
		BiasMultiplier: biasMultiplier,
	}, nil
}

// Transform applies this node's perturbation to an incoming message
// ideology and returns the outgoing value.
//
// The drift magnitude is quadratic in the ideological gap:
//
//	drift = bias * sensitivity * (|node - incoming|)²
//
// so near-aligned messages pass almost untouched while distant ones are
// distorted super-linearly. The node always pulls the message toward its
// own score, but because the magnitude depends only on the squared gap the
// result can overshoot past the node's score — that overcorrection is the
// point, not a convergence bug.
//
// The result is clamped to [0,1]. Transform is pure: it never modifies the
// node or the incoming value.
func (n Node) Transform(incoming, sensitivity float64) float64 {
	delta := math.Abs(n.IdeologyScore - incoming)
	drift := n.BiasMultiplier * sensitivity * delta * delta

	out := incoming - drift
	if n.IdeologyScore > incoming {
		out = incoming + drift
	}
	return clamp(out)
}

// clamp bounds v to the closed interval [0,1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
