package models

import (
	"fmt"
	"math"
)

// Message carries an ideology score along a propagation path. It is created
// from the source node's score, mutated once per hop, and discarded when the
// run ends; no state survives across runs.
type Message struct {
	IdeologyScore float64
}

// NewMessage constructs a Message with the given starting ideology.
// The score must be in [0,1].
func NewMessage(ideologyScore float64) (*Message, error) {
	if math.IsNaN(ideologyScore) || ideologyScore < 0 || ideologyScore > 1 {
		return nil, fmt.Errorf("message ideology score must be in [0,1], got %v", ideologyScore)
	}
	return &Message{IdeologyScore: ideologyScore}, nil
}
