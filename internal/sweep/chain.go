// Package sweep implements the experiment driver: it builds chain graphs
// from sweep parameters, invokes the propagation engine for each parameter
// combination, and routes the per-hop results to the report writer.
package sweep

import (
	"fmt"
	"math/rand"

	"github.com/pcbaker4669/PerceptualDrift/internal/models"
	"github.com/pcbaker4669/PerceptualDrift/internal/store"
)

// BuildChainGraph constructs a directed chain of n nodes with IDs 0..n-1,
// each node auto-linked from its predecessor. Ideology scores are drawn
// uniformly from [0,1) and bias multipliers uniformly from
// [biasMin, biasMax], all from the supplied generator — randomness is an
// injected dependency, never ambient process state.
func BuildChainGraph(n int, biasMin, biasMax float64, rng *rand.Rand) (*store.MemoryGraph, error) {
	if n < 2 {
		return nil, fmt.Errorf("build chain graph: need at least 2 nodes, got %d", n)
	}
	if biasMin <= 0 || biasMax < biasMin {
		return nil, fmt.Errorf("build chain graph: invalid bias range [%v, %v]", biasMin, biasMax)
	}

	g := store.NewMemoryGraph()
	for id := 0; id < n; id++ {
		bias := biasMin + rng.Float64()*(biasMax-biasMin)
		node, err := models.NewNode(id, rng.Float64(), bias)
		if err != nil {
			return nil, fmt.Errorf("build chain graph: %w", err)
		}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("build chain graph: %w", err)
		}
		if id > 0 {
			if err := g.AddEdge(id-1, id); err != nil {
				return nil, fmt.Errorf("build chain graph: %w", err)
			}
		}
	}
	return g, nil
}
