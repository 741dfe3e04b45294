package simulation

import (
	"math"
	"testing"

	"github.com/pcbaker4669/PerceptualDrift/internal/propagation"
)

// AssertFidelityMonotonic asserts that cumulative fidelity drift never
// decreases across the hops of one run.
func AssertFidelityMonotonic(t *testing.T, trace *propagation.Trace) {
	t.Helper()
	prev := 0.0
	for _, r := range trace.Results {
		if r.FidelityDrift < prev {
			t.Errorf("AssertFidelityMonotonic: hop %d: fidelity drift %.6f < previous %.6f", r.Hop, r.FidelityDrift, prev)
		}
		prev = r.FidelityDrift
	}
}

// AssertPlausibilityBounded asserts |plausibility drift| <= fidelity drift
// at every hop: a signed sum can never exceed the sum of absolute values.
func AssertPlausibilityBounded(t *testing.T, trace *propagation.Trace) {
	t.Helper()
	for _, r := range trace.Results {
		if math.Abs(r.PlausibilityDrift) > r.FidelityDrift+1e-12 {
			t.Errorf("AssertPlausibilityBounded: hop %d: |plausibility| %.6f > fidelity %.6f",
				r.Hop, math.Abs(r.PlausibilityDrift), r.FidelityDrift)
		}
	}
}

// AssertValuesInRange asserts every before/after message value lies in [0,1].
func AssertValuesInRange(t *testing.T, trace *propagation.Trace) {
	t.Helper()
	for _, r := range trace.Results {
		if r.Before < 0 || r.Before > 1 {
			t.Errorf("AssertValuesInRange: hop %d: before %.6f outside [0,1]", r.Hop, r.Before)
		}
		if r.After < 0 || r.After > 1 {
			t.Errorf("AssertValuesInRange: hop %d: after %.6f outside [0,1]", r.Hop, r.After)
		}
	}
}

// AssertHaltsOnSaturation asserts that no record follows a saturated one.
func AssertHaltsOnSaturation(t *testing.T, trace *propagation.Trace) {
	t.Helper()
	for i, r := range trace.Results {
		if r.State == propagation.StateSaturated && i != len(trace.Results)-1 {
			t.Errorf("AssertHaltsOnSaturation: hop %d saturated but %d more records follow", r.Hop, len(trace.Results)-1-i)
		}
	}
}

// AssertRecordCount asserts the number of emitted records.
func AssertRecordCount(t *testing.T, trace *propagation.Trace, want int) {
	t.Helper()
	if got := len(trace.Results); got != want {
		t.Errorf("AssertRecordCount: got %d records, want %d", got, want)
	}
}

// AssertState asserts the terminal transmission state of the run.
func AssertState(t *testing.T, trace *propagation.Trace, want propagation.State) {
	t.Helper()
	if trace.State != want {
		t.Errorf("AssertState: got %s, want %s", trace.State, want)
	}
}
