// Package report renders propagation results as a line-oriented CSV
// report, one record per observable hop, preceded by a header line.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pcbaker4669/PerceptualDrift/internal/propagation"
)

// header lists the report columns in record order.
var header = []string{
	"run_id",
	"node_id",
	"path_length",
	"initial_ideology",
	"node_ideology",
	"sensitivity",
	"bias_multiplier",
	"ideology_before",
	"ideology_after",
	"fidelity_drift",
	"plausibility_drift",
	"transmission_success",
}

// Writer emits propagation records as CSV. It is owned by the experiment
// driver; the engine hands each Result over at emission time.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// NewWriter creates a report writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteRun writes all records of one run under the given run ID, emitting
// the header first if it has not been written yet.
func (w *Writer) WriteRun(runID int, results []propagation.Result) error {
	if !w.wroteHeader {
		if err := w.csv.Write(header); err != nil {
			return fmt.Errorf("write report header: %w", err)
		}
		w.wroteHeader = true
	}

	for _, r := range results {
		record := []string{
			strconv.Itoa(runID),
			strconv.Itoa(r.NodeID),
			strconv.Itoa(r.PathLength),
			fmt.Sprintf("%.5f", r.InitialIdeology),
			fmt.Sprintf("%.5f", r.NodeIdeology),
			// Sensitivity is reported as given, not rounded.
			strconv.FormatFloat(r.Sensitivity, 'g', -1, 64),
			fmt.Sprintf("%.2f", r.BiasMultiplier),
			fmt.Sprintf("%.5f", r.Before),
			fmt.Sprintf("%.5f", r.After),
			fmt.Sprintf("%.5f", r.FidelityDrift),
			fmt.Sprintf("%.5g", r.PlausibilityDrift),
			strconv.FormatBool(r.Success()),
		}
		if err := w.csv.Write(record); err != nil {
			return fmt.Errorf("write report record (run %d, node %d): %w", runID, r.NodeID, err)
		}
	}
	return nil
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
