// Package surface defines output rendering interfaces for IELS results.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"io"

	"github.com/iels/iels/pkg/scoring"
)

// Renderer produces formatted output from a ScoreResult.
type Renderer interface {
	// Render writes the formatted score result to the writer.
	Render(w io.Writer, result *scoring.ScoreResult) error
}

// Interpretation lines printed after every score, fixed display text.
const (
	InterpretationHigh = "IELS close to 1.0 = highly Earth-like informational balance."
	InterpretationLow  = "IELS close to 0.0 = low Earth-likeness."
)
