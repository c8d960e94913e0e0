package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/iels/iels/pkg/scoring"
)

// TerminalRenderer renders ScoreResult as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func bandColor(band string) string {
	if noColor() {
		return ""
	}
	switch band {
	case "EARTHLIKE", "BALANCED":
		return colorGreen
	case "DRIFTING":
		return colorYellow
	case "UNSTABLE", "INERT":
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.ScoreResult) error {
	bc := bandColor(result.Band)

	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("IELS: %s — Score %.6f",
			colored(result.Band, bc), result.Score)))

	// Stats
	fmt.Fprintf(w, "Analyzed: %d series / %d samples (seed %d)\n\n",
		result.SystemStats.SeriesCount, result.SystemStats.SampleCount, result.Seed)

	// Per-indicator means
	fmt.Fprintln(w, "Indicator means:")
	for _, ir := range result.Breakdown {
		fmt.Fprintf(w, "  %-20s %.6f", ir.Name, ir.Mean)
		if ir.Weight != 1 {
			fmt.Fprintf(w, "  %s", dim(fmt.Sprintf("(weight %.2f)", ir.Weight)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	// Interpretation
	fmt.Fprintln(w, "Interpretation:")
	fmt.Fprintf(w, "  %s\n", dim(InterpretationHigh))
	fmt.Fprintf(w, "  %s\n", dim(InterpretationLow))

	return nil
}
