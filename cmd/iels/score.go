package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/iels/iels/pkg/config"
	"github.com/iels/iels/pkg/scoring"
	"github.com/iels/iels/pkg/surface"
	"github.com/iels/iels/pkg/synth"
	"github.com/iels/iels/pkg/system"
)

func newScoreCmd() *cobra.Command {
	var (
		seed      uint64
		length    int
		input     string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Full Earth-likeness scoring pipeline",
		Long:  `Runs synthesis (or loads a saved system), normalization, scoring, and rendering.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.Context(), scoreOpts{
				seed:      seed,
				length:    length,
				input:     input,
				outputFmt: outputFmt,
				seedSet:   cmd.Flags().Changed("seed"),
				lenSet:    cmd.Flags().Changed("length"),
			})
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", synth.DefaultSeed, "Seed for the pseudo-random source")
	cmd.Flags().IntVar(&length, "length", synth.DefaultLength, "Samples per indicator series")
	cmd.Flags().StringVar(&input, "input", "", "Score a previously saved system instead of generating one")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

type scoreOpts struct {
	seed      uint64
	length    int
	input     string
	outputFmt string
	seedSet   bool
	lenSet    bool
}

func runScore(ctx context.Context, opts scoreOpts) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg := loadConfig(cwd)

	// Step 1: Obtain a system
	var sys *system.System
	if opts.input != "" {
		fmt.Fprintf(os.Stderr, "Step 1/3: Loading system from %s...\n", opts.input)
		sys, err = system.LoadSystem(opts.input)
		if err != nil {
			return fmt.Errorf("loading system: %w", err)
		}
	} else {
		seed := opts.seed
		if !opts.seedSet {
			seed = cfg.Synthesis.Seed
		}
		length := opts.length
		if !opts.lenSet {
			length = cfg.Synthesis.Length
		}

		fmt.Fprintf(os.Stderr, "Step 1/3: Generating system (seed %d, length %d)...\n", seed, length)
		sys, err = (&synth.Generator{Seed: seed, Length: length}).Generate(ctx)
		if err != nil {
			return fmt.Errorf("generating system: %w", err)
		}
	}
	fmt.Fprintf(os.Stderr, "  %d series, %d samples\n", sys.Stats.SeriesCount, sys.Stats.SampleCount)

	// Step 2: Score (indicators normalize their own series)
	fmt.Fprintf(os.Stderr, "Step 2/3: Scoring...\n")
	indicators := scoring.IndicatorsWithWeights(cfg.Scoring.Weights)
	engine := scoring.NewEngine(indicators...)

	result, err := engine.Score(sys)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	// Save result to disk for later comparison
	saveScoreResult(cwd, result)

	// Step 3: Render output
	fmt.Fprintf(os.Stderr, "Step 3/3: Rendering...\n")
	var renderer surface.Renderer
	switch opts.outputFmt {
	case "json":
		renderer = &surface.JSONRenderer{}
	default:
		renderer = &surface.TerminalRenderer{}
	}
	if err := renderer.Render(os.Stdout, result); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	return nil
}

// savedResult wraps a score result with metadata for compare and the daemon.
type savedResult struct {
	*scoring.ScoreResult
	ID         string `json:"id"`
	AnalyzedAt string `json:"analyzed_at"`
}

// saveScoreResult persists a score result to the score cache directory.
func saveScoreResult(cwd string, result *scoring.ScoreResult) {
	scoreDir := config.ScoreDir(cwd)
	if err := os.MkdirAll(scoreDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create score dir: %v\n", err)
		return
	}

	wrapped := savedResult{
		ScoreResult: result,
		ID:          result.SystemID,
		AnalyzedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(wrapped, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to marshal score result: %v\n", err)
		return
	}

	path := filepath.Join(scoreDir, result.SystemID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save score result: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Score saved: %s\n", path)
}
