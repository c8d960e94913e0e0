package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/iels/iels/internal/registry"
	"github.com/iels/iels/pkg/scoring"
	"github.com/iels/iels/pkg/synth"
	"github.com/iels/iels/pkg/system"
)

// Run lifecycle states.
const (
	StatusQueued    = "QUEUED"
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// RunRequest describes a scoring run to execute.
type RunRequest struct {
	ProjectName string
	Seed        uint64
	Length      int
}

// Scorer abstracts the scoring engine so the archive package does not
// depend on a concrete engine configuration.
type Scorer interface {
	Score(sys *system.System) (*scoring.ScoreResult, error)
}

// Service orchestrates the hosted scoring pipeline.
type Service struct {
	projects *registry.Service
	storage  StorageClient
	scorer   Scorer
}

// NewService creates a new archive Service.
func NewService(projects *registry.Service, storage StorageClient, scorer Scorer) *Service {
	return &Service{
		projects: projects,
		storage:  storage,
		scorer:   scorer,
	}
}

// ProcessRun executes the full pipeline for one run request: ensure the
// project exists, synthesize the system, score it, and persist both blobs
// and the run row. Returns the run ID.
func (s *Service) ProcessRun(ctx context.Context, req RunRequest) (runID string, err error) {
	if req.Length <= 0 {
		req.Length = synth.DefaultLength
	}

	project, err := s.projects.EnsureProject(ctx, req.ProjectName)
	if err != nil {
		return "", fmt.Errorf("ensure project: %w", err)
	}

	runID, err = s.projects.CreateRun(ctx, project.ID, req.Seed, req.Length)
	if err != nil {
		return "", fmt.Errorf("create run: %w", err)
	}

	if err = s.projects.UpdateRunStatus(ctx, runID, StatusRunning, nil); err != nil {
		return runID, fmt.Errorf("update status to running: %w", err)
	}

	// On failure, mark the run as failed
	defer func() {
		if err != nil {
			errMsg := err.Error()
			if updateErr := s.projects.UpdateRunStatus(ctx, runID, StatusFailed, &errMsg); updateErr != nil {
				log.Printf("failed to update run status: %v", updateErr)
			}
		}
	}()

	// 1. Synthesize
	gen := &synth.Generator{Seed: req.Seed, Length: req.Length}
	sys, err := gen.Generate(ctx)
	if err != nil {
		return runID, fmt.Errorf("generate system: %w", err)
	}

	sysData, err := json.Marshal(sys)
	if err != nil {
		return runID, fmt.Errorf("marshal system: %w", err)
	}
	if err = s.storage.PutSystem(ctx, project.ID, sys.ID, sysData); err != nil {
		return runID, fmt.Errorf("put system blob: %w", err)
	}

	// 2. Score
	result, err := s.scorer.Score(sys)
	if err != nil {
		return runID, fmt.Errorf("score: %w", err)
	}

	resultData, err := json.Marshal(result)
	if err != nil {
		return runID, fmt.Errorf("marshal result: %w", err)
	}
	if err = s.storage.PutResult(ctx, project.ID, runID, resultData); err != nil {
		return runID, fmt.Errorf("put result blob: %w", err)
	}

	// 3. Finalize run row
	breakdownJSON, err := json.Marshal(result.Breakdown)
	if err != nil {
		return runID, fmt.Errorf("marshal breakdown: %w", err)
	}

	systemRef := fmt.Sprintf("systems/%s/%s.json", project.ID, sys.ID)
	resultRef := fmt.Sprintf("results/%s/%s.json", project.ID, runID)
	if err = s.projects.CompleteRun(ctx, runID, result.Score, result.Band, breakdownJSON, systemRef, resultRef); err != nil {
		return runID, fmt.Errorf("complete run: %w", err)
	}

	log.Printf("run %s completed: system=%s score=%.6f band=%s", runID, sys.ID, result.Score, result.Band)
	return runID, nil
}
