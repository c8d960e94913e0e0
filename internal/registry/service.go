// Package registry manages hosted-service state: projects and their scoring
// runs, backed by Postgres.
package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Service provides project and run management backed by Postgres.
type Service struct {
	db *sql.DB
}

// Project groups scoring runs under one name.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Run represents one scoring run of a synthetic system.
type Run struct {
	ID           string
	ProjectID    string
	Seed         uint64
	Length       int
	Status       string
	Score        *float64
	Band         *string
	Breakdown    json.RawMessage
	SystemRef    *string
	ResultRef    *string
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewService creates a new registry Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CreateProject creates a new project.
func (s *Service) CreateProject(ctx context.Context, name string) (*Project, error) {
	p := &Project{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO projects (name)
		 VALUES ($1)
		 RETURNING id, name, created_at`,
		name,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// GetProjectByName looks up a project by name.
func (s *Service) GetProjectByName(ctx context.Context, name string) (*Project, error) {
	p := &Project{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM projects WHERE name = $1`,
		name,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get project by name %s: %w", name, err)
	}
	return p, nil
}

// EnsureProject gets or creates a project by name.
func (s *Service) EnsureProject(ctx context.Context, name string) (*Project, error) {
	p, err := s.GetProjectByName(ctx, name)
	if err == nil {
		return p, nil
	}

	p, err = s.CreateProject(ctx, name)
	if err != nil {
		// Could be a race condition; try getting again
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return s.GetProjectByName(ctx, name)
		}
		return nil, fmt.Errorf("ensure project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects ordered by name.
func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM projects ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreateRun inserts a new run record in QUEUED state and returns its ID.
func (s *Service) CreateRun(ctx context.Context, projectID string, seed uint64, length int) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO runs (project_id, seed, length, status)
		 VALUES ($1, $2, $3, 'QUEUED')
		 RETURNING id`,
		projectID, int64(seed), length,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create run: %w", err)
	}
	return id, nil
}

// UpdateRunStatus updates the status and optional error message.
func (s *Service) UpdateRunStatus(ctx context.Context, id, status string, errMsg *string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = $1, error_message = $2, updated_at = now() WHERE id = $3`,
		status, errMsg, id,
	)
	if err != nil {
		return fmt.Errorf("update run status: %w", err)
	}
	return nil
}

// CompleteRun records the final score and blob references for a run.
func (s *Service) CompleteRun(ctx context.Context, id string, score float64, band string, breakdown json.RawMessage, systemRef, resultRef string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs
		 SET status = 'COMPLETED', score = $1, band = $2, breakdown = $3,
		     system_ref = $4, result_ref = $5, updated_at = now()
		 WHERE id = $6`,
		score, band, breakdown, systemRef, resultRef, id,
	)
	if err != nil {
		return fmt.Errorf("complete run: %w", err)
	}
	return nil
}

// GetRun returns a single run by ID.
func (s *Service) GetRun(ctx context.Context, id string) (*Run, error) {
	r := &Run{}
	var seed int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, project_id, seed, length, status, score, band, breakdown,
		        system_ref, result_ref, error_message, created_at, updated_at
		 FROM runs WHERE id = $1`,
		id,
	).Scan(
		&r.ID, &r.ProjectID, &seed, &r.Length, &r.Status, &r.Score, &r.Band, &r.Breakdown,
		&r.SystemRef, &r.ResultRef, &r.ErrorMessage, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	r.Seed = uint64(seed)
	return r, nil
}

// ListRunsByProject returns all runs for a project, newest first.
func (s *Service) ListRunsByProject(ctx context.Context, projectID string) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, seed, length, status, score, band, breakdown,
		        system_ref, result_ref, error_message, created_at, updated_at
		 FROM runs WHERE project_id = $1 ORDER BY created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var seed int64
		if err := rows.Scan(
			&r.ID, &r.ProjectID, &seed, &r.Length, &r.Status, &r.Score, &r.Band, &r.Breakdown,
			&r.SystemRef, &r.ResultRef, &r.ErrorMessage, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Seed = uint64(seed)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
