// Package api implements the hosted IELS REST API.
// It provides run execution and read endpoints backed by Postgres and blob storage.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iels/iels/internal/archive"
	"github.com/iels/iels/internal/registry"
)

// RunRegistry is the subset of the registry service the API reads from.
type RunRegistry interface {
	GetProjectByName(ctx context.Context, name string) (*registry.Project, error)
	ListProjects(ctx context.Context) ([]registry.Project, error)
	GetRun(ctx context.Context, id string) (*registry.Run, error)
	ListRunsByProject(ctx context.Context, projectID string) ([]registry.Run, error)
}

// RunProcessor executes scoring runs.
type RunProcessor interface {
	ProcessRun(ctx context.Context, req archive.RunRequest) (string, error)
}

// Handler is the top-level API handler for the hosted IELS service.
type Handler struct {
	reg       RunRegistry
	processor RunProcessor
}

// NewHandler creates a new API handler.
func NewHandler(reg RunRegistry, processor RunProcessor) *Handler {
	return &Handler{reg: reg, processor: processor}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/runs", h.handleCreateRun)
	mux.HandleFunc("GET /api/v1/runs/{runID}", h.handleGetRun)
	mux.HandleFunc("GET /api/v1/projects", h.handleListProjects)
	mux.HandleFunc("GET /api/v1/projects/{project}/runs", h.handleListProjectRuns)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
