package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/iels/iels/internal/archive"
	"github.com/iels/iels/internal/registry"
)

type createRunRequest struct {
	Project string `json:"project"`
	Seed    uint64 `json:"seed"`
	Length  int    `json:"length"`
}

type runResponse struct {
	ID           string          `json:"id"`
	ProjectID    string          `json:"project_id"`
	Seed         uint64          `json:"seed"`
	Length       int             `json:"length"`
	Status       string          `json:"status"`
	Score        *float64        `json:"score,omitempty"`
	Band         *string         `json:"band,omitempty"`
	Breakdown    json.RawMessage `json:"breakdown,omitempty"`
	SystemRef    *string         `json:"system_ref,omitempty"`
	ResultRef    *string         `json:"result_ref,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

func runToResponse(r *registry.Run) runResponse {
	return runResponse{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		Seed:         r.Seed,
		Length:       r.Length,
		Status:       r.Status,
		Score:        r.Score,
		Band:         r.Band,
		Breakdown:    r.Breakdown,
		SystemRef:    r.SystemRef,
		ResultRef:    r.ResultRef,
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req createRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Project == "" {
		writeError(w, http.StatusBadRequest, "project is required")
		return
	}

	runID, err := h.processor.ProcessRun(r.Context(), archive.RunRequest{
		ProjectName: req.Project,
		Seed:        req.Seed,
		Length:      req.Length,
	})
	if err != nil {
		log.Printf("process run: %v", err)
		if runID == "" {
			writeError(w, http.StatusInternalServerError, "run failed")
			return
		}
		// The run row exists and records the failure; report it.
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"id":    runID,
			"error": "run failed",
		})
		return
	}

	run, err := h.reg.GetRun(r.Context(), runID)
	if err != nil {
		log.Printf("get run after processing: %v", err)
		writeError(w, http.StatusInternalServerError, "run lookup failed")
		return
	}

	writeJSON(w, http.StatusCreated, runToResponse(run))
}

func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("runID")

	run, err := h.reg.GetRun(r.Context(), runID)
	if err != nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}

	writeJSON(w, http.StatusOK, runToResponse(run))
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.reg.ListProjects(r.Context())
	if err != nil {
		log.Printf("list projects: %v", err)
		writeError(w, http.StatusInternalServerError, "listing projects failed")
		return
	}

	type projectResponse struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		CreatedAt string `json:"created_at"`
	}
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectResponse{
			ID:        p.ID,
			Name:      p.Name,
			CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleListProjectRuns(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("project")

	project, err := h.reg.GetProjectByName(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	runs, err := h.reg.ListRunsByProject(r.Context(), project.ID)
	if err != nil {
		log.Printf("list runs: %v", err)
		writeError(w, http.StatusInternalServerError, "listing runs failed")
		return
	}

	out := make([]runResponse, 0, len(runs))
	for i := range runs {
		out = append(out, runToResponse(&runs[i]))
	}

	writeJSON(w, http.StatusOK, out)
}
