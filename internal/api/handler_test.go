package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iels/iels/internal/archive"
	"github.com/iels/iels/internal/registry"
)

type fakeRegistry struct {
	projects map[string]*registry.Project
	runs     map[string]*registry.Run
}

func (f *fakeRegistry) GetProjectByName(ctx context.Context, name string) (*registry.Project, error) {
	p, ok := f.projects[name]
	if !ok {
		return nil, errors.New("no rows")
	}
	return p, nil
}

func (f *fakeRegistry) ListProjects(ctx context.Context) ([]registry.Project, error) {
	var out []registry.Project
	for _, p := range f.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRegistry) GetRun(ctx context.Context, id string) (*registry.Run, error) {
	r, ok := f.runs[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return r, nil
}

func (f *fakeRegistry) ListRunsByProject(ctx context.Context, projectID string) ([]registry.Run, error) {
	var out []registry.Run
	for _, r := range f.runs {
		if r.ProjectID == projectID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeProcessor struct {
	runID string
	err   error
}

func (f *fakeProcessor) ProcessRun(ctx context.Context, req archive.RunRequest) (string, error) {
	return f.runID, f.err
}

func completedRun(id, projectID string) *registry.Run {
	score := 0.652341
	band := "BALANCED"
	return &registry.Run{
		ID:        id,
		ProjectID: projectID,
		Seed:      42,
		Length:    1000,
		Status:    archive.StatusCompleted,
		Score:     &score,
		Band:      &band,
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestHandler(reg *fakeRegistry, proc *fakeProcessor) *http.ServeMux {
	mux := http.NewServeMux()
	NewHandler(reg, proc).RegisterRoutes(mux)
	return mux
}

func TestHandleCreateRun(t *testing.T) {
	reg := &fakeRegistry{
		projects: map[string]*registry.Project{"verification": {ID: "p1", Name: "verification"}},
		runs:     map[string]*registry.Run{"r1": completedRun("r1", "p1")},
	}
	mux := newTestHandler(reg, &fakeProcessor{runID: "r1"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs",
		strings.NewReader(`{"project":"verification","seed":42,"length":1000}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp runResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != "r1" || resp.Status != archive.StatusCompleted {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Score == nil || *resp.Score != 0.652341 {
		t.Errorf("score = %v, want 0.652341", resp.Score)
	}
}

func TestHandleCreateRunMissingProject(t *testing.T) {
	mux := newTestHandler(&fakeRegistry{}, &fakeProcessor{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader(`{"seed":1}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleCreateRunInvalidBody(t *testing.T) {
	mux := newTestHandler(&fakeRegistry{}, &fakeProcessor{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleCreateRunProcessorFailure(t *testing.T) {
	reg := &fakeRegistry{projects: map[string]*registry.Project{}, runs: map[string]*registry.Run{}}
	mux := newTestHandler(reg, &fakeProcessor{runID: "r9", err: errors.New("synthesis failed")})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs",
		strings.NewReader(`{"project":"verification"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "r9") {
		t.Errorf("expected failed run ID in body: %s", rec.Body.String())
	}
}

func TestHandleGetRun(t *testing.T) {
	reg := &fakeRegistry{
		projects: map[string]*registry.Project{},
		runs:     map[string]*registry.Run{"r1": completedRun("r1", "p1")},
	}
	mux := newTestHandler(reg, &fakeProcessor{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/r1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp runResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Band == nil || *resp.Band != "BALANCED" {
		t.Errorf("band = %v, want BALANCED", resp.Band)
	}
}

func TestHandleGetRunNotFound(t *testing.T) {
	mux := newTestHandler(&fakeRegistry{runs: map[string]*registry.Run{}}, &fakeProcessor{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/missing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleListProjectRuns(t *testing.T) {
	reg := &fakeRegistry{
		projects: map[string]*registry.Project{"verification": {ID: "p1", Name: "verification"}},
		runs: map[string]*registry.Run{
			"r1": completedRun("r1", "p1"),
			"r2": completedRun("r2", "other-project"),
		},
	}
	mux := newTestHandler(reg, &fakeProcessor{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/verification/runs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp []runResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "r1" {
		t.Errorf("unexpected runs: %+v", resp)
	}
}

func TestHandleListProjectRunsUnknownProject(t *testing.T) {
	mux := newTestHandler(&fakeRegistry{projects: map[string]*registry.Project{}}, &fakeProcessor{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/nope/runs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
