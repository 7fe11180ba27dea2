package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jaekwang-park/taskboard/internal/http/handler"
	"github.com/jaekwang-park/taskboard/internal/model"
	"github.com/jaekwang-park/taskboard/internal/repository"
	"github.com/jaekwang-park/taskboard/internal/service"
)

// mockTaskRepo for handler tests
type mockTaskRepo struct {
	listFn    func(ctx context.Context) ([]model.Task, error)
	createFn  func(ctx context.Context, title string) (model.Task, error)
	getByIDFn func(ctx context.Context, id string) (model.Task, error)
	setDoneFn func(ctx context.Context, id string, done bool) (model.Task, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockTaskRepo) List(ctx context.Context) ([]model.Task, error) {
	return m.listFn(ctx)
}
func (m *mockTaskRepo) Create(ctx context.Context, title string) (model.Task, error) {
	return m.createFn(ctx, title)
}
func (m *mockTaskRepo) GetByID(ctx context.Context, id string) (model.Task, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockTaskRepo) SetDone(ctx context.Context, id string, done bool) (model.Task, error) {
	return m.setDoneFn(ctx, id, done)
}
func (m *mockTaskRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

var now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func sampleTask() model.Task {
	return model.Task{
		ID:        "665f1c2ab3d4e5f601234567",
		Title:     "Buy groceries",
		Done:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTaskHandler(repo *mockTaskRepo) *handler.TaskHandler {
	return handler.NewTaskHandler(service.NewTaskService(repo))
}

func TestTaskHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		repoFn     func(ctx context.Context) ([]model.Task, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "empty list renders as array",
			repoFn: func(ctx context.Context) ([]model.Task, error) {
				return []model.Task{}, nil
			},
			wantStatus: http.StatusOK,
			wantBody:   "[]\n",
		},
		{
			name: "store failure",
			repoFn: func(ctx context.Context) ([]model.Task, error) {
				return nil, fmt.Errorf("store down")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTaskHandler(&mockTaskRepo{listFn: tt.repoFn})
			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestTaskHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		repoErr    error
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			body:       `{"title":"Buy groceries"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "empty title",
			body:       `{"title":""}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "title required",
		},
		{
			name:       "whitespace title",
			body:       `{"title":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "title required",
		},
		{
			name:       "missing title",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "title required",
		},
		{
			name:       "invalid json",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
			wantError:  "title required",
		},
		{
			name:       "store failure",
			body:       `{"title":"Buy groceries"}`,
			repoErr:    fmt.Errorf("store down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTaskRepo{
				createFn: func(ctx context.Context, title string) (model.Task, error) {
					if tt.repoErr != nil {
						return model.Task{}, tt.repoErr
					}
					result := sampleTask()
					result.Title = title
					return result, nil
				},
			}

			h := newTaskHandler(repo)
			req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.wantStatus, w.Code, w.Body.String())
			}

			if tt.wantStatus == http.StatusCreated {
				var result model.Task
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Title != "Buy groceries" {
					t.Errorf("expected title=%q, got %q", "Buy groceries", result.Title)
				}
				if result.Done {
					t.Error("expected done=false on a new task")
				}
				return
			}

			if tt.wantError != "" {
				var result handler.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Error != tt.wantError {
					t.Errorf("expected error=%q, got %q", tt.wantError, result.Error)
				}
			}
		})
	}
}

func TestTaskHandler_Toggle(t *testing.T) {
	tests := []struct {
		name       string
		getErr     error
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			getErr:     repository.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "not found",
		},
		{
			name:       "store failure",
			getErr:     fmt.Errorf("store down"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTaskRepo{
				getByIDFn: func(ctx context.Context, id string) (model.Task, error) {
					if tt.getErr != nil {
						return model.Task{}, tt.getErr
					}
					return sampleTask(), nil
				},
				setDoneFn: func(ctx context.Context, id string, done bool) (model.Task, error) {
					result := sampleTask()
					result.Done = done
					return result, nil
				},
			}

			h := newTaskHandler(repo)
			req := httptest.NewRequest(http.MethodPatch, "/tasks/"+sampleTask().ID+"/toggle", nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.wantStatus, w.Code, w.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var result model.Task
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if !result.Done {
					t.Error("expected done=true after toggle")
				}
			}
		})
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		repoErr    error
		wantStatus int
	}{
		{
			name:       "success",
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			repoErr:    repository.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTaskRepo{
				deleteFn: func(ctx context.Context, id string) error {
					return tt.repoErr
				},
			}

			h := newTaskHandler(repo)
			req := httptest.NewRequest(http.MethodDelete, "/tasks/"+sampleTask().ID, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.wantStatus, w.Code, w.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var result map[string]bool
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if !result["ok"] {
					t.Errorf(`expected {"ok":true}, got %s`, w.Body.String())
				}
			}
		})
	}
}

func TestTaskHandler_MethodNotAllowed(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"put collection", http.MethodPut, "/tasks"},
		{"get item", http.MethodGet, "/tasks/665f1c2ab3d4e5f601234567"},
		{"post toggle", http.MethodPost, "/tasks/665f1c2ab3d4e5f601234567/toggle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTaskHandler(&mockTaskRepo{})
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected status 405, got %d", w.Code)
			}
		})
	}
}
