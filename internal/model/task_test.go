package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jaekwang-park/taskboard/internal/model"
)

func TestTask_JSONFieldNames(t *testing.T) {
	task := model.Task{
		ID:        "665f1c2ab3d4e5f601234567",
		Title:     "Buy groceries",
		Done:      false,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range []string{"id", "title", "done", "createdAt", "updatedAt"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected JSON field %q, got %s", key, data)
		}
	}
	if len(fields) != 5 {
		t.Errorf("expected 5 JSON fields, got %d: %s", len(fields), data)
	}
}
