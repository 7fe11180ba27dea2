// Package service implements the protocol-agnostic task operations. Both the
// REST handlers and the GraphQL resolvers delegate here exclusively, so the
// two protocols cannot drift apart on validation or lookup behavior.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jaekwang-park/taskboard/internal/identity"
	"github.com/jaekwang-park/taskboard/internal/model"
	"github.com/jaekwang-park/taskboard/internal/repository"
)

type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, title string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, title)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (model.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// Toggle flips done on a live task. The read-then-write is not atomic:
// concurrent toggles on the same id race at the store and the last write
// wins.
func (s *TaskService) Toggle(ctx context.Context, id string) (model.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task for toggle: %w", err)
	}

	updated, err := s.repo.SetDone(ctx, id, !existing.Done)
	if err != nil {
		if isNotFound(err) {
			// deleted between the fetch and the update
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to toggle task: %w", err)
	}
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// isNotFound treats a malformed external id the same as a missing record, so
// neither protocol leaks store-level id parsing faults.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound) || errors.Is(err, identity.ErrInvalidID)
}
