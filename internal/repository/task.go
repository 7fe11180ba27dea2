package repository

import (
	"context"
	"errors"

	"github.com/jaekwang-park/taskboard/internal/model"
)

// ErrNotFound reports that no live record matches the given identifier. It is
// a normal outcome of lookups and mutations, distinct from store
// unavailability, which is returned as-is.
var ErrNotFound = errors.New("task not found")

// TaskRepository is the store adapter. Identifiers are the external string
// form; each implementation converts to its native id type internally and
// rejects malformed ids with identity.ErrInvalidID before touching the store.
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, title string) (model.Task, error)
	GetByID(ctx context.Context, id string) (model.Task, error)
	SetDone(ctx context.Context, id string, done bool) (model.Task, error)
	Delete(ctx context.Context, id string) error
}
