package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaekwang-park/taskboard/internal/identity"
	"github.com/jaekwang-park/taskboard/internal/model"
)

// PostgresTaskRepository is the relational backend. Expected schema:
//
//	CREATE TABLE tasks (
//	    id         BIGSERIAL PRIMARY KEY,
//	    title      TEXT NOT NULL,
//	    done       BOOLEAN NOT NULL DEFAULT FALSE,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresTaskRepository struct {
	db    *sql.DB
	codec identity.SerialCodec
}

func NewPostgresTask(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	query := `
		SELECT id, title, done, created_at, updated_at
		FROM tasks
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *PostgresTaskRepository) Create(ctx context.Context, title string) (model.Task, error) {
	query := `
		INSERT INTO tasks (title)
		VALUES ($1)
		RETURNING id, title, done, created_at, updated_at`

	task, err := r.scanTask(r.db.QueryRowContext(ctx, query, title))
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (r *PostgresTaskRepository) GetByID(ctx context.Context, id string) (model.Task, error) {
	internalID, err := r.codec.ToInternal(id)
	if err != nil {
		return model.Task{}, err
	}

	query := `
		SELECT id, title, done, created_at, updated_at
		FROM tasks
		WHERE id = $1`

	task, err := r.scanTask(r.db.QueryRowContext(ctx, query, internalID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (r *PostgresTaskRepository) SetDone(ctx context.Context, id string, done bool) (model.Task, error) {
	internalID, err := r.codec.ToInternal(id)
	if err != nil {
		return model.Task{}, err
	}

	query := `
		UPDATE tasks
		SET done = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, title, done, created_at, updated_at`

	task, err := r.scanTask(r.db.QueryRowContext(ctx, query, done, internalID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id string) error {
	internalID, err := r.codec.ToInternal(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, internalID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func (r *PostgresTaskRepository) scanTask(row scannable) (model.Task, error) {
	var t model.Task
	var internalID int64
	err := row.Scan(&internalID, &t.Title, &t.Done, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, err
		}
		return model.Task{}, fmt.Errorf("failed to scan task: %w", err)
	}
	t.ID = r.codec.ToExternal(internalID)
	return t, nil
}

// ensure compile-time interface compliance
var _ TaskRepository = (*PostgresTaskRepository)(nil)
