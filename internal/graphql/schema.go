// Package graphql is the query-language façade. Resolvers translate GraphQL
// operations into the same service calls the REST handlers make; the external
// id strings are byte-identical across both protocols.
package graphql

import (
	"errors"
	"fmt"
	"log/slog"

	gql "github.com/graphql-go/graphql"

	"github.com/jaekwang-park/taskboard/internal/service"
)

type resolver struct {
	svc    *service.TaskService
	logger *slog.Logger
}

// NewSchema builds the task schema: queries tasks/task, mutations
// addTask/toggleTask/deleteTask.
func NewSchema(svc *service.TaskService, logger *slog.Logger) (gql.Schema, error) {
	r := &resolver{svc: svc, logger: logger}

	taskType := gql.NewObject(gql.ObjectConfig{
		Name: "Task",
		Fields: gql.Fields{
			"id":        &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"title":     &gql.Field{Type: gql.NewNonNull(gql.String)},
			"done":      &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
			"createdAt": &gql.Field{Type: gql.DateTime},
			"updatedAt": &gql.Field{Type: gql.DateTime},
		},
	})

	idArg := gql.FieldConfigArgument{
		"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
	}

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"tasks": &gql.Field{
				Type:    gql.NewNonNull(gql.NewList(gql.NewNonNull(taskType))),
				Resolve: r.resolveTasks,
			},
			"task": &gql.Field{
				Type:    taskType,
				Args:    idArg,
				Resolve: r.resolveTask,
			},
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"addTask": &gql.Field{
				Type: taskType,
				Args: gql.FieldConfigArgument{
					"title": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.resolveAddTask,
			},
			"toggleTask": &gql.Field{
				Type:    taskType,
				Args:    idArg,
				Resolve: r.resolveToggleTask,
			},
			"deleteTask": &gql.Field{
				Type:    gql.Boolean,
				Args:    idArg,
				Resolve: r.resolveDeleteTask,
			},
		},
	})

	schema, err := gql.NewSchema(gql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return gql.Schema{}, fmt.Errorf("failed to build schema: %w", err)
	}
	return schema, nil
}

func (r *resolver) resolveTasks(p gql.ResolveParams) (any, error) {
	tasks, err := r.svc.List(p.Context)
	if err != nil {
		return nil, r.protocolError(err)
	}
	return tasks, nil
}

// resolveTask mirrors find semantics: an invalid or absent id yields null,
// not an error.
func (r *resolver) resolveTask(p gql.ResolveParams) (any, error) {
	id, _ := p.Args["id"].(string)

	task, err := r.svc.Get(p.Context, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, nil
		}
		return nil, r.protocolError(err)
	}
	return task, nil
}

func (r *resolver) resolveAddTask(p gql.ResolveParams) (any, error) {
	title, _ := p.Args["title"].(string)

	task, err := r.svc.Create(p.Context, title)
	if err != nil {
		return nil, r.protocolError(err)
	}
	return task, nil
}

func (r *resolver) resolveToggleTask(p gql.ResolveParams) (any, error) {
	id, _ := p.Args["id"].(string)

	task, err := r.svc.Toggle(p.Context, id)
	if err != nil {
		return nil, r.protocolError(err)
	}
	return task, nil
}

func (r *resolver) resolveDeleteTask(p gql.ResolveParams) (any, error) {
	id, _ := p.Args["id"].(string)

	if err := r.svc.Delete(p.Context, id); err != nil {
		return nil, r.protocolError(err)
	}
	return true, nil
}

// protocolError maps service failures onto the stable messages exposed in the
// errors envelope. Store failures are logged server-side and never leaked.
func (r *resolver) protocolError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return errors.New("title required")
	case errors.Is(err, service.ErrNotFound):
		return errors.New("task not found")
	default:
		r.logger.Error("resolver failed", "error", err)
		return errors.New("internal server error")
	}
}
