package http

import (
	"fmt"
	"log/slog"
	"net/http"

	taskgraphql "github.com/jaekwang-park/taskboard/internal/graphql"
	"github.com/jaekwang-park/taskboard/internal/http/handler"
	"github.com/jaekwang-park/taskboard/internal/service"
)

// NewRouter mounts both protocol façades over the one shared service.
func NewRouter(taskSvc *service.TaskService, logger *slog.Logger) (http.Handler, error) {
	mux := http.NewServeMux()

	// Health check - intentionally at the root for load balancer probes
	mux.Handle("/health", handler.NewHealthHandler())

	// Resource façade
	taskHandler := handler.NewTaskHandler(taskSvc)
	mux.Handle("/tasks", taskHandler)
	mux.Handle("/tasks/", taskHandler)

	// Query-language façade
	schema, err := taskgraphql.NewSchema(taskSvc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	mux.Handle("/graphql", taskgraphql.NewHandler(&schema))

	return mux, nil
}
