package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jaekwang-park/taskboard/internal/middleware"
	"github.com/jaekwang-park/taskboard/internal/service"
)

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(port, corsOrigin string, logger *slog.Logger, taskSvc *service.TaskService) (*Server, error) {
	router, err := NewRouter(taskSvc, logger)
	if err != nil {
		return nil, err
	}

	// Middleware chain: recovery -> request id -> logging -> cors -> router
	chain := middleware.Recovery(logger)(
		middleware.RequestID()(
			middleware.Logging(logger)(
				middleware.CORS(corsOrigin)(router))))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      chain,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}, nil
}

func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
