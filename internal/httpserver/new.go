package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"decidr/internal/middleware"
	"decidr/internal/task"
	"decidr/pkg/datemath"
	"decidr/pkg/kvstore"
	"decidr/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Config

	// Task domain
	taskUC task.UseCase
	dates  *datemath.Parser
	store  kvstore.Store
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	// Task domain
	TaskUseCase task.UseCase
	Dates       *datemath.Parser
	// Store backs the readiness probe.
	Store kvstore.Store
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		middleware:  cfg.Middleware,
		taskUC:      cfg.TaskUseCase,
		dates:       cfg.Dates,
		store:       cfg.Store,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
