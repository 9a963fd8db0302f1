package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "decidr/internal/task/delivery/http"
)

// setupTaskDomain registers the task list and suggestion routes.
// The use case is built by the caller so it can be initialised before serving.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.dates)

	// Routes: /api/v1/tasks, /api/v1/suggestions
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
