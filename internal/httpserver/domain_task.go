package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "todo-manager/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks. The use case is built in main
// because it owns state that must be loaded before serving.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.dueParser)
	taskHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
