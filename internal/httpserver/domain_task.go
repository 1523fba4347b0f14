package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "quick-capture/internal/task/delivery/http"
)

// setupTaskDomain registers the task domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, cfg)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
//
// The task use case is built in main so the parser and calendar client can
// be wired from config before the server exists.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
