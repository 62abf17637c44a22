package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	reminderHTTP "smart-todo/internal/reminder/delivery/http"
	reminderUC "smart-todo/internal/reminder/usecase"
	taskHTTP "smart-todo/internal/task/delivery/http"
	taskUC "smart-todo/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := taskUC.New(srv.l, srv.taskRepo, srv.engine, srv.mailer, srv.notifyTo, nil)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

// setupReminderDomain registers the reminder scheduling routes. Delivery
// of due reminders is the dispatcher's job and runs outside the server.
func (srv *HTTPServer) setupReminderDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := reminderUC.New(srv.l, srv.reminderRepo, srv.taskRepo, srv.engine, nil)
	h := reminderHTTP.New(srv.l, uc)
	reminderHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Reminder domain registered")
	return nil
}
