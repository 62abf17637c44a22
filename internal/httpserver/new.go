package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo/config"
	"smart-todo/internal/engine"
	reminderRepo "smart-todo/internal/reminder/repository"
	taskRepo "smart-todo/internal/task/repository"
	"smart-todo/pkg/log"
	"smart-todo/pkg/mailer"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string

	// Task intelligence
	engine *engine.Engine

	// Stores, shared with the reminder dispatcher
	taskRepo     taskRepo.Repository
	reminderRepo reminderRepo.Repository

	// Notifications, nil when SMTP is disabled
	mailer   mailer.Mailer
	notifyTo string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Config      *config.Config
	Port        int
	Mode        string
	Environment string

	Engine       *engine.Engine
	TaskRepo     taskRepo.Repository
	ReminderRepo reminderRepo.Repository

	Mailer   mailer.Mailer
	NotifyTo string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		cfg:          cfg.Config,
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		engine:       cfg.Engine,
		taskRepo:     cfg.TaskRepo,
		reminderRepo: cfg.ReminderRepo,
		mailer:       cfg.Mailer,
		notifyTo:     cfg.NotifyTo,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg == nil {
		return errors.New("config is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.engine == nil {
		return errors.New("engine is required")
	}
	if srv.taskRepo == nil {
		return errors.New("task repository is required")
	}
	if srv.reminderRepo == nil {
		return errors.New("reminder repository is required")
	}
	return nil
}
