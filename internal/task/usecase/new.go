package usecase

import (
	"time"

	"smart-todo/internal/engine"
	"smart-todo/internal/task/repository"
	pkgLog "smart-todo/pkg/log"
	"smart-todo/pkg/mailer"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	eng      *engine.Engine
	mail     mailer.Mailer
	notifyTo string
	now      func() time.Time
}

// New creates a new task UseCase instance. A nil mailer disables
// completion notifications. A nil clock defaults to time.Now; tests
// inject a fixed clock so every engine-derived timestamp is
// reproducible.
func New(l pkgLog.Logger, repo repository.Repository, eng *engine.Engine, mail mailer.Mailer, notifyTo string, clock func() time.Time) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		eng:      eng,
		mail:     mail,
		notifyTo: notifyTo,
		now:      clock,
	}
}
