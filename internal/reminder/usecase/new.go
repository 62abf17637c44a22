package usecase

import (
	"time"

	"smart-todo/internal/engine"
	"smart-todo/internal/reminder/repository"
	taskRepo "smart-todo/internal/task/repository"
	pkgLog "smart-todo/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	tasks taskRepo.Repository
	eng   *engine.Engine
	now   func() time.Time
}

// New creates a new reminder UseCase instance. A nil clock defaults to
// time.Now.
func New(l pkgLog.Logger, repo repository.Repository, tasks taskRepo.Repository, eng *engine.Engine, clock func() time.Time) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		tasks: tasks,
		eng:   eng,
		now:   clock,
	}
}
