package memory

import (
	"sync"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task/repository"
	pkgLog "smart-todo/pkg/log"
)

// implRepository is an in-memory task store guarded by a RWMutex.
// Safe for concurrent use; data does not survive a restart.
type implRepository struct {
	l     pkgLog.Logger
	mu    sync.RWMutex
	tasks map[string]model.Task
	now   func() time.Time
}

// New creates an in-memory task repository. A nil clock defaults to
// time.Now; tests inject a fixed clock for deterministic timestamps.
func New(l pkgLog.Logger, clock func() time.Time) repository.Repository {
	if clock == nil {
		clock = time.Now
	}
	return &implRepository{
		l:     l,
		tasks: make(map[string]model.Task),
		now:   clock,
	}
}
