package memory

import (
	"sync"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/reminder/repository"
	pkgLog "smart-todo/pkg/log"
)

// implRepository is an in-memory reminder store guarded by a RWMutex.
type implRepository struct {
	l    pkgLog.Logger
	mu   sync.RWMutex
	byID map[string]model.Reminder
	now  func() time.Time
}

// New creates a new in-memory reminder repository. A nil clock defaults
// to time.Now.
func New(l pkgLog.Logger, clock func() time.Time) repository.Repository {
	if clock == nil {
		clock = time.Now
	}
	return &implRepository{
		l:    l,
		byID: make(map[string]model.Reminder),
		now:  clock,
	}
}
