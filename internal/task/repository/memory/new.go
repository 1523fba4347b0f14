package memory

import (
	"sync"

	"quick-capture/internal/model"
	pkgLog "quick-capture/pkg/log"
)

// implRepository is an in-process task store. Tasks live in a map keyed by
// ID; order keeps insertion order so listings can be returned newest first.
type implRepository struct {
	l pkgLog.Logger

	mu    sync.RWMutex
	tasks map[string]model.Task
	order []string
}

func New(l pkgLog.Logger) *implRepository {
	return &implRepository{
		l:     l,
		tasks: make(map[string]model.Task),
	}
}
