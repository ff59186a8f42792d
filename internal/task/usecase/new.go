package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"smartodo/internal/task"
	"smartodo/internal/task/repository"
	pkgLog "smartodo/pkg/log"
	"smartodo/pkg/taskparse"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	// Parsing is pure, so drafts can be memoized. Keyed by text plus the
	// reference day, since relative phrases resolve per day.
	parseCache *lru.Cache[string, taskparse.Draft]
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance. cacheSize <= 0 disables the
// parse cache.
func New(l pkgLog.Logger, repo repository.Repository, cacheSize int) *implUseCase {
	var cache *lru.Cache[string, taskparse.Draft]
	if cacheSize > 0 {
		cache, _ = lru.New[string, taskparse.Draft](cacheSize)
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		parseCache: cache,
	}
}
