package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	m "advent.dev/pkg/advent/internal/model"
)

const defaultCacheCleanup = 10 * time.Minute

// SolutionCache remembers reports by day and input hash so unchanged input is
// not solved twice.
type SolutionCache interface {
	Get(ctx context.Context, dir m.Path, day m.Day, inputHash string) (m.Report, bool)
	Set(ctx context.Context, dir m.Path, report m.Report) error
}

// LayeredSolutionCache checks an in-memory layer before the report store and
// promotes store hits into memory.
type LayeredSolutionCache struct {
	memory *gocache.Cache
	store  ReportStore
}

// NewSolutionCache builds a LayeredSolutionCache over store. Memory entries
// expire after ttl.
func NewSolutionCache(store ReportStore, ttl time.Duration) *LayeredSolutionCache {
	return &LayeredSolutionCache{
		memory: gocache.New(ttl, defaultCacheCleanup),
		store:  store,
	}
}

// CacheKey derives the memory key of a report.
func CacheKey(dir m.Path, day m.Day, inputHash string) string {
	return fmt.Sprintf("advent:v1:%s:%02d:%s", dir, uint8(day), inputHash)
}

// Get returns the cached report, if any.
func (c *LayeredSolutionCache) Get(ctx context.Context, dir m.Path, day m.Day, inputHash string) (m.Report, bool) {
	key := CacheKey(dir, day, inputHash)

	if val, found := c.memory.Get(key); found {
		if report, ok := val.(m.Report); ok {
			slog.Debug("Solution cache hit", "layer", "memory", "day", day)
			return report, true
		}
	}

	report, found, err := c.store.LoadReport(ctx, dir, day, inputHash)
	if err != nil {
		slog.Warn("Failed to load cached report", "dir", dir, "day", day, "error", err)
		return m.Report{}, false
	}

	if !found {
		return m.Report{}, false
	}

	slog.Debug("Solution cache hit", "layer", "store", "day", day)
	c.memory.Set(key, report, gocache.DefaultExpiration)

	return report, true
}

// Set stores report in memory and in the report store.
func (c *LayeredSolutionCache) Set(ctx context.Context, dir m.Path, report m.Report) error {
	if err := c.store.SaveReport(ctx, dir, report); err != nil {
		return err
	}

	c.memory.Set(CacheKey(dir, report.Day, report.InputHash), report, gocache.DefaultExpiration)

	return nil
}
