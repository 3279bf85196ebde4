// Package uploads keeps the image directory from accumulating files no
// document references anymore: an update that replaces an image or a
// delete of the owning document leaves the old file behind, and nothing
// on the request path cleans it up.
package uploads

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// ReferenceLister yields the set of filenames documents currently point
// at. *store.Store implements it.
type ReferenceLister interface {
	FileNames(ctx context.Context) (map[string]struct{}, error)
}

type Janitor struct {
	store    ReferenceLister
	dir      string
	interval time.Duration
	minAge   time.Duration
}

// NewJanitor builds a sweeper over dir. minAge is the grace period: a
// file younger than it is never collected, so an upload whose document
// insert is still in flight stays safe.
func NewJanitor(store ReferenceLister, dir string, interval, minAge time.Duration) *Janitor {
	return &Janitor{store: store, dir: dir, interval: interval, minAge: minAge}
}

// Run sweeps on the configured interval until ctx is cancelled. Sweep
// failures are logged and the next tick tries again.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed, err := j.Sweep(ctx); err != nil {
				slog.Error("upload sweep", "error", err)
			} else if removed > 0 {
				slog.Info("upload sweep", "removed", removed)
			}
		}
	}
}

// Sweep deletes unreferenced regular files older than the grace age and
// reports how many were removed.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	referenced, err := j.store.FileNames(ctx)
	if err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(j.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-j.minAge)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if _, ok := referenced[entry.Name()]; ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(j.dir, entry.Name())); err != nil {
			slog.Error("remove orphaned upload", "file", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
