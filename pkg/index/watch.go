package index

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps the index live by applying filesystem events to it as they
// happen. It watches every directory under the configured roots, so entries
// appear, change and disappear between queries exactly like they would with
// an externally-maintained index.
type Watcher struct {
	idx     *Index
	exclude []string
	fsw     *fsnotify.Watcher
}

// NewWatcher creates a watcher over the given roots. The exclude globs match
// base names, like during a scan.
func NewWatcher(idx *Index, roots, exclude []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}

	w := &Watcher{idx: idx, exclude: exclude, fsw: fsw}
	for _, root := range roots {
		if err := w.watchTree(root); err != nil {
			if cerr := fsw.Close(); cerr != nil {
				logger.Warnf("closing watcher: %v", cerr)
			}
			return nil, err
		}
	}
	return w, nil
}

// watchTree adds root and every directory beneath it to the watcher.
func (w *Watcher) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warnf("watch: skipping %s: %v", path, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && matchesAny(w.exclude, d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			logger.Warnf("watch: cannot watch %s: %v", path, err)
		}
		return nil
	})
}

// Run applies filesystem events to the index until ctx is canceled or the
// watcher's event channel closes.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			logger.Warnf("closing watcher: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watch: %v", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if matchesAny(w.exclude, name) {
		return
	}

	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		// Renames deliver the old name; the new name arrives as a
		// separate Create event.
		if err := w.idx.removePath(event.Name); err != nil {
			logger.Errorf("watch: removing %s from index: %v", event.Name, err)
		}
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil {
			logger.Debugf("watch: stat %s: %v", event.Name, err)
			return
		}
		if err := w.idx.upsertPath(event.Name, info); err != nil {
			logger.Errorf("watch: updating %s in index: %v", event.Name, err)
			return
		}
		if event.Has(fsnotify.Create) && info.IsDir() {
			if err := w.watchTree(event.Name); err != nil {
				logger.Warnf("watch: adding %s: %v", event.Name, err)
			}
		}
	}
}
