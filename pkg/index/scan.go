package index

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// entry is one filesystem object on its way into the index.
type entry struct {
	path       string
	name       string
	ext        string
	kind       int
	size       uint64
	modified   *uint64
	accessed   *uint64
	attributes uint32
}

// ScanStats summarizes one scan.
type ScanStats struct {
	Files   int
	Folders int
	Volumes int
	Pruned  int64
	Elapsed time.Duration
}

const scanBatchSize = 500

// Scan walks the given roots and brings the index up to date with what it
// finds. Each root is recorded as a volume. Entries whose base name matches
// one of the exclude globs are skipped, directories among them entirely.
//
// Entries under a scanned root that no longer exist are pruned at the end,
// identified by the scan ID stamped on every visited row.
func (idx *Index) Scan(roots, exclude []string) (*ScanStats, error) {
	scanID := uuid.New().String()
	started := time.Now()
	stats := &ScanStats{}
	logger.Infof("scan %s starting over %d roots", scanID, len(roots))

	batch := make([]entry, 0, scanBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := idx.upsertBatch(batch, scanID); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for _, root := range roots {
		root = filepath.Clean(root)
		batch = append(batch, volumeEntry(root))
		stats.Volumes++

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warnf("scan %s: skipping %s: %v", scanID, path, err)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if path == root {
				return nil
			}
			if matchesAny(exclude, d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			info, err := d.Info()
			if err != nil {
				logger.Warnf("scan %s: stat %s: %v", scanID, path, err)
				return nil
			}

			batch = append(batch, fileEntry(path, info))
			if d.IsDir() {
				stats.Folders++
			} else {
				stats.Files++
			}
			if len(batch) >= scanBatchSize {
				return flush()
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	pruned, err := idx.pruneStale(roots, scanID)
	if err != nil {
		return nil, err
	}
	stats.Pruned = pruned
	stats.Elapsed = time.Since(started)

	logger.Infof("scan %s finished: %d files, %d folders, %d volumes, %d pruned in %s",
		scanID, stats.Files, stats.Folders, stats.Volumes, stats.Pruned, stats.Elapsed.Round(time.Millisecond))
	return stats, nil
}

// upsertBatch writes one batch of entries in a single transaction.
func (idx *Index) upsertBatch(entries []entry, scanID string) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil {
				logger.Warnf("rolling back batch: %v", err)
			}
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO files (path, name, ext, kind, size, date_modified, date_accessed, attributes, scan_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name = excluded.name,
			ext = excluded.ext,
			kind = excluded.kind,
			size = excluded.size,
			date_modified = excluded.date_modified,
			date_accessed = excluded.date_accessed,
			attributes = excluded.attributes,
			scan_id = excluded.scan_id`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			logger.Warnf("closing statement: %v", err)
		}
	}()

	for _, e := range entries {
		_, err := stmt.Exec(e.path, e.name, e.ext, e.kind, int64(e.size),
			nullableTicks(e.modified), nullableTicks(e.accessed), int64(e.attributes), scanID)
		if err != nil {
			return fmt.Errorf("upserting %s: %w", e.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}
	committed = true
	return nil
}

// pruneStale removes rows under the scanned roots that the scan did not
// visit. Rows outside the roots keep their entries.
func (idx *Index) pruneStale(roots []string, scanID string) (int64, error) {
	var total int64
	for _, root := range roots {
		root = filepath.Clean(root)
		res, err := idx.db.Exec(
			`DELETE FROM files WHERE (path = ? OR path LIKE ?) AND scan_id != ?`,
			root, filepath.Join(root, "%"), scanID)
		if err != nil {
			return total, fmt.Errorf("pruning %s: %w", root, err)
		}
		n, err := res.RowsAffected()
		if err == nil {
			total += n
		}
	}
	return total, nil
}

// upsertPath stats a single path and brings its row up to date. Used by the
// watcher for live updates.
func (idx *Index) upsertPath(path string, info fs.FileInfo) error {
	return idx.upsertBatch([]entry{fileEntry(path, info)}, "")
}

// removePath removes a path and everything beneath it from the index.
func (idx *Index) removePath(path string) error {
	path = filepath.Clean(path)
	_, err := idx.db.Exec(`DELETE FROM files WHERE path = ? OR path LIKE ?`,
		path, filepath.Join(path, "%"))
	if err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// Count returns the number of indexed entries per kind: files, folders and
// volumes.
func (idx *Index) Count() (files, folders, volumes int64, err error) {
	rows, err := idx.db.Query(`SELECT kind, COUNT(*) FROM files GROUP BY kind`)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("counting entries: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Warnf("closing count rows: %v", err)
		}
	}()

	for rows.Next() {
		var kind int
		var n int64
		if err := rows.Scan(&kind, &n); err != nil {
			return 0, 0, 0, fmt.Errorf("scanning count: %w", err)
		}
		switch kind {
		case kindFile:
			files = n
		case kindFolder:
			folders = n
		case kindVolume:
			volumes = n
		}
	}
	return files, folders, volumes, rows.Err()
}

func fileEntry(path string, info fs.FileInfo) entry {
	name := filepath.Base(path)
	e := entry{
		path:       filepath.Clean(path),
		name:       name,
		attributes: uint32(info.Mode()),
	}
	if info.IsDir() {
		e.kind = kindFolder
	} else {
		e.kind = kindFile
		e.ext = ext(name)
		e.size = uint64(info.Size())
	}
	modified := filetimeTicks(info.ModTime())
	e.modified = &modified
	if atime, ok := accessTime(info); ok {
		accessed := filetimeTicks(atime)
		e.accessed = &accessed
	}
	return e
}

func volumeEntry(root string) entry {
	return entry{
		path: root,
		name: filepath.Base(root),
		kind: kindVolume,
	}
}

func ext(name string) string {
	e := filepath.Ext(name)
	if e == "" {
		return ""
	}
	return e[1:]
}

func matchesAny(globs []string, name string) bool {
	for _, g := range globs {
		if ok, err := filepath.Match(g, name); err == nil && ok {
			return true
		}
	}
	return false
}

// filetimeUnixDiff is the offset between the index epoch (1601-01-01) and
// the Unix epoch in 100-nanosecond ticks.
const filetimeUnixDiff = 116_444_736_000_000_000

// filetimeTicks converts a time.Time to 100-nanosecond ticks since
// 1601-01-01, the engine's native timestamp representation.
func filetimeTicks(t time.Time) uint64 {
	if t.Before(time.Unix(0, 0)) {
		return filetimeUnixDiff
	}
	return uint64(t.UnixNano()/100) + filetimeUnixDiff
}

func nullableTicks(ticks *uint64) any {
	if ticks == nil {
		return nil
	}
	return int64(*ticks)
}
