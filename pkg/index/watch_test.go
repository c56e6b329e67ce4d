package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/everfind/everfind/pkg/engine"
)

// waitFor polls until the condition holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestWatcherKeepsIndexLive(t *testing.T) {
	idx, root := scannedIndex(t)

	w, err := NewWatcher(idx, []string{root}, []string{".git"})
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	count := func(pattern string) uint32 {
		results, err := idx.Execute(engine.Query{
			Pattern: pattern,
			Sort:    engine.SortNameAscending,
			Max:     engine.MaxResults,
		})
		if err != nil {
			t.Fatalf("querying: %v", err)
		}
		return results.Len()
	}

	created := filepath.Join(root, "fresh.txt")
	writeFile(t, created, "fresh")
	waitFor(t, "created file to appear", func() bool {
		return count("fresh.txt") == 1
	})

	if err := os.Remove(created); err != nil {
		t.Fatalf("removing file: %v", err)
	}
	waitFor(t, "removed file to disappear", func() bool {
		return count("fresh.txt") == 0
	})
}
