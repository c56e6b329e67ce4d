package index

import (
	"path/filepath"
	"testing"

	"github.com/everfind/everfind/pkg/query"
)

// The index is exercised here through the caller-facing query layer, the way
// the CLI uses it.
func TestServesQueryLayer(t *testing.T) {
	idx, root := scannedIndex(t)
	client := query.NewClient(idx)

	items := client.QueryRange(query.New("*.txt").RequestMetadata(query.MetadataSize), query.First(10))
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Path != filepath.Join(root, "alpha.txt") {
		t.Errorf("unexpected first item %s", items[0].Path)
	}
	for _, item := range items {
		if item.Kind != query.KindFile {
			t.Errorf("%s: expected a file, got %s", item.Path, item.Kind)
		}
		if item.Size == nil {
			t.Errorf("%s: requested size missing", item.Path)
		}
		if item.DateModified != nil {
			t.Errorf("%s: unrequested modification time present", item.Path)
		}
	}

	// Creation times are not recorded by this engine; requesting them
	// degrades to an absent field rather than an error.
	items = client.QueryAll(query.New("alpha.txt").RequestMetadata(query.MetadataDateCreated))
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].DateCreated != nil {
		t.Error("creation time should degrade to absent")
	}

	// Folders and volumes materialize with their own kinds.
	items = client.QueryAll(query.New("sub"))
	if len(items) != 1 || items[0].Kind != query.KindFolder {
		t.Fatalf("expected the sub folder, got %v", items)
	}

	// Between(n, n) is the empty window.
	items = client.QueryRange(query.New("*.txt"), query.Between(1, 1))
	if len(items) != 0 {
		t.Errorf("empty range should select nothing, got %d items", len(items))
	}
}
