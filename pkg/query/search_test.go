package query

import (
	"testing"

	"github.com/everfind/everfind/pkg/engine"
)

func TestNewDefaults(t *testing.T) {
	s := New("*.txt")

	if s.pattern != "*.txt" {
		t.Errorf("pattern: expected %q, got %q", "*.txt", s.pattern)
	}
	if s.regex || s.matchCase || s.matchPath || s.matchWholeWord {
		t.Errorf("flags should default to false: %+v", s)
	}
	if s.sortKey != SortByName || s.sortOrder != Ascending {
		t.Errorf("default sort should be name ascending, got key=%d order=%d", s.sortKey, s.sortOrder)
	}
	if s.metadata != 0 {
		t.Errorf("no metadata should be requested by default, got %#x", s.metadata)
	}
}

func TestNewRegex(t *testing.T) {
	s := NewRegex(`^ab+c$`)
	if !s.regex {
		t.Error("NewRegex should enable regex matching")
	}
	if s.pattern != `^ab+c$` {
		t.Errorf("pattern: expected %q, got %q", `^ab+c$`, s.pattern)
	}
}

func TestBuilderValueSemantics(t *testing.T) {
	base := New("*.go")
	derived := base.MatchCase(true).MatchPath(true).RequestMetadata(MetadataSize)

	if base.matchCase || base.matchPath || base.metadata != 0 {
		t.Errorf("builder must not mutate the original value: %+v", base)
	}
	if !derived.matchCase || !derived.matchPath || derived.metadata != MetadataSize {
		t.Errorf("derived value missing configuration: %+v", derived)
	}
}

func TestRequestMetadataAccumulates(t *testing.T) {
	s := New("x").
		RequestMetadata(MetadataSize).
		RequestMetadata(MetadataDateModified).
		RequestMetadata(MetadataSize) // repeated flags are a no-op

	want := MetadataSize | MetadataDateModified
	if s.metadata != want {
		t.Errorf("metadata: expected %#x, got %#x", want, s.metadata)
	}
	if !s.metadata.Has(MetadataSize) || !s.metadata.Has(MetadataDateModified) {
		t.Error("Has should report both accumulated flags")
	}
	if s.metadata.Has(MetadataAttributes) {
		t.Error("Has should not report an unrequested flag")
	}
}

func TestSortByLastWriteWins(t *testing.T) {
	s := New("x").
		SortBy(SortBySize, Descending).
		SortBy(SortByName, Ascending)

	if s.sortKey != SortByName || s.sortOrder != Ascending {
		t.Errorf("last SortBy call should win, got key=%d order=%d", s.sortKey, s.sortOrder)
	}
}

func TestMetadataBitCompatibility(t *testing.T) {
	// The metadata flag set travels to the engine verbatim; the bit
	// positions must stay identical to the engine's request flags.
	pairs := []struct {
		meta Metadata
		req  engine.RequestFlags
	}{
		{MetadataSize, engine.RequestSize},
		{MetadataDateCreated, engine.RequestDateCreated},
		{MetadataDateModified, engine.RequestDateModified},
		{MetadataDateAccessed, engine.RequestDateAccessed},
		{MetadataAttributes, engine.RequestAttributes},
	}
	for _, p := range pairs {
		if uint32(p.meta) != uint32(p.req) {
			t.Errorf("flag mismatch: metadata %#x vs request %#x", p.meta, p.req)
		}
	}
}
