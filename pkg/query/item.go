package query

import (
	"time"

	"github.com/everfind/everfind/pkg/engine"
)

// Kind is the kind of an indexed item. Every item is exactly one of file,
// folder or volume.
type Kind int

const (
	KindFile Kind = iota
	KindFolder
	KindVolume
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindVolume:
		return "volume"
	default:
		return "file"
	}
}

// Item is one materialized search result. It is a plain value fully owned by
// the caller, with no remaining ties to the engine's raw result set.
//
// The five metadata fields are independently optional. A field is non-nil
// only if its flag was included in the search's requested metadata AND the
// engine resolved it successfully. A nil field never implies the index lacks
// the value: it may simply not have been requested, or retrieval failed and
// the failure was logged.
type Item struct {
	// Path is the absolute path of the item, as reported by the engine.
	Path string

	// Kind is the kind of the item.
	Kind Kind

	// Size is the size of the item in bytes, if requested and available.
	Size *uint64

	// DateCreated is the creation time, if requested and available.
	DateCreated *time.Time

	// DateModified is the last modification time, if requested and available.
	DateModified *time.Time

	// DateAccessed is the last access time, if requested and available.
	DateAccessed *time.Time

	// Attributes is the attribute bitmask, if requested and available.
	Attributes *uint32
}

// itemFromResult materializes one raw result. It returns false when the
// result must be skipped: either its path cannot be retrieved, or its kind
// predicates violate the exactly-one invariant. Both are treated as defects
// in the engine, logged rather than surfaced to the caller.
func itemFromResult(s Search, raw engine.Result) (Item, bool) {
	path, err := raw.FullPath()
	if err != nil {
		logger.Errorf("unable to retrieve the full path of a result, skipping it: %v", err)
		return Item{}, false
	}

	kind, ok := resultKind(raw)
	if !ok {
		logger.Errorf("result %s is not exactly one of file, folder or volume; skipping it (index engine defect)", path)
		return Item{}, false
	}

	return Item{
		Path:         path,
		Kind:         kind,
		Size:         metadataField(s, raw, path, MetadataSize, engine.Result.Size),
		DateCreated:  filetimeField(metadataField(s, raw, path, MetadataDateCreated, engine.Result.DateCreated)),
		DateModified: filetimeField(metadataField(s, raw, path, MetadataDateModified, engine.Result.DateModified)),
		DateAccessed: filetimeField(metadataField(s, raw, path, MetadataDateAccessed, engine.Result.DateAccessed)),
		Attributes:   metadataField(s, raw, path, MetadataAttributes, engine.Result.Attributes),
	}, true
}

// resultKind inspects the kind predicates of a raw result. ok is false
// unless exactly one predicate holds.
func resultKind(raw engine.Result) (kind Kind, ok bool) {
	count := 0
	if raw.IsFile() {
		kind = KindFile
		count++
	}
	if raw.IsFolder() {
		kind = KindFolder
		count++
	}
	if raw.IsVolume() {
		kind = KindVolume
		count++
	}
	return kind, count == 1
}

// metadataField resolves one optional field through its accessor. The single
// degrade policy for all five fields lives here: not requested means nil
// without touching the accessor, and an accessor failure is logged with the
// affected path and becomes nil rather than failing the item.
func metadataField[T any](s Search, raw engine.Result, path string, flag Metadata, get func(engine.Result) (T, error)) *T {
	if !s.metadata.Has(flag) {
		return nil
	}
	value, err := get(raw)
	if err != nil {
		logger.Errorf("unable to retrieve requested metadata for %s: %v", path, err)
		return nil
	}
	return &value
}

// filetimeField converts an optional engine timestamp to an optional time.Time.
func filetimeField(ticks *uint64) *time.Time {
	if ticks == nil {
		return nil
	}
	t := TimeFromFiletime(*ticks)
	return &t
}
