package query

import "github.com/everfind/everfind/pkg/engine"

// SortKey selects the field search results are ordered by.
type SortKey int

const (
	SortByName SortKey = iota
	SortByTypeName
	SortByPath
	SortBySize
	SortByExtension
	SortByDateCreated
	SortByDateModified
	SortByDateAccessed
	SortByAttributes
)

// SortOrder selects the direction results are ordered in.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// sortMode combines a sort key and order into the engine's discrete sort
// mode code. Every combination maps to a distinct code; there is no
// unsorted fallback.
func sortMode(key SortKey, order SortOrder) engine.SortMode {
	asc := order == Ascending
	switch key {
	case SortByTypeName:
		if asc {
			return engine.SortTypeNameAscending
		}
		return engine.SortTypeNameDescending
	case SortByPath:
		if asc {
			return engine.SortPathAscending
		}
		return engine.SortPathDescending
	case SortBySize:
		if asc {
			return engine.SortSizeAscending
		}
		return engine.SortSizeDescending
	case SortByExtension:
		if asc {
			return engine.SortExtensionAscending
		}
		return engine.SortExtensionDescending
	case SortByDateCreated:
		if asc {
			return engine.SortDateCreatedAscending
		}
		return engine.SortDateCreatedDescending
	case SortByDateModified:
		if asc {
			return engine.SortDateModifiedAscending
		}
		return engine.SortDateModifiedDescending
	case SortByDateAccessed:
		if asc {
			return engine.SortDateAccessedAscending
		}
		return engine.SortDateAccessedDescending
	case SortByAttributes:
		if asc {
			return engine.SortAttributesAscending
		}
		return engine.SortAttributesDescending
	default:
		if asc {
			return engine.SortNameAscending
		}
		return engine.SortNameDescending
	}
}
