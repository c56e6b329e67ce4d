// Package engine defines the boundary between the query layer and a file-index
// engine. An engine maintains a live index of the file system and answers
// windowed queries against it; everfind ships one implementation (pkg/index)
// but any engine satisfying these interfaces can be plugged in.
//
// The constants in this package (request flag bits, sort mode codes, the
// unbounded-count sentinel) are part of the wire contract: the query layer
// passes its own flag set through to the engine verbatim, so implementations
// must interpret the exact bit positions defined here.
package engine

// RequestFlags selects which per-result fields the engine should resolve.
// The bit layout is fixed; callers compose flags with bitwise OR.
type RequestFlags uint32

const (
	RequestFileName        RequestFlags = 0x00000001
	RequestPath            RequestFlags = 0x00000002
	RequestFullPathAndName RequestFlags = 0x00000004
	RequestExtension       RequestFlags = 0x00000008
	RequestSize            RequestFlags = 0x00000010
	RequestDateCreated     RequestFlags = 0x00000020
	RequestDateModified    RequestFlags = 0x00000040
	RequestDateAccessed    RequestFlags = 0x00000080
	RequestAttributes      RequestFlags = 0x00000100
)

// SortMode identifies one of the engine's discrete result orderings.
// Each (key, direction) pair has its own code; there is no "unsorted" mode.
type SortMode uint32

const (
	SortNameAscending          SortMode = 1
	SortNameDescending         SortMode = 2
	SortPathAscending          SortMode = 3
	SortPathDescending         SortMode = 4
	SortSizeAscending          SortMode = 5
	SortSizeDescending         SortMode = 6
	SortExtensionAscending     SortMode = 7
	SortExtensionDescending    SortMode = 8
	SortTypeNameAscending      SortMode = 9
	SortTypeNameDescending     SortMode = 10
	SortDateCreatedAscending   SortMode = 11
	SortDateCreatedDescending  SortMode = 12
	SortDateModifiedAscending  SortMode = 13
	SortDateModifiedDescending SortMode = 14
	SortAttributesAscending    SortMode = 15
	SortAttributesDescending   SortMode = 16
	SortDateAccessedAscending  SortMode = 23
	SortDateAccessedDescending SortMode = 24
)

// MaxResults is the sentinel count meaning "no upper bound on the window".
const MaxResults = ^uint32(0)

// Query is one fully-configured request against the index. The query layer
// fills every field before handing it to Execute; engines must not retain the
// value after Execute returns.
type Query struct {
	// Pattern is the search text, in the engine wildcard syntax (*, ?) or,
	// when Regex is set, a regular expression.
	Pattern string

	// Regex selects regular expression matching for Pattern.
	Regex bool

	// MatchCase makes the match case-sensitive.
	MatchCase bool

	// MatchPath matches Pattern against the full path instead of the name.
	MatchPath bool

	// MatchWholeWord restricts matches to whole word boundaries.
	MatchWholeWord bool

	// Sort selects the result ordering.
	Sort SortMode

	// Request selects which per-result fields the engine should resolve.
	Request RequestFlags

	// Offset is the index of the first result in the window.
	Offset uint32

	// Max is the window size; MaxResults means unbounded.
	Max uint32
}

// Engine executes queries against a live file index.
//
// Execute blocks until the engine has produced the requested window. The
// returned Results are a snapshot: reading them requires no further
// synchronization, and they remain valid after subsequent Execute calls.
type Engine interface {
	Execute(q Query) (Results, error)
}

// Results is one retrieved window of query results, in engine order.
type Results interface {
	// Len returns the number of results in the window.
	Len() uint32

	// At returns the result at position i within the window.
	// The second return is false if i is out of range.
	At(i uint32) (Result, bool)
}

// Result is a single raw index entry. The predicate methods are infallible;
// every accessor can fail with an engine-defined error, for example when the
// field was not requested or the engine does not track it.
type Result interface {
	// FullPath returns the absolute path of the entry.
	FullPath() (string, error)

	IsFile() bool
	IsFolder() bool
	IsVolume() bool

	// Size returns the size in bytes.
	Size() (uint64, error)

	// DateCreated, DateModified and DateAccessed return timestamps as
	// 100-nanosecond intervals since 1601-01-01 (FILETIME).
	DateCreated() (uint64, error)
	DateModified() (uint64, error)
	DateAccessed() (uint64, error)

	// Attributes returns the attribute bitmask of the entry.
	Attributes() (uint32, error)
}
