package query

import (
	"github.com/everfind/everfind/pkg/engine"
	"github.com/everfind/everfind/pkg/log"
)

var logger = log.ForComponent("query")

// Search describes one query against the file index: a pattern, matching
// flags, a sort order and the set of metadata fields to resolve.
//
// Search is a value type configured through chained builder methods, in the
// style of New("*.go").MatchCase(true).SortBy(SortBySize, Descending).
// Each method returns an updated copy; the original is untouched,
// so a configured Search can be stored and reused across many queries.
// Executing a query never mutates the Search.
type Search struct {
	pattern        string
	regex          bool
	matchCase      bool
	matchPath      bool
	matchWholeWord bool
	sortKey        SortKey
	sortOrder      SortOrder
	metadata       Metadata
}

// New creates a search for the given pattern using the engine wildcard
// syntax (*, ?). All other options start at their defaults: case-insensitive,
// name-only matching, partial words, sorted by name ascending, no metadata
// requested.
func New(pattern string) Search {
	return Search{pattern: pattern}
}

// NewRegex creates a search whose pattern is a regular expression.
// The pattern is not validated here; an invalid expression is only rejected
// by the engine when the query executes.
func NewRegex(pattern string) Search {
	return Search{pattern: pattern, regex: true}
}

// MatchCase sets whether the search is case-sensitive.
// Searches are case-insensitive by default.
func (s Search) MatchCase(on bool) Search {
	s.matchCase = on
	return s
}

// MatchPath sets whether the pattern matches against the full path
// instead of the file name. Disabled by default.
func (s Search) MatchPath(on bool) Search {
	s.matchPath = on
	return s
}

// MatchWholeWord sets whether the search matches whole words only.
// Partial words match by default.
func (s Search) MatchWholeWord(on bool) Search {
	s.matchWholeWord = on
	return s
}

// SortBy sets the sort key and order for the results. Unlike
// RequestMetadata this does not accumulate: the last call wins.
// The default is SortByName in Ascending order.
func (s Search) SortBy(key SortKey, order SortOrder) Search {
	s.sortKey = key
	s.sortOrder = order
	return s
}

// RequestMetadata adds metadata fields to resolve for each result. Repeated
// calls accumulate: the requested sets are combined with a union, so
// RequestMetadata(MetadataSize).RequestMetadata(MetadataAttributes) requests
// both. No metadata is requested by default.
func (s Search) RequestMetadata(m Metadata) Search {
	s.metadata |= m
	return s
}

// QueryAll executes the search against the process-wide default engine and
// returns all matching items. Equivalent to QueryRange(All()).
//
// For patterns that may match a large part of the index, prefer QueryRange
// to bound memory usage. The call blocks until the engine responds.
func (s Search) QueryAll() []Item {
	return s.QueryRange(All())
}

// QueryRange executes the search against the process-wide default engine and
// returns the matching items within the given range, in engine order.
//
// The call blocks until the engine responds. Only one query is in flight
// across the whole process at a time; concurrent callers queue.
//
// The live index may change between calls, so consecutive ranges are not
// guaranteed to be consistent with each other; see the package documentation.
func (s Search) QueryRange(r Range) []Item {
	eng, release := engine.Acquire()
	if eng == nil {
		release()
		logger.Errorf("no default engine installed; call engine.SetDefault before querying")
		return nil
	}
	results := execute(eng, s, r)
	release()
	return materialize(s, results)
}

// engineQuery translates the search plus a resolved window into the engine's
// query shape. The metadata set is passed through verbatim: its bit layout is
// identical to the engine's request flags.
func (s Search) engineQuery(offset, count uint32) engine.Query {
	return engine.Query{
		Pattern:        s.pattern,
		Regex:          s.regex,
		MatchCase:      s.matchCase,
		MatchPath:      s.matchPath,
		MatchWholeWord: s.matchWholeWord,
		Sort:           sortMode(s.sortKey, s.sortOrder),
		Request:        engine.RequestFlags(s.metadata),
		Offset:         offset,
		Max:            count,
	}
}

// execute issues one configured query. Callers must hold the lock that
// serializes access to eng for the duration of the call.
func execute(eng engine.Engine, s Search, r Range) engine.Results {
	offset, count := r.offsetCount()
	results, err := eng.Execute(s.engineQuery(offset, count))
	if err != nil {
		logger.Errorf("executing query %q: %v", s.pattern, err)
		return nil
	}
	return results
}

// materialize converts a retrieved window into items, skipping results that
// fail to materialize. It reads only the already-retrieved result set and
// needs no synchronization with the engine.
func materialize(s Search, results engine.Results) []Item {
	if results == nil {
		return nil
	}
	items := make([]Item, 0, results.Len())
	for i := uint32(0); i < results.Len(); i++ {
		raw, ok := results.At(i)
		if !ok {
			continue
		}
		if item, ok := itemFromResult(s, raw); ok {
			items = append(items, item)
		}
	}
	return items
}
