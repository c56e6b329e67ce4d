// Package query is the caller-facing query layer of everfind.
//
// # Overview
//
// A Search value declaratively describes what to find in the file index:
// a pattern (wildcard syntax or regular expression), case/path/word matching
// flags, a sort order, and the set of optional metadata fields to resolve.
// Executing a Search translates it into an engine query, retrieves a bounded
// window of raw results, and materializes each one into a fully-owned Item.
//
// # Key Features
//
//   - Fluent, value-semantics builder for search configuration
//   - Range-based pagination mapped onto the engine's offset/count protocol
//   - Per-field, failure-tolerant metadata extraction (log and degrade,
//     never fail the query)
//   - FILETIME timestamp conversion to time.Time
//
// # Usage Examples
//
// Query everything matching a wildcard pattern:
//
//	items := query.New("*.txt").QueryAll()
//
// Request metadata and limit the window:
//
//	s := query.New("report").
//		MatchCase(true).
//		SortBy(query.SortBySize, query.Descending).
//		RequestMetadata(query.MetadataSize | query.MetadataDateModified)
//	items := s.QueryRange(query.First(100))
//
// Use an explicit engine instead of the process-wide default:
//
//	client := query.NewClient(eng)
//	items := client.QueryRange(s, query.Between(100, 200))
//
// # Consistency Caveat
//
// The underlying index is live and continuously updated, so two paginated
// calls against the same Search are not guaranteed to observe stable ordering
// or membership. Consumers needing a consistent snapshot should issue a single
// unbounded-range call rather than multiple paginated calls.
//
// # Error Handling
//
// The query operations return no error. Every failure path degrades
// gracefully: a result whose path cannot be retrieved is skipped, a metadata
// field that cannot be resolved is left absent, and the cause is logged at
// error severity. The returned slice may therefore be shorter than the
// requested window; callers cannot distinguish "no match" from "match
// skipped" except through the logs.
package query
