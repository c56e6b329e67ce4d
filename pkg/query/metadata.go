package query

import "github.com/everfind/everfind/pkg/engine"

// Metadata is the set of optional per-item fields to resolve for each result.
// Flags combine with bitwise OR and accumulate across RequestMetadata calls.
//
// The bit positions are identical to the engine's own request flags: the set
// travels to the engine verbatim, with no translation table in between.
type Metadata uint32

const (
	MetadataSize         = Metadata(engine.RequestSize)
	MetadataDateCreated  = Metadata(engine.RequestDateCreated)
	MetadataDateModified = Metadata(engine.RequestDateModified)
	MetadataDateAccessed = Metadata(engine.RequestDateAccessed)
	MetadataAttributes   = Metadata(engine.RequestAttributes)
)

// Has reports whether every flag in m is present in the set.
func (m Metadata) Has(flag Metadata) bool {
	return m&flag == flag
}
