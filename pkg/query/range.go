package query

import "github.com/everfind/everfind/pkg/engine"

// Bound is one endpoint of a Range: a value that is included, excluded, or
// absent entirely. The zero value is an unbounded endpoint.
type Bound struct {
	value uint32
	kind  boundKind
}

type boundKind int

const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// Include returns a bound that contains n.
func Include(n uint32) Bound {
	return Bound{value: n, kind: boundIncluded}
}

// Exclude returns a bound that stops just short of n.
func Exclude(n uint32) Bound {
	return Bound{value: n, kind: boundExcluded}
}

// Unbounded returns an absent bound.
func Unbounded() Bound {
	return Bound{}
}

// Range selects a sub-window of a result set by position. Both endpoints are
// independently inclusive, exclusive or unbounded. The zero value is the
// fully unbounded range.
//
// Ranges must not be inverted: an upper bound below the lower bound is not
// validated, and the conversion to the engine's offset/count pair follows
// plain uint32 wrap-around arithmetic in that case.
type Range struct {
	Lower Bound
	Upper Bound
}

// All returns the fully unbounded range, selecting every result.
func All() Range {
	return Range{}
}

// First returns the range of the first n results, [0, n).
func First(n uint32) Range {
	return Range{Upper: Exclude(n)}
}

// From returns the unbounded range starting at position start.
func From(start uint32) Range {
	return Range{Lower: Include(start)}
}

// Between returns the half-open range [start, end).
func Between(start, end uint32) Range {
	return Range{Lower: Include(start), Upper: Exclude(end)}
}

// offsetCount converts the range to the engine's offset/count pair.
// An unbounded upper bound maps to the engine's unbounded-count sentinel.
func (r Range) offsetCount() (offset, count uint32) {
	switch r.Lower.kind {
	case boundIncluded:
		offset = r.Lower.value
	case boundExcluded:
		offset = r.Lower.value + 1
	}

	switch r.Upper.kind {
	case boundIncluded:
		count = r.Upper.value - offset + 1
	case boundExcluded:
		count = r.Upper.value - offset
	default:
		count = engine.MaxResults
	}

	return offset, count
}
