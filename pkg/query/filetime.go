package query

import "time"

// filetimeUnixDiff is the difference between the index epoch (1601-01-01)
// and the Unix epoch (1970-01-01) in 100-nanosecond intervals.
const filetimeUnixDiff = 116_444_736_000_000_000

// TimeFromFiletime converts an engine timestamp, expressed as 100-nanosecond
// intervals since 1601-01-01, to a time.Time in UTC.
//
// Values before the Unix epoch clamp to the Unix epoch instead of
// underflowing; the conversion is exact for every value at or after it.
func TimeFromFiletime(ticks uint64) time.Time {
	var unix100ns uint64
	if ticks > filetimeUnixDiff {
		unix100ns = ticks - filetimeUnixDiff
	}
	secs := int64(unix100ns / 10_000_000)
	nanos := int64(unix100ns % 10_000_000 * 100)
	return time.Unix(secs, nanos).UTC()
}
