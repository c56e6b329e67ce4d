//go:build !linux && !darwin

package index

import (
	"io/fs"
	"time"
)

// accessTime is unavailable on this platform; the access time column stays
// unpopulated and its accessor reports ErrNotRecorded.
func accessTime(fs.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
