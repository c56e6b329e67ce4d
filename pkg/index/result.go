package index

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/everfind/everfind/pkg/engine"
)

// ErrNotRequested is returned by accessors for fields that were not part of
// the query's request flags.
var ErrNotRequested = errors.New("field was not requested")

// ErrNotRecorded is returned by accessors for fields the index does not have
// a value for.
var ErrNotRecorded = errors.New("field is not recorded in the index")

// resultSet is one retrieved window, fully materialized. It implements
// engine.Results and stays valid after later Execute calls.
type resultSet []row

func (rs resultSet) Len() uint32 {
	return uint32(len(rs))
}

func (rs resultSet) At(i uint32) (engine.Result, bool) {
	if i >= uint32(len(rs)) {
		return nil, false
	}
	return rs[i], true
}

// row is one index entry within a result window. It implements
// engine.Result; the fallible accessors honor the request flags of the
// originating query, like an out-of-process engine would.
type row struct {
	path       string
	name       string
	kind       int
	size       uint64
	modified   sql.NullInt64
	accessed   sql.NullInt64
	attributes uint32
	requested  engine.RequestFlags
}

func (r row) FullPath() (string, error) {
	return r.path, nil
}

func (r row) IsFile() bool   { return r.kind == kindFile }
func (r row) IsFolder() bool { return r.kind == kindFolder }
func (r row) IsVolume() bool { return r.kind == kindVolume }

func (r row) Size() (uint64, error) {
	if r.requested&engine.RequestSize == 0 {
		return 0, fmt.Errorf("size of %s: %w", r.path, ErrNotRequested)
	}
	return r.size, nil
}

func (r row) DateCreated() (uint64, error) {
	if r.requested&engine.RequestDateCreated == 0 {
		return 0, fmt.Errorf("creation time of %s: %w", r.path, ErrNotRequested)
	}
	// Creation times are not portable across the filesystems this index
	// scans, so the column is never populated.
	return 0, fmt.Errorf("creation time of %s: %w", r.path, ErrNotRecorded)
}

func (r row) DateModified() (uint64, error) {
	if r.requested&engine.RequestDateModified == 0 {
		return 0, fmt.Errorf("modification time of %s: %w", r.path, ErrNotRequested)
	}
	if !r.modified.Valid {
		return 0, fmt.Errorf("modification time of %s: %w", r.path, ErrNotRecorded)
	}
	return uint64(r.modified.Int64), nil
}

func (r row) DateAccessed() (uint64, error) {
	if r.requested&engine.RequestDateAccessed == 0 {
		return 0, fmt.Errorf("access time of %s: %w", r.path, ErrNotRequested)
	}
	if !r.accessed.Valid {
		return 0, fmt.Errorf("access time of %s: %w", r.path, ErrNotRecorded)
	}
	return uint64(r.accessed.Int64), nil
}

func (r row) Attributes() (uint32, error) {
	if r.requested&engine.RequestAttributes == 0 {
		return 0, fmt.Errorf("attributes of %s: %w", r.path, ErrNotRequested)
	}
	return r.attributes, nil
}
