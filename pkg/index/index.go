// Package index implements a local file-index engine backed by SQLite.
//
// The index keeps one row per file, folder or volume with the metadata the
// query layer can request: size, modification and access timestamps (stored
// as 100-nanosecond FILETIME ticks) and an attribute bitmask. A filesystem
// scanner populates it and an fsnotify watcher keeps it live, so the index
// mutates between queries just like an externally-maintained engine would.
//
// Index satisfies engine.Engine; install it as the process-wide default with
// engine.SetDefault to serve pkg/query.
package index

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/everfind/everfind/pkg/engine"
	"github.com/everfind/everfind/pkg/log"
)

var logger = log.ForComponent("index")

// Row kinds stored in the files table.
const (
	kindFile = iota
	kindFolder
	kindVolume
)

// Index is an SQLite-backed file index implementing engine.Engine.
type Index struct {
	db *sql.DB
}

// Open opens (or creates) the index database at dbPath.
func Open(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
		"PRAGMA cache_size = -64000",
		"PRAGMA temp_store = memory",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Index{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS files (
	path TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	ext TEXT NOT NULL DEFAULT '',
	kind INTEGER NOT NULL,
	size INTEGER NOT NULL DEFAULT 0,
	date_modified INTEGER,
	date_accessed INTEGER,
	attributes INTEGER NOT NULL DEFAULT 0,
	scan_id TEXT
);
CREATE INDEX IF NOT EXISTS idx_files_name ON files(name);
CREATE INDEX IF NOT EXISTS idx_files_ext ON files(ext);
`

// Close closes the underlying database.
func (idx *Index) Close() error {
	return idx.db.Close()
}

// Execute runs one configured query against the index and returns the
// requested result window. It implements engine.Engine.
//
// Pattern matching happens outside SQL so the wildcard and regex syntaxes
// behave identically regardless of the SQLite build; the sort order is
// delegated to SQL and the window is applied while streaming rows.
func (idx *Index) Execute(q engine.Query) (engine.Results, error) {
	match, err := compileMatcher(q)
	if err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT path, name, kind, size, date_modified, date_accessed, attributes
		FROM files
		ORDER BY ` + orderClause(q.Sort)

	dbRows, err := idx.db.Query(sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	defer func() {
		if err := dbRows.Close(); err != nil {
			logger.Warnf("closing result rows: %v", err)
		}
	}()

	var (
		rows    []row
		skipped uint32
	)
	for dbRows.Next() {
		var r row
		var modified, accessed sql.NullInt64
		if err := dbRows.Scan(&r.path, &r.name, &r.kind, &r.size, &modified, &accessed, &r.attributes); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.modified = modified
		r.accessed = accessed
		r.requested = q.Request

		if !match(r) {
			continue
		}
		if skipped < q.Offset {
			skipped++
			continue
		}
		// The window may be full already; Max == 0 is a legal empty window.
		if q.Max != engine.MaxResults && uint32(len(rows)) >= q.Max {
			break
		}
		rows = append(rows, r)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return resultSet(rows), nil
}

// orderClause maps an engine sort mode to an ORDER BY body. The path is the
// final tiebreaker everywhere so windows over an unchanged index are stable.
func orderClause(mode engine.SortMode) string {
	switch mode {
	case engine.SortNameAscending:
		return "name COLLATE NOCASE ASC, path ASC"
	case engine.SortNameDescending:
		return "name COLLATE NOCASE DESC, path DESC"
	case engine.SortPathAscending:
		return "path COLLATE NOCASE ASC"
	case engine.SortPathDescending:
		return "path COLLATE NOCASE DESC"
	case engine.SortSizeAscending:
		return "size ASC, path ASC"
	case engine.SortSizeDescending:
		return "size DESC, path ASC"
	case engine.SortExtensionAscending:
		return "ext COLLATE NOCASE ASC, path ASC"
	case engine.SortExtensionDescending:
		return "ext COLLATE NOCASE DESC, path ASC"
	case engine.SortTypeNameAscending:
		return "kind ASC, ext COLLATE NOCASE ASC, path ASC"
	case engine.SortTypeNameDescending:
		return "kind DESC, ext COLLATE NOCASE DESC, path ASC"
	case engine.SortDateCreatedAscending, engine.SortDateCreatedDescending:
		// Creation times are not tracked; fall back to a stable path order.
		return "path ASC"
	case engine.SortDateModifiedAscending:
		return "date_modified ASC, path ASC"
	case engine.SortDateModifiedDescending:
		return "date_modified DESC, path ASC"
	case engine.SortDateAccessedAscending:
		return "date_accessed ASC, path ASC"
	case engine.SortDateAccessedDescending:
		return "date_accessed DESC, path ASC"
	case engine.SortAttributesAscending:
		return "attributes ASC, path ASC"
	case engine.SortAttributesDescending:
		return "attributes DESC, path ASC"
	default:
		return "name COLLATE NOCASE ASC, path ASC"
	}
}

// matcher decides whether an index row matches the query pattern.
type matcher func(row) bool

// compileMatcher builds the row matcher for a query. An empty pattern
// matches everything. Regular expressions compile with Go regexp semantics;
// an invalid expression fails the whole query here, which is the only point
// where pattern validation happens.
func compileMatcher(q engine.Query) (matcher, error) {
	subject := func(r row) string {
		if q.MatchPath {
			return r.path
		}
		return r.name
	}

	if q.Pattern == "" {
		return func(row) bool { return true }, nil
	}

	var re *regexp.Regexp
	var err error
	if q.Regex {
		expr := q.Pattern
		if !q.MatchCase {
			expr = "(?i)" + expr
		}
		re, err = regexp.Compile(expr)
	} else {
		re, err = regexp.Compile(wildcardExpr(q.Pattern, q.MatchCase, q.MatchWholeWord))
	}
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", q.Pattern, err)
	}

	if q.Regex && q.MatchWholeWord {
		wordRe := re
		return func(r row) bool {
			return matchesWholeWord(wordRe, subject(r))
		}, nil
	}

	return func(r row) bool {
		return re.MatchString(subject(r))
	}, nil
}

// wildcardExpr translates the engine wildcard syntax (* and ?) into a
// regular expression. A pattern without wildcards matches as a substring,
// one with wildcards must match the whole subject; both mirror how the
// index syntax is commonly used ("report" finds report.txt, "*.txt" does
// not find file.txt.bak).
func wildcardExpr(pattern string, matchCase, wholeWord bool) string {
	var b strings.Builder
	if !matchCase {
		b.WriteString("(?i)")
	}

	hasWildcard := strings.ContainsAny(pattern, "*?")
	if hasWildcard {
		b.WriteString("^")
	} else if wholeWord {
		b.WriteString(`\b`)
	}

	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	if hasWildcard {
		b.WriteString("$")
	} else if wholeWord {
		b.WriteString(`\b`)
	}
	return b.String()
}

// matchesWholeWord reports whether re matches s with the match covering
// whole word boundaries.
func matchesWholeWord(re *regexp.Regexp, s string) bool {
	for _, loc := range re.FindAllStringIndex(s, -1) {
		startOK := loc[0] == 0 || !isWordByte(s[loc[0]-1])
		endOK := loc[1] >= len(s) || !isWordByte(s[loc[1]])
		if startOK && endOK {
			return true
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
