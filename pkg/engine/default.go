package engine

import "sync"

// The default engine is process-wide shared state: the connection to the
// index is a single resource, so at most one query may be in flight across
// the whole process. Acquire serializes callers; concurrent queries queue
// and run one at a time.

var (
	defaultMu     sync.Mutex
	defaultEngine Engine
)

// SetDefault installs the process-wide default engine used by query
// operations that were not given an explicit engine. Passing nil clears it.
func SetDefault(e Engine) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = e
}

// Acquire locks the process-wide engine handle and returns the installed
// engine together with a release function. The engine is nil if SetDefault
// was never called. Callers must invoke release on every exit path, and
// should hold the lock only for the duration of one Execute call.
func Acquire() (Engine, func()) {
	defaultMu.Lock()
	return defaultEngine, defaultMu.Unlock
}
