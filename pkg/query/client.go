package query

import (
	"sync"

	"github.com/everfind/everfind/pkg/engine"
)

// Client executes searches against an explicitly injected engine instead of
// the process-wide default. Use it to run queries against a secondary index
// or a substitute engine in tests.
//
// A Client serializes its own queries: at most one Execute call is in flight
// per Client at a time. The lock covers only the engine call, not result
// materialization.
type Client struct {
	mu  sync.Mutex
	eng engine.Engine
}

// NewClient creates a client bound to the given engine.
func NewClient(eng engine.Engine) *Client {
	return &Client{eng: eng}
}

// QueryAll executes the search and returns all matching items.
// Equivalent to QueryRange(s, All()).
func (c *Client) QueryAll(s Search) []Item {
	return c.QueryRange(s, All())
}

// QueryRange executes the search and returns the matching items within the
// given range, in engine order. The call blocks until the engine responds.
func (c *Client) QueryRange(s Search, r Range) []Item {
	c.mu.Lock()
	results := execute(c.eng, s, r)
	c.mu.Unlock()
	return materialize(s, results)
}
