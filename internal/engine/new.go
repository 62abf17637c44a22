package engine

import "smart-todo/pkg/datemath"

// Engine is the task intelligence engine: natural-language attribute
// extraction plus heuristic scheduling, deadline, reminder, and insight
// generation. All methods are pure — no I/O, no clocks, no shared state —
// and safe for concurrent use. Every date-deriving method takes the
// reference time as an explicit parameter.
type Engine struct {
	dates *datemath.Resolver
}

// New creates an Engine using the given date resolver.
func New(dates *datemath.Resolver) *Engine {
	return &Engine{dates: dates}
}
