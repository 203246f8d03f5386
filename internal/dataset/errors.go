package dataset

import (
	"container/ring"
	"sync"
)

// ParseError records one malformed dataset/mapping line, keyed by its
// 1-based line number so a repeated re-parse of the same bad line
// doesn't grow the cache.
type ParseError struct {
	Line    int
	Message string
}

// ParseErrorCache is a bounded ring buffer of the most recent distinct
// parse errors seen while reading a dataset or mapping file. Adapted
// from the teacher's build-error cache: callers that feed many files
// through the same reader shouldn't accumulate unbounded memory for
// malformed input.
type ParseErrorCache struct {
	current *ring.Ring
	byLine  map[int]*ring.Ring
	lock    sync.RWMutex
}

// NewParseErrorCache returns an empty cache holding at most size errors.
func NewParseErrorCache(size int) *ParseErrorCache {
	return &ParseErrorCache{
		current: ring.New(max(size, 1)),
		byLine:  make(map[int]*ring.Ring),
	}
}

// Add records a parse error for the given line, evicting the oldest
// entry if the cache is full. Re-adding an already-cached line is a
// no-op.
func (c *ParseErrorCache) Add(line int, message string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.byLine[line]; ok {
		return
	}

	if c.current.Value != nil {
		if old, ok := c.current.Value.(*ParseError); ok {
			delete(c.byLine, old.Line)
		}
	}

	c.current.Value = &ParseError{Line: line, Message: message}
	c.byLine[line] = c.current
	c.current = c.current.Next()
}

// All returns the cached errors, oldest first.
func (c *ParseErrorCache) All() []*ParseError {
	c.lock.RLock()
	defer c.lock.RUnlock()

	var out []*ParseError
	c.current.Do(func(v any) {
		if v != nil {
			out = append(out, v.(*ParseError))
		}
	})
	return out
}

// Empty reports whether the cache holds no errors.
func (c *ParseErrorCache) Empty() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.byLine) == 0
}
