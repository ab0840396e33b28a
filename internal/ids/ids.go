// Package ids hands out process-wide unique element identifiers.
package ids

import (
	"strconv"
	"sync/atomic"
)

// DefaultPrefix is used when New is called with an empty prefix.
const DefaultPrefix = "inkui"

var counter atomic.Uint64

// New returns the next identifier for prefix, e.g. "inkui-3".
// The sequence is shared by every prefix.
func New(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + "-" + strconv.FormatUint(counter.Add(1), 10)
}

// Reset rewinds the counter so the next identifier ends in 1.
// Only tests should call it.
func Reset() {
	counter.Store(0)
}
