package tstep

import "github.com/google/uuid"

// TsContainer groups named series sharing the same time/value types under
// one handle. ID, when set via NewTsContainerWithID, gives the container a
// stable identifier independent of Name — useful once containers are
// passed across a process boundary where Name alone isn't guaranteed
// unique.
type TsContainer[T any, V comparable] struct {
	ID      string
	Name    string
	Comment string
	Series  map[string]*TimeSeries[T, V]
}

// NewTsContainer returns an empty, named container.
func NewTsContainer[T any, V comparable](name string) *TsContainer[T, V] {
	return &TsContainer[T, V]{Name: name, Series: make(map[string]*TimeSeries[T, V])}
}

// NewTsContainerWithID returns an empty, named container carrying a fresh
// stable UUID.
func NewTsContainerWithID[T any, V comparable](name string) *TsContainer[T, V] {
	c := NewTsContainer[T, V](name)
	c.ID = uuid.NewString()
	return c
}

// Add registers ts under key, replacing any series previously there.
func (c *TsContainer[T, V]) Add(key string, ts *TimeSeries[T, V]) {
	c.Series[key] = ts
}

// Get returns the series registered under key, or (nil, false).
func (c *TsContainer[T, V]) Get(key string) (*TimeSeries[T, V], bool) {
	ts, ok := c.Series[key]
	return ts, ok
}

// Remove deletes the series registered under key, if any.
func (c *TsContainer[T, V]) Remove(key string) {
	delete(c.Series, key)
}

// Keys returns the container's series names in no particular order.
func (c *TsContainer[T, V]) Keys() []string {
	out := make([]string, 0, len(c.Series))
	for k := range c.Series {
		out = append(out, k)
	}
	return out
}

// Len returns the number of series registered in the container.
func (c *TsContainer[T, V]) Len() int {
	return len(c.Series)
}
