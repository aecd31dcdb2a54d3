package model

import "time"

// Clock supplies the monotonic frame time in milliseconds.
type Clock interface {
	Now() int64
}

// MonotonicClock counts milliseconds since it was created.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when advanced.
type ManualClock struct {
	T int64
}

func (c *ManualClock) Now() int64 {
	return c.T
}

func (c *ManualClock) Advance(ms int64) int64 {
	c.T += ms
	return c.T
}
