package lotto

import "time"

// idClock issues ids from the creation time in unix milliseconds. When the
// clock has not moved past the last id, the next id is last+1, so ids stay
// unique and increasing within one generator.
type idClock struct {
	last int64
}

func (c *idClock) next(t time.Time) int64 {
	id := t.UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

func (c *idClock) observe(id int64) {
	if id > c.last {
		c.last = id
	}
}
