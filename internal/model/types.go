package model

import "time"

// Combination is one generated draw. Numbers are distinct and ascending.
type Combination struct {
	Numbers   []int     `json:"numbers"`
	Bonus     int       `json:"bonus"`
	Timestamp time.Time `json:"timestamp"`
	ID        int64     `json:"id"`
}

// Clone returns a copy that shares no backing array with c.
func (c Combination) Clone() Combination {
	c.Numbers = append([]int(nil), c.Numbers...)
	return c
}

// CloneAll copies an archive slice and every record in it.
func CloneAll(combinations []Combination) []Combination {
	copied := make([]Combination, len(combinations))
	for i, c := range combinations {
		copied[i] = c.Clone()
	}
	return copied
}
