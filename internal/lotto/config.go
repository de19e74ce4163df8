package lotto

import (
	"errors"
	"fmt"
)

const (
	DefaultNumberCount = 6
	DefaultMaxNumber   = 49
	DefaultBonusNumber = 10

	// MaxAttempts caps redraws while smart filters reject a draw.
	MaxAttempts = 100
)

var (
	ErrInvalidConfig = errors.New("invalid generator config")
	ErrInvalidRange  = errors.New("invalid draw range")
)

// Config describes the game being drawn. Zero numeric fields take the defaults.
type Config struct {
	NumberCount  int
	MaxNumber    int
	BonusNumber  int
	SmartFilters bool
}

// DefaultConfig is a 6 of 49 draw with a bonus from 1..10 and filters on.
func DefaultConfig() Config {
	return Config{
		NumberCount:  DefaultNumberCount,
		MaxNumber:    DefaultMaxNumber,
		BonusNumber:  DefaultBonusNumber,
		SmartFilters: true,
	}
}

func (c Config) withDefaults() Config {
	if c.NumberCount == 0 {
		c.NumberCount = DefaultNumberCount
	}
	if c.MaxNumber == 0 {
		c.MaxNumber = DefaultMaxNumber
	}
	if c.BonusNumber == 0 {
		c.BonusNumber = DefaultBonusNumber
	}
	return c
}

// Validate reports configurations under which a unique draw is impossible.
func (c Config) Validate() error {
	switch {
	case c.NumberCount < 1:
		return fmt.Errorf("%w: number count %d must be positive", ErrInvalidConfig, c.NumberCount)
	case c.MaxNumber < 1:
		return fmt.Errorf("%w: max number %d must be positive", ErrInvalidConfig, c.MaxNumber)
	case c.BonusNumber < 1:
		return fmt.Errorf("%w: bonus number %d must be positive", ErrInvalidConfig, c.BonusNumber)
	case c.NumberCount > c.MaxNumber:
		return fmt.Errorf("%w: cannot draw %d distinct numbers from 1..%d", ErrInvalidConfig, c.NumberCount, c.MaxNumber)
	}
	return nil
}

// ValidateNumbers checks that numbers could have come out of a draw under c:
// the right count, distinct, and each within 1..MaxNumber.
func (c Config) ValidateNumbers(numbers []int) error {
	if len(numbers) != c.NumberCount {
		return fmt.Errorf("%w: expected %d numbers, got %d", ErrInvalidRange, c.NumberCount, len(numbers))
	}
	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > c.MaxNumber {
			return fmt.Errorf("%w: %d outside 1..%d", ErrInvalidRange, n, c.MaxNumber)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: duplicate number %d", ErrInvalidRange, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}
