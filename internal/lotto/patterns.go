package lotto

import "slices"

// luckyNumbers are the picks people favor out of superstition.
var luckyNumbers = []int{7, 11, 13, 21, 42}

const (
	// skewThreshold is how many numbers in one half, or of one parity, count as
	// skewed. It is fixed rather than scaled by the number count, so draws of
	// fewer than five numbers never trip the range or parity checks.
	skewThreshold = 5

	luckyThreshold = 3
)

// IsCommonPattern reports whether numbers (ascending) look like a combination
// many players pick. Lucky numbers never make a draw common.
func IsCommonPattern(numbers []int, maxNumber int) bool {
	switch {
	case IsArithmeticSequence(numbers):
		return true
	case IsBirthdayPattern(numbers):
		return true
	case IsBiasedRange(numbers, maxNumber):
		return true
	case IsOddEvenBiased(numbers):
		return true
	}
	return false
}

// IsArithmeticSequence reports whether any three consecutive numbers step by
// the same positive difference, e.g. 10, 20, 30.
func IsArithmeticSequence(numbers []int) bool {
	for i := 0; i+2 < len(numbers); i++ {
		d1 := numbers[i+1] - numbers[i]
		d2 := numbers[i+2] - numbers[i+1]
		if d1 == d2 && d1 > 0 {
			return true
		}
	}
	return false
}

// IsBirthdayPattern reports whether the numbers could be read as days and months:
// four or more in 1..31, or two in 1..31 with at least one of them in 1..12.
func IsBirthdayPattern(numbers []int) bool {
	days := countWhere(numbers, func(n int) bool { return n >= 1 && n <= 31 })
	months := countWhere(numbers, func(n int) bool { return n >= 1 && n <= 12 })
	if days >= 4 {
		return true
	}
	return days >= 2 && months >= 1
}

// IsBiasedRange reports whether too many numbers sit in the lower or upper half
// of 1..maxNumber. The split is at maxNumber/2 without rounding.
func IsBiasedRange(numbers []int, maxNumber int) bool {
	mid := float64(maxNumber) / 2
	lower := countWhere(numbers, func(n int) bool { return float64(n) <= mid })
	upper := len(numbers) - lower
	return lower >= skewThreshold || upper >= skewThreshold
}

func IsOddEvenBiased(numbers []int) bool {
	odd := countWhere(numbers, func(n int) bool { return n%2 != 0 })
	even := len(numbers) - odd
	return odd >= skewThreshold || even >= skewThreshold
}

// ContainsLuckyNumbers reports three or more picks from the lucky set. It is a
// warning signal only; see IsCommonPattern.
func ContainsLuckyNumbers(numbers []int) bool {
	return countLucky(numbers) >= luckyThreshold
}

func countLucky(numbers []int) int {
	return countWhere(numbers, func(n int) bool { return slices.Contains(luckyNumbers, n) })
}

func countWhere(numbers []int, pred func(int) bool) int {
	count := 0
	for _, n := range numbers {
		if pred(n) {
			count++
		}
	}
	return count
}

// Report is the outcome of every check for one set of numbers.
type Report struct {
	Numbers       []int
	Arithmetic    bool
	Birthday      bool
	BiasedRange   bool
	OddEvenBiased bool
	LuckyNumbers  bool
	LuckyCount    int
}

// Common applies the same rule as IsCommonPattern.
func (r Report) Common() bool {
	return r.Arithmetic || r.Birthday || r.BiasedRange || r.OddEvenBiased
}

// Analyze runs all checks without short-circuiting. The input is sorted on a
// copy first, so callers may pass numbers in any order.
func Analyze(numbers []int, maxNumber int) Report {
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	lucky := countLucky(sorted)
	return Report{
		Numbers:       sorted,
		Arithmetic:    IsArithmeticSequence(sorted),
		Birthday:      IsBirthdayPattern(sorted),
		BiasedRange:   IsBiasedRange(sorted, maxNumber),
		OddEvenBiased: IsOddEvenBiased(sorted),
		LuckyNumbers:  lucky >= luckyThreshold,
		LuckyCount:    lucky,
	}
}
