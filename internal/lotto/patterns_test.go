package lotto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsArithmeticSequence(t *testing.T) {
	assert.True(t, IsArithmeticSequence([]int{1, 2, 3, 10, 20}), "first triple steps by 1")
	assert.True(t, IsArithmeticSequence([]int{4, 10, 20, 30, 44}), "inner triple steps by 10")
	assert.False(t, IsArithmeticSequence([]int{1, 3, 6, 10}))
	assert.False(t, IsArithmeticSequence([]int{5, 9}))
	assert.False(t, IsArithmeticSequence(nil))
}

func TestIsBirthdayPattern(t *testing.T) {
	assert.True(t, IsBirthdayPattern([]int{1, 5, 10, 15, 40, 45}), "four numbers in 1..31")
	assert.True(t, IsBirthdayPattern([]int{12, 25, 33, 40, 44, 49}), "day and month pair")
	assert.False(t, IsBirthdayPattern([]int{13, 20, 33, 40, 44, 49}), "two days but no month")
	assert.False(t, IsBirthdayPattern([]int{5, 32, 33, 40, 44, 49}), "single small number")
}

func TestIsBiasedRange(t *testing.T) {
	assert.True(t, IsBiasedRange([]int{1, 2, 3, 4, 5, 48}, 49))
	assert.True(t, IsBiasedRange([]int{2, 30, 35, 40, 45, 49}, 49))
	assert.False(t, IsBiasedRange([]int{1, 2, 3, 30, 40, 49}, 49))
}

func TestIsBiasedRangeSplitsWithoutRounding(t *testing.T) {
	// 24 <= 24.5 is lower, 25 is upper.
	assert.True(t, IsBiasedRange([]int{20, 21, 22, 23, 24, 49}, 49))
	assert.False(t, IsBiasedRange([]int{20, 21, 22, 23, 25, 49}, 49))
}

func TestSkewChecksUseFixedThreshold(t *testing.T) {
	// Four numbers can never reach a threshold of five.
	assert.False(t, IsBiasedRange([]int{1, 2, 3, 4}, 49))
	assert.False(t, IsOddEvenBiased([]int{1, 3, 5, 7}))
	// Seven numbers with five in one half still trip it.
	assert.True(t, IsBiasedRange([]int{1, 2, 3, 4, 5, 40, 41}, 49))
}

func TestIsOddEvenBiased(t *testing.T) {
	assert.True(t, IsOddEvenBiased([]int{1, 3, 5, 7, 9, 10}))
	assert.True(t, IsOddEvenBiased([]int{2, 4, 6, 8, 10, 12}))
	assert.False(t, IsOddEvenBiased([]int{1, 2, 3, 4, 5, 6}))
}

func TestContainsLuckyNumbers(t *testing.T) {
	assert.True(t, ContainsLuckyNumbers([]int{7, 11, 13, 20, 30, 40}))
	assert.False(t, ContainsLuckyNumbers([]int{7, 11, 20, 30, 40, 45}))
}

func TestLuckyNumbersNeverMakeDrawCommon(t *testing.T) {
	numbers := []int{13, 21, 33, 38, 42, 45}
	assert.True(t, ContainsLuckyNumbers(numbers))
	assert.False(t, IsCommonPattern(numbers, 49))

	report := Analyze(numbers, 49)
	assert.True(t, report.LuckyNumbers)
	assert.Equal(t, 3, report.LuckyCount)
	assert.False(t, report.Common())
}

func TestIsCommonPattern(t *testing.T) {
	assert.True(t, IsCommonPattern([]int{1, 2, 3, 4, 5, 6}, 49))
	assert.False(t, IsCommonPattern([]int{13, 20, 26, 33, 41, 48}, 49))
}

func TestAnalyzeReportsEveryCheck(t *testing.T) {
	report := Analyze([]int{40, 30, 20, 13, 11, 7}, 49)
	assert.Equal(t, []int{7, 11, 13, 20, 30, 40}, report.Numbers)
	assert.True(t, report.Arithmetic)
	assert.True(t, report.Birthday)
	assert.False(t, report.BiasedRange)
	assert.False(t, report.OddEvenBiased)
	assert.True(t, report.LuckyNumbers)
	assert.True(t, report.Common())
}

func TestAnalyzeDoesNotReorderInput(t *testing.T) {
	input := []int{40, 3, 21}
	Analyze(input, 49)
	assert.Equal(t, []int{40, 3, 21}, input)
}
