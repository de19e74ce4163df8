package lotto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottogen/internal/model"
)

func TestFormatterLocales(t *testing.T) {
	c := model.Combination{
		Numbers:   []int{3, 12, 19, 27, 41, 48},
		Bonus:     5,
		Timestamp: time.Date(2024, 5, 1, 14, 3, 7, 0, time.UTC),
	}
	cases := map[string]string{
		"de-DE": "3, 12, 19, 27, 41, 48 | Bonus: 5 (01.05.2024, 14:03:07)",
		"en-US": "3, 12, 19, 27, 41, 48 | Bonus: 5 (5/1/2024, 2:03:07 PM)",
		"fr":    "3, 12, 19, 27, 41, 48 | Bonus: 5 (01/05/2024 14:03:07)",
		"ja-JP": "3, 12, 19, 27, 41, 48 | Bonus: 5 (2024-05-01 14:03:07)",
	}
	for locale, want := range cases {
		t.Run(locale, func(t *testing.T) {
			f, err := NewFormatter(locale, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, want, f.Format(c))
		})
	}
}

func TestFormatterRendersInLocation(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)
	f, err := NewFormatter("de-DE", berlin)
	require.NoError(t, err)

	assert.Equal(t, "01.05.2024, 12:00:00", f.Time(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
}

func TestFormatterEmptyLocaleUsesDefault(t *testing.T) {
	f, err := NewFormatter("", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "de-DE", f.Locale().String())
}

func TestFormatterRejectsBadLocale(t *testing.T) {
	_, err := NewFormatter("not a locale", time.UTC)
	assert.Error(t, err)
}

func TestFormatCombinationIsDeterministic(t *testing.T) {
	c := model.Combination{Numbers: []int{1, 9, 17}, Bonus: 2, Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	assert.Equal(t, FormatCombination(c), FormatCombination(c))
	assert.Contains(t, FormatCombination(c), "1, 9, 17 | Bonus: 2 (")
}
