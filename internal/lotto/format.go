package lotto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"lottogen/internal/model"
)

// DefaultLocale matches the German rendering the archive was first shown in.
const DefaultLocale = "de-DE"

// dateTimeLayouts maps a base language to a date/time layout close to what a
// browser prints for that locale.
var dateTimeLayouts = map[string]string{
	"de": "02.01.2006, 15:04:05",
	"en": "1/2/2006, 3:04:05 PM",
	"fr": "02/01/2006 15:04:05",
	"it": "2/1/2006, 15:04:05",
	"nl": "2-1-2006, 15:04:05",
	"es": "2/1/2006, 15:04:05",
}

const fallbackLayout = "2006-01-02 15:04:05"

// Formatter renders combinations for display in one locale and time zone.
type Formatter struct {
	tag      language.Tag
	location *time.Location
	layout   string
	printer  *message.Printer
}

// NewFormatter parses locale as a BCP 47 tag. A nil location means time.Local.
func NewFormatter(locale string, location *time.Location) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	if location == nil {
		location = time.Local
	}

	layout := fallbackLayout
	base, _ := tag.Base()
	if l, ok := dateTimeLayouts[base.String()]; ok {
		layout = l
	}

	return &Formatter{
		tag:      tag,
		location: location,
		layout:   layout,
		printer:  message.NewPrinter(tag),
	}, nil
}

func defaultFormatter() *Formatter {
	f, _ := NewFormatter(DefaultLocale, nil)
	return f
}

// Locale returns the tag the formatter renders for.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Time renders t in the formatter's zone and locale layout.
func (f *Formatter) Time(t time.Time) string {
	return t.In(f.location).Format(f.layout)
}

// FormatNumbers joins the drawn numbers with ", ".
func FormatNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// Format renders "3, 12, 19, 27, 41, 48 | Bonus: 5 (<time>)".
func (f *Formatter) Format(c model.Combination) string {
	return f.printer.Sprintf("%s | Bonus: %d (%s)", FormatNumbers(c.Numbers), c.Bonus, f.Time(c.Timestamp))
}

// FormatCombination renders c with the default locale in local time.
func FormatCombination(c model.Combination) string {
	return defaultFormatter().Format(c)
}
