// Package duration computes elapsed-time annotations from free-text date
// ranges like "June 2018 - September 2021" or "December 2023 - Present".
package duration

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// separatorPattern splits a date range on a hyphen, double hyphen, en dash,
// em dash, or pipe, with optional surrounding whitespace.
var separatorPattern = regexp.MustCompile(`\s*(?:--|[-–—|])\s*`)

// monthYearLayouts are tried before fuzzy parsing so the common resume date
// forms parse deterministically and cheaply.
var monthYearLayouts = []string{
	"January 2006",
	"Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"01/2006",
	"2006-01",
	"2006",
}

// Calculator computes duration annotations for date ranges. Construct with
// NewCalculator; the zero value produces no annotations.
type Calculator struct {
	enabled bool
	now     func() time.Time
}

// NewCalculator returns a Calculator that resolves "Present" and "Current"
// end dates against the wall clock. When enabled is false every computation
// returns an empty annotation.
func NewCalculator(enabled bool) *Calculator {
	return &Calculator{enabled: enabled, now: time.Now}
}

// NewCalculatorWithClock returns a Calculator with an injected clock so
// open-ended ranges resolve deterministically. Used by tests.
func NewCalculatorWithClock(enabled bool, now func() time.Time) *Calculator {
	return &Calculator{enabled: enabled, now: now}
}

// Enabled reports whether duration annotations are being produced. Callers
// can use this to warn the operator once instead of per range.
func (c *Calculator) Enabled() bool {
	return c.enabled
}

// FromRange computes a duration annotation like "(3 years 3 months)" from a
// date range string. The end half may read "Present" or "Current" (any
// case), which resolves to the calculator's clock. Every failure collapses
// to an empty string: the annotation is cosmetic and must never block
// rendering.
func (c *Calculator) FromRange(text string) string {
	if c == nil || !c.enabled || c.now == nil {
		return ""
	}

	parts := separatorPattern.Split(text, -1)
	if len(parts) != 2 {
		return ""
	}

	start, ok := parseDate(parts[0])
	if !ok {
		return ""
	}

	var end time.Time
	endLower := strings.ToLower(parts[1])
	if strings.Contains(endLower, "present") || strings.Contains(endLower, "current") {
		end = c.now()
	} else {
		end, ok = parseDate(parts[1])
		if !ok {
			return ""
		}
	}

	years, months, ok := yearMonthDelta(start, end)
	if !ok {
		return ""
	}

	return formatAnnotation(years, months)
}

// parseDate parses free-form date text, trying the explicit layouts before
// falling back to fuzzy parsing.
func parseDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range monthYearLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	return parseFuzzy(text)
}

// parseFuzzy guards dateparse, which is known to panic on some pathological
// inputs. A panic here must degrade to "no annotation", not crash the run.
func parseFuzzy(text string) (parsed time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			parsed, ok = time.Time{}, false
		}
	}()

	t, err := dateparse.ParseAny(text)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// yearMonthDelta decomposes the span between start and end into whole years
// plus remaining whole months, borrowing a month when the end day-of-month
// falls before the start day-of-month. Reversed ranges report not ok.
func yearMonthDelta(start, end time.Time) (years, months int, ok bool) {
	if end.Before(start) {
		return 0, 0, false
	}

	total := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		total--
	}
	if total < 0 {
		return 0, 0, false
	}

	return total / 12, total % 12, true
}

// formatAnnotation renders the parenthesized annotation, pluralizing each
// unit independently and omitting zero units.
func formatAnnotation(years, months int) string {
	parts := make([]string, 0, 2)
	if years > 0 {
		parts = append(parts, pluralize(years, "year"))
	}
	if months > 0 {
		parts = append(parts, pluralize(months, "month"))
	}

	if len(parts) == 0 {
		return "(less than 1 month)"
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
