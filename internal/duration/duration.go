// Package duration parses human-friendly paste lifetimes like "30m",
// "1d" or "2mo" into the minute counts the pastery API expects.
package duration

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minute = 1
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
	month  = 30 * day
	year   = 365 * day

	// MaxMinutes is the longest accepted lifetime (100 years), matching
	// the service-side limit.
	MaxMinutes = 100 * year
)

// units maps a unit spelling to its length in minutes. The unit is the
// entire text after the leading digits, matched whole, so "mo" can never
// be misread as "m" with a stray "o".
var units = map[string]int{
	"":        minute,
	"m":       minute,
	"minute":  minute,
	"minutes": minute,
	"h":       hour,
	"hour":    hour,
	"hours":   hour,
	"d":       day,
	"day":     day,
	"days":    day,
	"w":       week,
	"week":    week,
	"weeks":   week,
	"mo":      month,
	"month":   month,
	"months":  month,
	"y":       year,
	"year":    year,
	"years":   year,
}

// ParseError describes a duration string that could not be understood.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid duration %q: %s", e.Input, e.Reason)
}

// Parse converts a duration string of the form <number><unit> into
// minutes. The unit is optional and case-insensitive; a bare number is
// already in minutes. Recognized units: m(inute), h(our), d(ay), w(eek),
// mo(nth), y(ear), including plural and full spellings.
func Parse(s string) (int, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, &ParseError{Input: s, Reason: "must start with a number"}
	}

	amount, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "amount is too large"}
	}

	scale, ok := units[strings.ToLower(s[i:])]
	if !ok {
		return 0, &ParseError{
			Input:  s,
			Reason: fmt.Sprintf("unknown unit %q; expected one of m, h, d, w, mo, y", s[i:]),
		}
	}

	if amount > MaxMinutes/scale {
		return 0, &ParseError{Input: s, Reason: "maximum duration is 100y"}
	}

	return amount * scale, nil
}
