// Package isotime parses ISO-8601 datetime strings with a fixed, documented
// grammar. Values that carry no UTC offset are interpreted as UTC rather than
// local time, so a naive input is never ambiguous.
package isotime

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidFormat is returned when the input does not match the accepted
// grammar or encodes an impossible calendar date or time.
var ErrInvalidFormat = errors.New("isotime: invalid datetime format")

// Accepted forms, tried in order. The grammar is:
//
//	YYYY-MM-DD
//	YYYY-MM-DD{T| }HH:MM[:SS[.fffffffff]][Z|±HH:MM|±HHMM]
//
// Fractional seconds carry at most nanosecond precision. time.Parse rejects
// out-of-range fields (month 13, Feb 30, hour 25), which covers the
// "valid syntax, impossible value" cases. Layouts without an offset
// component parse in UTC.
var layouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04-0700",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse interprets s as an ISO-8601 datetime. A space may stand in for the
// 'T' separator, matching the leniency of common ISO-8601 producers.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrInvalidFormat
	}
	// Normalize the optional space separator so one layout list covers both.
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	if strings.ContainsAny(s, " \t\n") || strings.HasSuffix(s, "T") {
		return time.Time{}, ErrInvalidFormat
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidFormat
}
