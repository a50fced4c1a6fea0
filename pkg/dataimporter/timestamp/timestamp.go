// Package timestamp parses the assorted timestamp formats found in telematics exports.
//
// Every result is a wall-clock time in UTC. Zone suffixes such as "CT" or "CDT" are
// discarded rather than applied, so times compare against shift boundaries as printed.
package timestamp

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var zoneSuffixRegex = regexp.MustCompile(`\s+([A-Z]{2,3})$`)

// Tried in order, the first successful parse wins
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// Parse returns false when raw matches no known layout and the permissive fallback also fails
func Parse(raw string) (time.Time, bool) {
	value := StripZoneSuffix(strings.TrimSpace(raw))
	if value == "" {
		return time.Time{}, false
	}
	value = strings.ToUpper(value)

	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed, true
		}
	}

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	return wallClock(parsed), true
}

// StripZoneSuffix removes a trailing 2-3 letter upper case zone name. AM and PM are meridiem markers and are kept.
func StripZoneSuffix(value string) string {
	match := zoneSuffixRegex.FindStringSubmatchIndex(value)
	if match == nil {
		return value
	}

	suffix := value[match[2]:match[3]]
	if suffix == "AM" || suffix == "PM" {
		return value
	}

	return strings.TrimSpace(value[:match[0]])
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
