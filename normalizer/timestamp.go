package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// maxEpochSeconds is the largest magnitude a browser Date accepts (8.64e15 ms).
const maxEpochSeconds = 8_640_000_000_000

var leadingInt = regexp.MustCompile(`^[+-]?[0-9]+`)

// FormatTimestamp formats a Unix-seconds string as YYYY-MM-DD in the local time zone.
func FormatTimestamp(s string) string {
	return formatTimestamp(s, time.Local)
}

// FormatTimestamp formats a Unix-seconds string as YYYY-MM-DD in the normalizer's location.
// Empty, non-numeric and zero values yield "".
func (n *Normalizer) FormatTimestamp(s string) string {
	return formatTimestamp(s, n.loc)
}

func formatTimestamp(s string, loc *time.Location) string {
	secs, ok := parseLeadingInt(s)
	if !ok || secs == 0 || secs > maxEpochSeconds || secs < -maxEpochSeconds {
		return ""
	}
	return time.Unix(secs, 0).In(loc).Format(dateLayout)
}

// parseLeadingInt reads the base-10 integer prefix of s, ignoring trailing garbage ("12abc" is 12).
func parseLeadingInt(s string) (int64, bool) {
	digits := leadingInt.FindString(strings.TrimSpace(s))
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
