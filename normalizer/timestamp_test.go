package normalizer

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestampInvalid(t *testing.T) {
	for _, in := range []string{"0", "", "abc", "-0", "+0", " ", "99999999999999999999"} {
		assert.Equal(t, "", FormatTimestamp(in), "input %q", in)
	}
}

func TestFormatTimestampLocal(t *testing.T) {
	got := FormatTimestamp("1700000000")

	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), got)
	assert.Equal(t, time.Unix(1700000000, 0).Local().Format("2006-01-02"), got)
}

func TestFormatTimestampLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	newYork := time.FixedZone("EST", -5*60*60)

	// 2023-11-14T22:13:20Z
	assert.Equal(t, "2023-11-14", New(WithLocation(time.UTC)).FormatTimestamp("1700000000"))
	assert.Equal(t, "2023-11-15", New(WithLocation(tokyo)).FormatTimestamp("1700000000"))
	assert.Equal(t, "2023-11-14", New(WithLocation(newYork)).FormatTimestamp("1700000000"))
}

func TestFormatTimestampLeadingInteger(t *testing.T) {
	n := New(WithLocation(time.UTC))

	assert.Equal(t, "2023-11-14", n.FormatTimestamp("1700000000.75"))
	assert.Equal(t, "2023-11-14", n.FormatTimestamp("1700000000abc"))
	assert.Equal(t, "1970-01-02", n.FormatTimestamp("86400"))
	assert.Equal(t, "1969-12-31", n.FormatTimestamp("-86400"))
}

func TestFormatTimestampOutOfDateRange(t *testing.T) {
	n := New(WithLocation(time.UTC))
	assert.Equal(t, "", n.FormatTimestamp("99999999999999"))
	assert.Equal(t, "", n.FormatTimestamp("-8640000000001"))
	assert.Equal(t, "275760-09-13", n.FormatTimestamp("8640000000000"))
}
