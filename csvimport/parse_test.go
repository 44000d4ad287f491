package csvimport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/throttle/market"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,234.56", 1234.56, true},
		{"1234.56", 1234.56, true},
		{"(12.50)", -12.5, true},
		{"-3.25", -3.25, true},
		{"@187.25", 187.25, true},
		{"  42 ", 42, true},
		{"€9.99", 9.99, true},
		{"($1,000.00)", -1000, true},
		{"", 0, false},
		{"--", 0, false},
		{"abc", 0, false},
		{"()", 0, false},
		{"$", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseNumber(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		if c.ok {
			assert.InDelta(t, c.want, got, 1e-9, "input %q", c.in)
		}
	}
}

func TestParseDateTimeUSSlash(t *testing.T) {
	t.Parallel()

	got, ok := ParseDateTime("3/5/2024 09:31:02")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 31, 2, 0, time.UTC), got)

	got, ok = ParseDateTime("03/05/2024 2:15 PM")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 14, 15, 0, 0, time.UTC), got)
}

func TestParseDateTimeISO(t *testing.T) {
	t.Parallel()

	got, ok := ParseDateTime("2024-03-05 09:31:02")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 31, 2, 0, time.UTC), got)

	got, ok = ParseDateTime("2024-03-05T09:31:02")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 31, 2, 0, time.UTC), got)
}

func TestParseDateTimeDateOnlyDefaultsToMarketOpen(t *testing.T) {
	t.Parallel()

	// date-only inputs land at 09:30, not midnight, so timezone conversion
	// cannot shift the fill into the previous day
	got, ok := ParseDateTime("3/5/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC), got)

	got, ok = ParseDateTime("2024-03-05")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC), got)
}

func TestParseDateTimeGenericFallback(t *testing.T) {
	t.Parallel()

	got, ok := ParseDateTime("2024-03-05T09:31:02Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 31, 2, 0, time.UTC), got)

	got, ok = ParseDateTime("Jan 2, 2006")
	require.True(t, ok)
	assert.Equal(t, 2006, got.Year())
}

func TestParseDateTimeFailure(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "--", "not a date", "13/45/2024 99:99"} {
		_, ok := ParseDateTime(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestMarketDayPrefersLiteralDate(t *testing.T) {
	t.Parallel()

	// the parsed time says March 6 UTC, but the raw text says March 5
	// market-local; the literal substring wins
	parsed := time.Date(2024, 3, 6, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, market.DayKey("2024-03-05"), MarketDay("2024-03-05 21:00:00", parsed))
	assert.Equal(t, market.DayKey("2024-03-05"), MarketDay("3/5/2024 9:00 PM", parsed))
}

func TestMarketDayFallsBackToParsedTime(t *testing.T) {
	t.Parallel()

	parsed := time.Date(2024, 3, 6, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, market.DayKey("2024-03-06"), MarketDay("some opaque stamp", parsed))
}
