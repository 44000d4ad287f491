package csvimport

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/throttle/market"
)

// ParseNumber is the tolerant numeric parser. It strips currency symbols,
// "@", thousands separators and whitespace, and reads parenthesized values
// as negative. Unparseable input returns ok=false, never an error or a zero
// masquerading as a value; callers turn the sentinel into a row-level
// validation reason.
func ParseNumber(s string) (float64, bool) {
	v := strings.TrimSpace(s)
	if v == "" || v == "--" {
		return 0, false
	}

	neg := false
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		neg = true
		v = v[1 : len(v)-1]
	}

	v = strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', '@', ',', ' ', '\t':
			return -1
		}
		return r
	}, v)

	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}

// marketOpen is the time-of-day assumed for date-only inputs. Midnight is
// the obvious default but buckets fills into the wrong calendar day under
// timezone conversion; 09:30 keeps a date-only fill inside its market day.
const (
	marketOpenHour   = 9
	marketOpenMinute = 30
)

type datePattern struct {
	re       *regexp.Regexp
	layouts  []string
	dateOnly bool
}

// datePatterns is tried in order before any generic fallback. Structure
// checks first (regexp), then layout parses, so "3/4/2024" never gets
// misread by an ISO layout and vice versa.
var datePatterns = []datePattern{
	{
		re:      regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}[ T]\d{1,2}:\d{2}`),
		layouts: []string{"1/2/2006 15:04:05", "1/2/2006 15:04", "1/2/2006 3:04:05 PM", "1/2/2006 3:04 PM"},
	},
	{
		re:      regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T]\d{1,2}:\d{2}`),
		layouts: []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02T15:04:05Z07:00"},
	},
	{
		re:       regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`),
		layouts:  []string{"1/2/2006"},
		dateOnly: true,
	},
	{
		re:       regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		layouts:  []string{"2006-01-02"},
		dateOnly: true,
	},
}

// genericLayouts is the last-resort sweep when no structural pattern
// matches.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05.000",
	"01/02/2006 15:04:05 MST",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"02-Jan-2006",
}

// ParseDateTime is the tolerant date parser. Fixed structural patterns are
// tried in order, then generic layouts; total failure returns ok=false.
// Date-only inputs get the market-open time of day rather than midnight.
func ParseDateTime(s string) (time.Time, bool) {
	v := strings.TrimSpace(s)
	if v == "" || v == "--" {
		return time.Time{}, false
	}

	for _, p := range datePatterns {
		if !p.re.MatchString(v) {
			continue
		}
		for _, layout := range p.layouts {
			t, err := time.Parse(layout, v)
			if err != nil {
				continue
			}
			if p.dateOnly {
				t = time.Date(t.Year(), t.Month(), t.Day(), marketOpenHour, marketOpenMinute, 0, 0, time.UTC)
			}
			return t.UTC(), true
		}
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

var (
	isoDayRe   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	slashDayRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
)

// MarketDay derives the calendar-day bucket for a fill. The literal date
// substring in the raw text wins when present: the source already encodes a
// market-local date, and converting through time.Time risks shifting the day
// across a timezone boundary. Only when extraction fails does it fall back
// to the parsed timestamp's UTC date.
func MarketDay(raw string, t time.Time) market.DayKey {
	if m := isoDayRe.FindString(raw); m != "" {
		if k, err := market.ParseDayKey(m); err == nil {
			return k
		}
	}
	if m := slashDayRe.FindStringSubmatch(raw); m != nil {
		if d, err := time.Parse("1/2/2006", m[0]); err == nil {
			return market.DayKeyFromTime(d)
		}
	}
	return market.DayKeyFromTime(t)
}
