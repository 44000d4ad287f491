package market

import "time"

// DayKey is a canonical calendar day in "YYYY-MM-DD" form. Because the
// format is zero-padded ISO, lexicographic order equals chronological
// order, which lets callers compare and sort keys as plain strings.
type DayKey string

const dayLayout = "2006-01-02"

// DayKeyFromTime buckets a timestamp into its UTC calendar day.
func DayKeyFromTime(t time.Time) DayKey {
	return DayKey(t.UTC().Format(dayLayout))
}

// ParseDayKey validates a raw string as a day key.
func ParseDayKey(s string) (DayKey, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return "", err
	}
	return DayKeyFromTime(t), nil
}

// Valid reports whether the key is a well-formed calendar day.
func (k DayKey) Valid() bool {
	_, err := time.Parse(dayLayout, string(k))
	return err == nil
}

// Time returns midnight UTC of the key's calendar day.
func (k DayKey) Time() time.Time {
	t, _ := time.Parse(dayLayout, string(k))
	return t
}

// Epoch returns the number of whole days since the Unix epoch. Useful for
// range arithmetic without repeated time.Time round trips.
func (k DayKey) Epoch() int {
	return int(k.Time().Unix() / 86400)
}

// DayKeyFromEpoch is the inverse of Epoch.
func DayKeyFromEpoch(n int) DayKey {
	return DayKeyFromTime(time.Unix(int64(n)*86400, 0).UTC())
}

// Next returns the following calendar day.
func (k DayKey) Next() DayKey {
	return DayKeyFromEpoch(k.Epoch() + 1)
}

// Before reports whether k is strictly earlier than other.
func (k DayKey) Before(other DayKey) bool {
	return string(k) < string(other)
}

// After reports whether k is strictly later than other.
func (k DayKey) After(other DayKey) bool {
	return string(k) > string(other)
}
