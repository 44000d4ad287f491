package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintDeterministic(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 5, 9, 31, 2, 0, time.UTC)

	a := Fingerprint("AAPL", Buy, 100, 187.25, ts)
	b := Fingerprint("AAPL", Buy, 100, 187.25, ts)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	// case-insensitive on symbol
	assert.Equal(t, a, Fingerprint("aapl", Buy, 100, 187.25, ts))
}

func TestFingerprintDistinguishes(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 5, 9, 31, 2, 0, time.UTC)
	base := Fingerprint("AAPL", Buy, 100, 187.25, ts)

	assert.NotEqual(t, base, Fingerprint("MSFT", Buy, 100, 187.25, ts))
	assert.NotEqual(t, base, Fingerprint("AAPL", Sell, 100, 187.25, ts))
	assert.NotEqual(t, base, Fingerprint("AAPL", Buy, 200, 187.25, ts))
	assert.NotEqual(t, base, Fingerprint("AAPL", Buy, 100, 187.26, ts))
	assert.NotEqual(t, base, Fingerprint("AAPL", Buy, 100, 187.25, ts.Add(time.Second)))
}

func TestFillIDFromFingerprint(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 5, 9, 31, 2, 0, time.UTC)
	fp := Fingerprint("AAPL", Buy, 100, 187.25, ts)

	assert.Equal(t, "f-"+fp[:16], FillID(fp))
	assert.Equal(t, "ord-"+fp[:12], SyntheticOrderID(fp))
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Side
		ok   bool
	}{
		{"BUY", Buy, true},
		{"buy", Buy, true},
		{"B", Buy, true},
		{"BOT", Buy, true},
		{"Sell", Sell, true},
		{"S", Sell, true},
		{"Sell Short", Sell, true},
		{"SLD", Sell, true},
		{"", "", false},
		{"hold", "", false},
	}
	for _, c := range cases {
		got, ok := ParseSide(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}
