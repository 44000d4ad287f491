package market

import "strings"

// Side is the direction of an executed order.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide resolves the loose side spellings brokers export ("Buy", "B",
// "BOT", "Sell Short", ...) into a canonical Side. Prefix match first, then
// substring, so "Sell Short" resolves to SELL and "BOT"/"SLD" still land.
func ParseSide(s string) (Side, bool) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if v == "" {
		return "", false
	}
	switch {
	case strings.HasPrefix(v, "B"):
		return Buy, true
	case strings.HasPrefix(v, "S"):
		return Sell, true
	case strings.Contains(v, "BUY"):
		return Buy, true
	case strings.Contains(v, "SELL"):
		return Sell, true
	}
	return "", false
}
