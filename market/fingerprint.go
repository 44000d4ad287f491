package market

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Fingerprint derives a stable content hash from a fill's defining
// attributes. Two fills with the same symbol, side, quantity, price and
// execution time always hash identically, regardless of which export file
// or row they came from. That property is what makes merge-mode re-imports
// idempotent: stores key fills by fingerprint and re-imports become set
// union.
func Fingerprint(symbol string, side Side, quantity, price float64, ts time.Time) string {
	payload := strings.Join([]string{
		strings.ToUpper(symbol),
		string(side),
		strconv.FormatFloat(quantity, 'f', -1, 64),
		strconv.FormatFloat(price, 'f', -1, 64),
		ts.UTC().Format("2006-01-02T15:04:05.000Z"),
	}, "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// FillID derives the deterministic fill id from a fingerprint.
func FillID(fingerprint string) string {
	return "f-" + fingerprint[:16]
}

// SyntheticOrderID derives an order id from a fingerprint for rows whose
// source carried none.
func SyntheticOrderID(fingerprint string) string {
	return "ord-" + fingerprint[:12]
}
