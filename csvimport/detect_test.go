package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFillsExportHigh(t *testing.T) {
	t.Parallel()

	r := NewResolver([]string{"Symbol", "Side", "Qty", "Price", "Time", "Order ID", "Commission"})
	d := DetectFormat(r)
	assert.Equal(t, FormatFills, d.Kind)
	assert.Equal(t, ConfidenceHigh, d.Confidence)
}

func TestDetectRecordsExportHigh(t *testing.T) {
	t.Parallel()

	r := NewResolver([]string{"Symbol", "Side", "Qty", "Price", "Time", "Name", "Total Qty", "Placed Time", "Time In Force"})
	d := DetectFormat(r)
	assert.Equal(t, FormatRecords, d.Kind)
	assert.Equal(t, ConfidenceHigh, d.Confidence)
}

func TestDetectPartialOverlapMedium(t *testing.T) {
	t.Parallel()

	// commission without order id: fills flavor at medium confidence
	r := NewResolver([]string{"Symbol", "Side", "Qty", "Price", "Time", "Commission"})
	d := DetectFormat(r)
	assert.Equal(t, FormatFills, d.Kind)
	assert.Equal(t, ConfidenceMedium, d.Confidence)
}

func TestDetectUnknownLow(t *testing.T) {
	t.Parallel()

	r := NewResolver([]string{"Symbol", "Side", "Qty", "Price", "Time"})
	d := DetectFormat(r)
	assert.Equal(t, FormatUnknown, d.Kind)
	assert.Equal(t, ConfidenceLow, d.Confidence)
}

func TestDetectFirstMatchWins(t *testing.T) {
	t.Parallel()

	// both rule sets fully present: the fills rule sits higher in the table
	r := NewResolver([]string{
		"Symbol", "Side", "Qty", "Price", "Time",
		"Order ID", "Commission", "Name", "Total Qty", "Placed Time", "Time In Force",
	})
	d := DetectFormat(r)
	assert.Equal(t, FormatFills, d.Kind)
	assert.Equal(t, ConfidenceHigh, d.Confidence)
}
