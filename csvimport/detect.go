package csvimport

// FormatKind classifies which export flavor a file most resembles.
type FormatKind string

const (
	FormatFills   FormatKind = "fills-export"
	FormatRecords FormatKind = "records-export"
	FormatUnknown FormatKind = "unknown"
)

// Confidence grades how certain a format classification is. Detection never
// blocks an import; low confidence only surfaces as a warning.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Detection is the outcome of format classification.
type Detection struct {
	Kind       FormatKind
	Confidence Confidence
}

// detectRule is one row of the classification table: a predicate over the
// resolved optional columns plus the classification it implies.
type detectRule struct {
	match  func(p formatFeatures) bool
	result Detection
}

// formatFeatures is the boolean feature vector detection operates on.
type formatFeatures struct {
	orderID     bool
	commission  bool
	name        bool
	totalQty    bool
	placedTime  bool
	timeInForce bool
}

// detectRules is evaluated top-down, first match wins.
var detectRules = []detectRule{
	{
		match:  func(p formatFeatures) bool { return p.orderID && p.commission },
		result: Detection{FormatFills, ConfidenceHigh},
	},
	{
		match:  func(p formatFeatures) bool { return p.name && p.totalQty && p.placedTime && p.timeInForce },
		result: Detection{FormatRecords, ConfidenceHigh},
	},
	{
		match:  func(p formatFeatures) bool { return p.orderID || p.commission },
		result: Detection{FormatFills, ConfidenceMedium},
	},
	{
		match:  func(p formatFeatures) bool { return p.totalQty && p.placedTime || p.name && p.timeInForce },
		result: Detection{FormatRecords, ConfidenceMedium},
	},
}

// DetectFormat classifies a header row into a known export flavor. Pure
// function of the resolved column set.
func DetectFormat(r *Resolver) Detection {
	p := formatFeatures{
		orderID:     r.Has(FieldOrderID),
		commission:  r.Has(FieldCommission),
		name:        r.Has(FieldName),
		totalQty:    r.Has(FieldTotalQty),
		placedTime:  r.Has(FieldPlacedTime),
		timeInForce: r.Has(FieldTimeInForce),
	}
	for _, rule := range detectRules {
		if rule.match(p) {
			return rule.result
		}
	}
	return Detection{FormatUnknown, ConfidenceLow}
}
