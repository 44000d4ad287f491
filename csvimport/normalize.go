package csvimport

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/throttle/market"
)

// rowKind says where one data row ended up after normalization.
type rowKind int

const (
	rowFill rowKind = iota
	rowPending
	rowSkipped
	rowDropped // cancelled/rejected/etc: neither a fill nor a diagnostic
)

// rowResult is the outcome of normalizing one data row.
type rowResult struct {
	kind    rowKind
	fill    market.Fill
	pending market.PendingOrder
	skip    SkippedRow
	partial bool // status was "partially filled"
}

// SkippedRow records why one data row failed normalization. Row numbers are
// 1-indexed over data rows (header excluded). Every violated rule is
// listed, not just the first, so the diagnostic is complete on one pass.
type SkippedRow struct {
	Row     int
	Reasons []string
	Cells   map[string]string
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func statusKind(status string) rowKind {
	s := strings.ToLower(strings.TrimSpace(status))
	switch {
	case s == "" || s == "filled" || strings.Contains(s, "partial"):
		return rowFill
	case s == "pending" || s == "working" || s == "open":
		return rowPending
	default:
		return rowDropped
	}
}

// normalizeRow turns one tokenized data row into a fill, a pending order, a
// skip record, or a silent drop. rowNum is 1-indexed over data rows.
func normalizeRow(res *Resolver, row []string, rowNum int) rowResult {
	status := res.Cell(FieldStatus, row)
	kind := statusKind(status)

	if kind == rowDropped {
		return rowResult{kind: rowDropped}
	}
	if kind == rowPending {
		return rowResult{kind: rowPending, pending: pendingFromRow(res, row, rowNum, status)}
	}

	// candidate fill: validate every field, collecting all violations
	var reasons []string

	symbol := strings.ToUpper(strings.TrimSpace(res.Cell(FieldSymbol, row)))
	if symbol == "" {
		reasons = append(reasons, "missing symbol")
	}

	side, ok := market.ParseSide(res.Cell(FieldSide, row))
	if !ok {
		reasons = append(reasons, fmt.Sprintf("unrecognized side %q", res.Cell(FieldSide, row)))
	}

	qty, ok := ParseNumber(res.Cell(FieldQuantity, row))
	if !ok {
		reasons = append(reasons, fmt.Sprintf("unparseable quantity %q", res.Cell(FieldQuantity, row)))
	} else if qty <= 0 {
		reasons = append(reasons, fmt.Sprintf("quantity must be positive, got %v", qty))
	}

	price, ok := ParseNumber(res.Cell(FieldPrice, row))
	if !ok {
		reasons = append(reasons, fmt.Sprintf("unparseable price %q", res.Cell(FieldPrice, row)))
	} else if price <= 0 {
		reasons = append(reasons, fmt.Sprintf("price must be positive, got %v", price))
	}

	rawTime := res.Cell(FieldTime, row)
	ts, ok := ParseDateTime(rawTime)
	if !ok {
		reasons = append(reasons, fmt.Sprintf("unparseable timestamp %q", rawTime))
	}

	if len(reasons) > 0 {
		return rowResult{kind: rowSkipped, skip: SkippedRow{
			Row:     rowNum,
			Reasons: reasons,
			Cells:   rawCells(res, row),
		}}
	}

	fp := market.Fingerprint(symbol, side, qty, price, ts)

	orderID := strings.TrimSpace(res.Cell(FieldOrderID, row))
	if orderID == "" {
		orderID = market.SyntheticOrderID(fp)
	}

	commission := 0.0
	if c, ok := ParseNumber(res.Cell(FieldCommission, row)); ok {
		// sign-normalized: some exports record commissions as negative cash
		if c < 0 {
			c = -c
		}
		commission = c
	}

	stop := 0.0
	if s, ok := ParseNumber(res.Cell(FieldStopPrice, row)); ok && s > 0 {
		stop = s
	}

	return rowResult{
		kind:    rowFill,
		partial: strings.Contains(strings.ToLower(status), "partial"),
		fill: market.Fill{
			ID:          market.FillID(fp),
			Symbol:      symbol,
			Side:        side,
			Quantity:    qty,
			Price:       price,
			Time:        ts,
			OrderID:     orderID,
			Commission:  commission,
			Day:         MarketDay(rawTime, ts),
			RowIndex:    rowNum,
			StopPrice:   stop,
			Fingerprint: fp,
		},
	}
}

func pendingFromRow(res *Resolver, row []string, rowNum int, status string) market.PendingOrder {
	p := market.PendingOrder{
		Symbol:   strings.ToUpper(strings.TrimSpace(res.Cell(FieldSymbol, row))),
		Status:   strings.ToLower(strings.TrimSpace(status)),
		RowIndex: rowNum,
	}
	if side, ok := market.ParseSide(res.Cell(FieldSide, row)); ok {
		p.Side = side
	}
	if qty, ok := ParseNumber(res.Cell(FieldQuantity, row)); ok && qty > 0 {
		p.Quantity = qty
	}
	if lp, ok := ParseNumber(res.Cell(FieldLimitPrice, row)); ok && lp > 0 {
		p.LimitPrice = lp
	} else if lp, ok := ParseNumber(res.Cell(FieldPrice, row)); ok && lp > 0 {
		p.LimitPrice = lp
	}
	if sp, ok := ParseNumber(res.Cell(FieldStopPrice, row)); ok && sp > 0 {
		p.StopPrice = sp
	}
	p.OrderType = strings.ToUpper(strings.TrimSpace(res.Cell(FieldOrderType, row)))
	if p.OrderType == "" {
		switch {
		case p.StopPrice > 0:
			p.OrderType = "STOP"
		case p.LimitPrice > 0:
			p.OrderType = "LIMIT"
		}
	}
	if t, ok := ParseDateTime(res.Cell(FieldPlacedTime, row)); ok {
		p.Placed = t
	}
	return p
}

func rawCells(res *Resolver, row []string) map[string]string {
	cells := make(map[string]string, len(row))
	for i, h := range res.Headers() {
		if i < len(row) {
			cells[h] = row[i]
		}
	}
	return cells
}
