package csvimport

import "strings"

// Tokenize splits raw CSV text into rows of trimmed cells. It understands
// RFC-4180-ish quoting: a quote toggles quoted state, a doubled quote inside
// a quoted field emits one literal quote, and commas split fields only
// outside quotes. Malformed quote sequences degrade to best-effort character
// accumulation rather than failing the row; broker exports are too sloppy
// for encoding/csv's strict error handling.
//
// No schema knowledge lives at this layer.
func Tokenize(text string) [][]string {
	lines := splitLines(text)

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		rows = append(rows, tokenizeLine(line))
	}
	return rows
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func tokenizeLine(line string) []string {
	var cells []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// escaped quote inside a quoted field
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}
