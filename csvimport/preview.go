package csvimport

// Preview is the light header-level view of a CSV file: enough for a UI to
// show what was detected before the user commits to an import.
type Preview struct {
	Headers     []string
	Rows        [][]string // windowed subset
	HasRequired bool
	Missing     []Field
	Format      Detection
}

// PreviewExtended adds the full row set for callers that render the whole
// file.
type PreviewExtended struct {
	Preview
	AllRows   [][]string
	TotalRows int
}

// BuildPreview tokenizes the text and reports headers, a window of up to
// window data rows, required-column presence and the detected format. It
// never fails: empty input yields an empty preview.
func BuildPreview(text string, window int) Preview {
	p, _ := buildPreview(text, window, false)
	return p
}

// BuildPreviewExtended is BuildPreview plus the complete data row set.
func BuildPreviewExtended(text string, window int) PreviewExtended {
	p, all := buildPreview(text, window, true)
	return PreviewExtended{Preview: p, AllRows: all, TotalRows: len(all)}
}

func buildPreview(text string, window int, keepAll bool) (Preview, [][]string) {
	rows := Tokenize(text)
	if len(rows) == 0 {
		return Preview{Format: Detection{FormatUnknown, ConfidenceLow}}, nil
	}

	res := NewResolver(rows[0])
	missing := res.MissingRequired()

	data := rows[1:]
	n := window
	if n <= 0 || n > len(data) {
		n = len(data)
	}

	p := Preview{
		Headers:     rows[0],
		Rows:        data[:n],
		HasRequired: len(missing) == 0,
		Missing:     missing,
		Format:      DetectFormat(res),
	}
	if keepAll {
		return p, data
	}
	return p, nil
}
