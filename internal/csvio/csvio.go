// Package csvio implements the tolerant CSV codec used for question banks
// and session exports. The parser accepts whatever third-party spreadsheet
// tools emit (quoted fields, embedded commas and newlines, doubled-quote
// escapes, mixed CR/LF terminators); the encoder produces the quoted subset
// the parser is guaranteed to round-trip.
package csvio

import "strings"

// Parse tokenizes raw delimited text into rows of fields in a single
// left-to-right scan. It never fails: malformed input degrades to whatever
// rows could be recovered. Rows whose fields are all empty are dropped.
func Parse(raw string) [][]string {
	var (
		rows   [][]string
		row    []string
		field  strings.Builder
		quoted bool
	)

	flushField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	flushRow := func() {
		flushField()
		for _, cell := range row {
			if cell != "" {
				rows = append(rows, row)
				break
			}
		}
		row = nil
	}

	for i := 0; i < len(raw); {
		c := raw[i]
		switch {
		case c == '"':
			if quoted && i+1 < len(raw) && raw[i+1] == '"' {
				field.WriteByte('"')
				i += 2
				continue
			}
			quoted = !quoted
			i++
		case c == ',' && !quoted:
			flushField()
			i++
		case (c == '\n' || c == '\r') && !quoted:
			flushRow()
			if c == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
		default:
			field.WriteByte(c)
			i++
		}
	}

	// Flush any trailing partial field or row.
	if field.Len() > 0 || len(row) > 0 {
		flushRow()
	}

	return rows
}

// Encode serializes rows to CSV text. Cells containing a comma, double
// quote, or newline are wrapped in double quotes with internal quotes
// doubled; all other cells are emitted bare.
func Encode(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(encodeCell(cell))
		}
	}
	return b.String()
}

func encodeCell(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n\r") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
