package table

import "github.com/yaklabco/mdpara/pkg/span"

// minBoundaries is the boundary count of a table with a header and delimiter.
const minBoundaries = 3

// Table is a merged table paragraph. RowBoundaries are offsets into Content:
// RowBoundaries[0] is always 0, the header row ends at RowBoundaries[1], the
// delimiter row spans RowBoundaries[1]..RowBoundaries[2], and each later
// boundary ends one body row.
type Table struct {
	Content       span.Span
	RowBoundaries []int
}

// WellFormed reports whether the table has at least a header and a delimiter row.
func (t *Table) WellFormed() bool {
	return len(t.RowBoundaries) >= minBoundaries && t.RowBoundaries[0] == 0
}

// Row returns row i (0 is the header, 1 the delimiter) trimmed of surrounding
// whitespace, including the newline that separates it from the previous row.
func (t *Table) Row(i int) span.Span {
	if i < 0 || i+1 >= len(t.RowBoundaries) {
		return span.Span{}
	}
	return t.Content.Sub(t.RowBoundaries[i], t.RowBoundaries[i+1]).TrimSpace()
}

// RowCount returns the number of rows, header and delimiter included.
func (t *Table) RowCount() int {
	return max(len(t.RowBoundaries)-1, 0)
}

// Header returns the header row.
func (t *Table) Header() span.Span { return t.Row(0) }

// Delimiter returns the alignment row.
func (t *Table) Delimiter() span.Span { return t.Row(1) }

// Body returns the body rows in order.
func (t *Table) Body() []span.Span {
	if t.RowCount() <= 2 {
		return nil
	}
	body := make([]span.Span, 0, t.RowCount()-2)
	for i := 2; i < t.RowCount(); i++ {
		body = append(body, t.Row(i))
	}
	return body
}

// Columns returns the number of header cells.
func (t *Table) Columns() int {
	return len(Cells(t.Header()))
}

// Alignments returns one alignment per delimiter cell.
func (t *Table) Alignments() []Alignment {
	return ParseAlignments(t.Delimiter().String())
}

// ColumnAlignment returns the alignment of column i, defaulting to left when
// the delimiter row has fewer cells than the header.
func (t *Table) ColumnAlignment(i int) Alignment {
	alignments := t.Alignments()
	if i < 0 || i >= len(alignments) {
		return AlignLeft
	}
	return alignments[i]
}

// Grid returns the body cells with every row padded or truncated to the
// header's column count. Missing cells are empty spans.
func (t *Table) Grid() [][]span.Span {
	columns := t.Columns()
	body := t.Body()

	grid := make([][]span.Span, 0, len(body))
	for _, row := range body {
		cells := Cells(row)
		padded := make([]span.Span, columns)
		copy(padded, cells)
		grid = append(grid, padded)
	}
	return grid
}

// Cells splits a row into trimmed cells after removing at most one leading
// and one trailing pipe.
func Cells(row span.Span) []span.Span {
	row = row.TrimSpace()
	if row.IsEmpty() {
		return nil
	}
	if row.At(0) == '|' {
		row = row.Slice(1)
	}
	if !row.IsEmpty() && row.At(row.Len()-1) == '|' {
		row = row.Sub(0, row.Len()-1)
	}

	parts := row.SplitByte('|')
	for i := range parts {
		parts[i] = parts[i].TrimSpace()
	}
	return parts
}
