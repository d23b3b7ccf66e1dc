package table

import (
	"fmt"
	"strings"
)

// Alignment is the horizontal alignment of a table column.
type Alignment int

// Column alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the lower-case alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("alignment(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseAlignments returns one alignment per column of a delimiter row.
// A cell with exactly two colons is centred; a cell starting with a colon or
// without colons is left aligned; anything else is right aligned.
func ParseAlignments(delimiter string) []Alignment {
	inner := stripOuterPipes(strings.TrimSpace(delimiter))

	cells := strings.Split(inner, "|")
	alignments := make([]Alignment, 0, len(cells))
	for _, cell := range cells {
		alignments = append(alignments, cellAlignment(strings.TrimSpace(cell)))
	}
	return alignments
}

func cellAlignment(cell string) Alignment {
	colons := strings.Count(cell, ":")
	switch {
	case colons == maxCellColons:
		return AlignCenter
	case colons == 0, strings.HasPrefix(cell, ":"):
		return AlignLeft
	default:
		return AlignRight
	}
}

// stripOuterPipes removes at most one leading and one trailing pipe.
func stripOuterPipes(text string) string {
	text = strings.TrimPrefix(text, "|")
	return strings.TrimSuffix(text, "|")
}
