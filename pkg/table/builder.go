package table

import (
	"fmt"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/span"
)

// Lookahead selects how far the builder reads body rows past the delimiter.
type Lookahead int

const (
	// LookaheadCompat reads a body row only while another line follows it,
	// and consumes the line that stops the scan. This reproduces the row
	// boundaries produced by the reference Reddit client.
	LookaheadCompat Lookahead = iota

	// LookaheadGreedy reads every consecutive row containing a pipe and
	// leaves the stopping line to the caller.
	LookaheadGreedy
)

// String returns the configuration name of the mode.
func (l Lookahead) String() string {
	switch l {
	case LookaheadCompat:
		return "compat"
	case LookaheadGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("lookahead(%d)", int(l))
	}
}

// ParseLookahead converts a configuration name to a Lookahead.
func ParseLookahead(name string) (Lookahead, error) {
	switch name {
	case "compat", "":
		return LookaheadCompat, nil
	case "greedy":
		return LookaheadGreedy, nil
	default:
		return 0, fmt.Errorf("unknown table lookahead %q; valid values: compat, greedy", name)
	}
}

// Extent is the result of scanning for body rows.
type Extent struct {
	// Rows is the number of body rows directly after the delimiter.
	Rows int

	// Next is the index of the first line not consumed by the table.
	Next int
}

// Scan finds the body rows of the table whose delimiter row is lines[delim].
// It is a bounded loop; the caller advances its cursor to Extent.Next.
func Scan(lines []block.Line, delim int, mode Lookahead) Extent {
	n := len(lines)
	j := delim + 1

	for j < n && lines[j].Source.ContainsByte('|') {
		if mode == LookaheadCompat && j+1 >= n {
			break
		}
		j++
	}

	ext := Extent{Rows: j - (delim + 1), Next: j}
	if mode == LookaheadCompat && j < n {
		ext.Next = j + 1
	}
	return ext
}

// Builder accumulates a table from its header, delimiter and body rows.
type Builder struct {
	content span.Span
	bounds  []int
}

// NewBuilder starts a table whose header row is header. The header may span
// several merged physical lines.
func NewBuilder(header span.Span) *Builder {
	return &Builder{
		content: header,
		bounds:  []int{header.Start(), header.End()},
	}
}

// Append extends the table with the next row, delimiter row first.
func (b *Builder) Append(row span.Span) error {
	joined, err := span.Rejoin(b.content, row)
	if err != nil {
		return fmt.Errorf("append table row: %w", err)
	}
	b.content = joined
	b.bounds = append(b.bounds, row.End())
	return nil
}

// Table returns the accumulated table with row boundaries made relative to
// the start of its content.
func (b *Builder) Table() *Table {
	base := b.bounds[0]
	bounds := make([]int, len(b.bounds))
	for i, bound := range b.bounds {
		bounds[i] = bound - base
	}
	return &Table{Content: b.content, RowBoundaries: bounds}
}

// Build assembles the table whose header is header and whose delimiter row is
// lines[delim], reading body rows according to mode. It returns the table and
// the index of the first line it did not consume.
func Build(header span.Span, lines []block.Line, delim int, mode Lookahead) (*Table, int, error) {
	builder := NewBuilder(header)
	if err := builder.Append(lines[delim].Source); err != nil {
		return nil, 0, err
	}

	ext := Scan(lines, delim, mode)
	for _, line := range lines[delim+1 : delim+1+ext.Rows] {
		if err := builder.Append(line.Source); err != nil {
			return nil, 0, err
		}
	}

	return builder.Table(), ext.Next, nil
}
