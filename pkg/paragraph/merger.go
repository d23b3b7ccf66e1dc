package paragraph

import (
	"fmt"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/span"
	"github.com/yaklabco/mdpara/pkg/table"
)

// pending is the paragraph being accumulated.
type pending struct {
	kind    block.Kind
	source  span.Span
	marker  int
	level   int
	ordinal int
	table   *table.Table
}

// merger is the per-parse state machine. It is never shared.
type merger struct {
	opts  Options
	lines []block.Line

	// effective records the kind each line was processed as; a rejected
	// table delimiter is processed as text.
	effective []block.Kind

	acc *pending
	out []Paragraph
}

func (m *merger) run() ([]Paragraph, error) {
	for i := 0; i < len(m.lines); {
		next, err := m.step(i)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		i = next
	}

	if m.acc != nil {
		if err := m.flush(); err != nil {
			return nil, fmt.Errorf("end of input: %w", err)
		}
	}

	return m.out, nil
}

// step processes lines[i] and returns the index of the next line to process.
func (m *merger) step(i int) (int, error) {
	line := m.lines[i]
	m.effective[i] = line.Kind

	if m.acc == nil {
		switch line.Kind {
		case block.Empty:
		case block.TableDelimiter:
			// Without a header row there is nothing to attach a table to.
			m.effective[i] = block.Text
			m.start(line, block.Text)
		case block.Text, block.Code, block.Bullet, block.Numbered,
			block.Quote, block.Header, block.HorizontalRule:
			m.start(line, line.Kind)
		case block.Table:
			return 0, fmt.Errorf("%w: table kind on a physical line", ErrInvalidState)
		}
		return i + 1, nil
	}

	switch line.Kind {
	case block.Bullet, block.Numbered, block.Header, block.Code, block.HorizontalRule, block.Quote:
		if err := m.flush(); err != nil {
			return 0, err
		}
		m.start(line, line.Kind)
		return i + 1, nil

	case block.Empty:
		return i + 1, m.flush()

	case block.TableDelimiter:
		if i > 0 && table.IsValidDelimiter(line.Source.String()) {
			return m.buildTable(i)
		}
		m.effective[i] = block.Text
		return i + 1, m.continueText(i)

	case block.Text:
		return i + 1, m.continueText(i)

	case block.Table:
		return 0, fmt.Errorf("%w: table kind on a physical line", ErrInvalidState)
	}

	return 0, fmt.Errorf("%w: unknown line kind %v", ErrInvalidState, line.Kind)
}

// continueText handles a text line while a paragraph is accumulating. The
// decision depends on the kind of the previous physical line, not on the
// accumulated paragraph's kind.
func (m *merger) continueText(i int) error {
	if i < 1 {
		return fmt.Errorf("%w: text continuation at first line", ErrInvalidState)
	}

	line := m.lines[i]
	prev := m.lines[i-1]

	switch kind := m.effective[i-1]; kind {
	case block.Quote, block.Bullet, block.Numbered, block.Text:
		if prev.TrailingSpaces >= m.opts.hardBreakSpaces() {
			if err := m.flush(); err != nil {
				return err
			}
			m.start(line, block.Text)
			return nil
		}
		return m.rejoin(line)

	case block.Code, block.Header, block.HorizontalRule:
		if err := m.flush(); err != nil {
			return err
		}
		m.start(line, block.Text)
		return nil

	case block.Empty, block.TableDelimiter, block.Table:
		return fmt.Errorf("%w: text continuation after %v line", ErrInvalidState, kind)
	}

	return fmt.Errorf("%w: unknown previous kind", ErrInvalidState)
}

// buildTable replaces the accumulating paragraph, taken as the header row,
// with a table and flushes it.
func (m *merger) buildTable(delim int) (int, error) {
	header := m.acc.source.Slice(m.acc.marker)

	tbl, next, err := table.Build(header, m.lines, delim, m.opts.Lookahead)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	m.acc = &pending{
		kind:    block.Table,
		source:  tbl.Content,
		level:   m.acc.level,
		ordinal: m.acc.ordinal,
		table:   tbl,
	}
	return next, m.flush()
}

func (m *merger) start(line block.Line, kind block.Kind) {
	m.acc = &pending{
		kind:    kind,
		source:  line.Source,
		marker:  line.MarkerLength,
		level:   line.Level,
		ordinal: line.Ordinal,
	}
}

func (m *merger) rejoin(line block.Line) error {
	joined, err := span.Rejoin(m.acc.source, line.Source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	m.acc.source = joined
	return nil
}

// flush emits the accumulated paragraph, if it is not blank, and clears the
// accumulator.
func (m *merger) flush() error {
	acc := m.acc
	m.acc = nil
	if acc == nil {
		return nil
	}

	switch acc.kind {
	case block.Empty, block.TableDelimiter:
		return fmt.Errorf("%w: %v paragraph at emission", ErrInvalidState, acc.kind)
	case block.Text, block.Code, block.Bullet, block.Numbered, block.Quote,
		block.Header, block.HorizontalRule, block.Table:
	}

	content := acc.source.Slice(acc.marker)
	if content.IsBlank() {
		return nil
	}

	predecessor := NoPredecessor
	if len(m.out) > 0 {
		predecessor = len(m.out) - 1
	}

	m.out = append(m.out, Paragraph{
		Kind:        acc.kind,
		Content:     content,
		Level:       acc.level,
		Ordinal:     acc.ordinal,
		Predecessor: predecessor,
		Table:       acc.table,
	})
	return nil
}
