package span

// Lines splits the buffer into physical line spans.
// It handles both LF (\n) and CRLF (\r\n) line endings; the line terminator is
// never part of a line span. Input ending in a newline yields a trailing empty
// line, and empty input yields a single empty line.
func Lines(buf *Buffer) []Span {
	text := buf.String()

	var lines []Span
	lineStart := 0

	for idx := range len(text) {
		if text[idx] != '\n' {
			continue
		}

		// Check for CRLF.
		lineEnd := idx
		if idx > lineStart && text[idx-1] == '\r' {
			lineEnd = idx - 1
		}

		lines = append(lines, Span{buf: buf, start: lineStart, length: lineEnd - lineStart})
		lineStart = idx + 1
	}

	// Last line (may not have a trailing newline).
	return append(lines, Span{buf: buf, start: lineStart, length: len(text) - lineStart})
}
