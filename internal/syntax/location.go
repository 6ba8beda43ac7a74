package syntax

import "fmt"

// Location is a half-open byte range [Start, End) into the source
// buffer. Offsets are counted in UTF-8 byte units. The zero value is
// the empty range at the start of the buffer.
type Location struct {
	Start int // byte offset of the first byte
	End   int // byte offset one past the last byte
}

// Len returns the number of bytes the location covers.
func (l Location) Len() int {
	return l.End - l.Start
}

// String returns the range in "[start,end)" form.
func (l Location) String() string {
	return fmt.Sprintf("[%d,%d)", l.Start, l.End)
}

// span returns the location covering both a and b.
// a must not start after b ends.
func span(a, b Location) Location {
	return Location{Start: a.Start, End: b.End}
}

// Position is a 1-based line:column position in the source text.
// Columns count bytes, not display cells.
type Position struct {
	Line   int
	Column int
}

// String returns the position in "line:col" form.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionFor translates a byte offset into a 1-based line:column
// position. Offsets past the end of src map to the position just after
// the last byte.
func PositionFor(src string, offset int) Position {
	line, col := 1, 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col}
}
