package syntax

import "fmt"

// FilePosition is a line and column inside a source document.
//
// The zero value is the "unknown" position; it is also what document decoders
// populate through the line and column attributes.
type FilePosition struct {
	Line   int `json:"line"   xml:"line,attr"   yaml:"line"`
	Column int `json:"column" xml:"column,attr" yaml:"column"`
}

// NewFilePosition returns the position at the given line and column.
func NewFilePosition(line, column int) FilePosition {
	return FilePosition{
		Line:   line,
		Column: column,
	}
}

// IsZero reports whether the position is unknown.
func (p FilePosition) IsZero() bool {
	return p == FilePosition{}
}

// String formats the position as "line:column".
func (p FilePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
