package block

import (
	"bytes"
	"fmt"
)

// Diagnostic represents a single validation problem found in a block or
// definition file. Line is 1-based and Col is 1-based; both are zero for
// problems that apply to a whole file.
type Diagnostic struct {
	Message string
	File    string
	Line    int
	Col     int
}

// String returns a formatted representation of the diagnostic.
func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Col, d.Message)
	}
	if d.File != "" {
		return fmt.Sprintf("%s: %s", d.File, d.Message)
	}
	return d.Message
}

// DiagnosticList represents a list of diagnostics.
type DiagnosticList []Diagnostic

// Error returns the string representation of the list.
func (l DiagnosticList) Error() string {
	var buf bytes.Buffer
	switch len(l) {
	case 0:
		buf.WriteString("no errors")
	case 1:
		buf.WriteString(l[0].String())
	default:
		fmt.Fprintf(&buf, "%s (and %d more errors)", l[0].String(), len(l)-1)
	}
	return buf.String()
}
