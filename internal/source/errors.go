// Package source provides the machine list sources of the inventory tool.
package source

import "fmt"

// MissingInputError is returned when the machine list file does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

// ParseError reports a machine list line that is not exactly name<TAB>address.
type ParseError struct {
	Path   string
	Line   int // 1-based line number
	Text   string
	Fields int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: expected 2 tab-separated fields (name, address), got %d: %q",
		e.Path, e.Line, e.Fields, e.Text)
}
