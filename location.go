package json5

import "fmt"

// A Position describes a location in source input.
type Position struct {
	Offset int // absolute rune offset, 0-based (-1 before any input is read)
	Line   int // line number, 1-based
	Column int // rune position in its line, reset at each line break
}

func (p Position) String() string {
	return fmt.Sprintf("index %d [character %d in line %d]", p.Offset, p.Column, p.Line)
}
