package mtfield

import (
	"errors"
	"fmt"
)

// LineOrderError is returned when a line's type is not permitted at its
// position in the message, e.g. a continuation line without a field before or
// any empty line.
type LineOrderError struct {
	Line int
	Type LineType
}

func (e *LineOrderError) Error() string {
	return fmt.Sprintf("line %d: unexpected line order of %s", e.Line, e.Type)
}

// StructureError signals a broken internal invariant of the assembler. It is
// not expected to occur for any input.
type StructureError struct {
	Line int
	Msg  string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("line %d: bug: %s", e.Line, e.Msg)
}

// ReadError locates an error in a named message source.
type ReadError struct {
	Name string
	Line int
	err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s:%d:%s", e.Name, e.Line, e.err)
}

func (e *ReadError) Unwrap() error { return e.err }

func readError(name string, line int, err error) error {
	var rerr *ReadError
	if errors.As(err, &rerr) {
		return err
	}
	return &ReadError{Name: name, Line: line, err: err}
}
