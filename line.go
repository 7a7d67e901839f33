package mtfield

import (
	"fmt"
	"strings"
)

// SeparatorTag is the tag of fields created from separator lines. It also is
// the verbatim text of a separator line.
const SeparatorTag = "--"

// Line types
type LineType uint8

const (
	// A zero-length line. It is never permitted in a message.
	LineEmpty LineType = iota
	// A line that starts a new field ':<tag>:<content>'
	LineField
	// A line that extends the content of the preceding field.
	LineContinuation
	// The line '--' that terminates a block of fields.
	LineSeparator
)

func (t LineType) String() string {
	switch t {
	case LineEmpty:
		return "EMPTY"
	case LineField:
		return "FIELD"
	case LineContinuation:
		return "FIELD_CONTINUATION"
	case LineSeparator:
		return "SEPARATOR"
	}
	return fmt.Sprintf("LineType(%d)", uint8(t))
}

// lineTypes is a set of line types
type lineTypes uint8

func typeSet(ts ...LineType) (s lineTypes) {
	for _, t := range ts {
		s |= 1 << t
	}
	return s
}

func (s lineTypes) has(t LineType) bool { return s&(1<<t) != 0 }

// Classify determines the type of a single message line. For LineField the
// field's tag and initial content are returned too.
func Classify(line string) (typ LineType, tag, content string) {
	switch {
	case line == "":
		return LineEmpty, "", ""
	case line == SeparatorTag:
		return LineSeparator, "", ""
	}
	if tag, content, ok := fieldHead(line); ok {
		return LineField, tag, content
	}
	return LineContinuation, "", ""
}

// fieldHead splits ':tag:content'
func fieldHead(line string) (tag, content string, ok bool) {
	if len(line) < 3 || line[0] != ':' {
		return "", "", false
	}
	i := strings.IndexByte(line[1:], ':')
	if i < 1 {
		return "", "", false
	}
	return line[1 : i+1], line[i+2:], true
}
