package mtfield

import (
	"fmt"
	"strings"
)

// Field is a generic message field. Content has the lines of folded
// continuations separated by '\n'.
type Field struct {
	Tag     string `json:"tag" yaml:"tag"`
	Content string `json:"content" yaml:"content"`
}

// IsSeparator reports whether f was created from a separator line.
func (f Field) IsSeparator() bool { return f.Tag == SeparatorTag }

// String renders f in message syntax. Continuation lines are rendered as
// separate lines.
func (f Field) String() string {
	if f.IsSeparator() {
		return SeparatorTag
	}
	return ":" + f.Tag + ":" + f.Content
}

// LineEOF is the pseudo line type used as lookahead at the end of input. It
// is never returned by Classify.
const LineEOF LineType = 0xff

// Line is a classified message line.
type Line struct {
	No      int
	Text    string
	Type    LineType
	Tag     string
	Content string
}

// ClassifyLine classifies text, the line with number no.
func ClassifyLine(no int, text string) Line {
	typ, tag, content := Classify(text)
	return Line{No: no, Text: text, Type: typ, Tag: tag, Content: content}
}

// Assembler folds classified lines into fields and enforces the legal order of
// lines. The zero value is ready to start a new message. Assembler is a small
// value; each Step returns the successor state and leaves the receiver
// unchanged.
type Assembler struct {
	permit  lineTypes
	open    bool
	tag     string
	content string
}

var (
	afterField     = typeSet(LineField, LineContinuation, LineSeparator)
	afterSeparator = typeSet(LineField)
)

func (a Assembler) permitted() lineTypes {
	if a.permit == 0 {
		return typeSet(LineField)
	}
	return a.permit
}

// Open returns the tag of the currently open field, if any.
func (a Assembler) Open() (tag string, ok bool) { return a.tag, a.open }

// Step processes line l. The type of the line following l, or LineEOF, must
// be passed as next. When l completes a field, that field is returned.
func (a Assembler) Step(l Line, next LineType) (Assembler, *Field, error) {
	if !a.permitted().has(l.Type) {
		return a, nil, &LineOrderError{Line: l.No, Type: l.Type}
	}
	switch l.Type {
	case LineField:
		if l.Tag == "" {
			return a, nil, &StructureError{
				Line: l.No,
				Msg:  fmt.Sprintf("%s line does not match ':<tag>:<content>'", l.Type),
			}
		}
		a.open, a.tag, a.content = true, l.Tag, l.Content
		a.permit = afterField
	case LineContinuation:
		if !a.open {
			return a, nil, &StructureError{
				Line: l.No,
				Msg:  fmt.Sprintf("invalid order check for line type %s", l.Type),
			}
		}
		a.content += "\n" + l.Text
		a.permit = afterField
	case LineSeparator:
		a.open, a.tag, a.content = true, SeparatorTag, ""
		a.permit = afterSeparator
	default:
		return a, nil, &StructureError{
			Line: l.No,
			Msg:  fmt.Sprintf("missing handling for line type %s", l.Type),
		}
	}
	if next == LineContinuation {
		return a, nil, nil
	}
	f := &Field{Tag: a.tag, Content: a.content}
	a.open, a.tag, a.content = false, "", ""
	return a, f, nil
}

// Assemble returns the fields of a message given as lines. On error no fields
// are returned.
func Assemble(lines []string) ([]Field, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	var (
		asm    Assembler
		fields []Field
		f      *Field
		err    error
	)
	cur := ClassifyLine(1, lines[0])
	for i := 1; i <= len(lines); i++ {
		var next Line
		if i < len(lines) {
			next = ClassifyLine(i+1, lines[i])
		} else {
			next.Type = LineEOF
		}
		if asm, f, err = asm.Step(cur, next.Type); err != nil {
			return nil, err
		}
		if f != nil {
			fields = append(fields, *f)
		}
		cur = next
	}
	return fields, nil
}

// AssembleString splits text into lines and assembles its fields. Both "\n"
// and "\r\n" line breaks are accepted. A final line break does not start an
// empty line.
func AssembleString(text string) ([]Field, error) {
	if text == "" {
		return nil, nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return Assemble(lines)
}
