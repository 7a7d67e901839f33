package notation

import (
	"errors"
	"fmt"
)

var ErrNoMatch = errors.New("content does not match notation")

// FormatError reports field content that does not conform to a notation.
type FormatError struct {
	Tag      string
	Notation string
	Content  string
	err      error
}

func (e *FormatError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("'%s' %s '%s'", e.Content, e.err, e.Notation)
	}
	return fmt.Sprintf("field %s: '%s' %s '%s'", e.Tag, e.Content, e.err, e.Notation)
}

func (e *FormatError) Unwrap() error { return e.err }

// Parse splits content into subfields, one per notation component.
func (n *Notation) Parse(content string) ([]string, error) {
	return n.parse("", content)
}

// Decode splits the content of the field with tag into subfields. Errors name
// the tag.
func Decode(n *Notation, tag, content string) ([]string, error) {
	return n.parse(tag, content)
}

func (n *Notation) parse(tag, content string) ([]string, error) {
	match := n.rgx.FindStringSubmatch(content)
	if match == nil {
		return nil, n.formatError(tag, content, ErrNoMatch)
	}
	return match[1:], nil
}

func (n *Notation) formatError(tag, content string, err error) *FormatError {
	return &FormatError{
		Tag:      tag,
		Notation: n.src,
		Content:  content,
		err:      err,
	}
}
