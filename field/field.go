// Package field decodes generic message fields into typed field values.
package field

import (
	"errors"
	"fmt"

	"github.com/fractalqb/mtfield"
	"github.com/fractalqb/mtfield/notation"
)

// ErrUnknownTag is returned by Decode for fields without a typed decoder.
var ErrUnknownTag = errors.New("unknown field tag")

// Typed is implemented by all typed fields.
type Typed interface {
	Tag() string
}

type TagMismatchError struct {
	Want, Have string
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("unexpected field tag '%s', want '%s'", e.Have, e.Want)
}

// DomainValueError reports subfields that match the field's notation but do
// not make a valid value.
type DomainValueError struct {
	Tag   string
	Value string
	err   error
}

func (e *DomainValueError) Error() string {
	return fmt.Sprintf("field %s: invalid value '%s': %s", e.Tag, e.Value, e.err)
}

func (e *DomainValueError) Unwrap() error { return e.err }

// subfields checks the tag of f and splits its content with n.
func subfields(f mtfield.Field, tag string, n *notation.Notation) ([]string, error) {
	if f.Tag != tag {
		return nil, &TagMismatchError{Want: tag, Have: f.Tag}
	}
	return notation.Decode(n, f.Tag, f.Content)
}

// Decode decodes f with the decoder registered for f's tag.
func Decode(f mtfield.Field) (Typed, error) {
	switch f.Tag {
	case DateTimeIndicatorTag:
		return DecodeDateTimeIndicator(f)
	case RelatedReferenceTag:
		return DecodeRelatedReference(f)
	}
	return nil, fmt.Errorf("%w '%s'", ErrUnknownTag, f.Tag)
}
