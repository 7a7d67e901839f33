package field

import (
	"github.com/fractalqb/mtfield"
	"github.com/fractalqb/mtfield/notation"
)

// RelatedReferenceTag is the tag of the Related Reference :21:
const RelatedReferenceTag = "21"

// RelatedReferenceNotation has one subfield, the value.
var RelatedReferenceNotation = notation.MustCompile("16x")

type RelatedReference struct {
	Value string `json:"value" yaml:"value"`
}

func (RelatedReference) Tag() string { return RelatedReferenceTag }

func DecodeRelatedReference(f mtfield.Field) (RelatedReference, error) {
	subs, err := subfields(f, RelatedReferenceTag, RelatedReferenceNotation)
	if err != nil {
		return RelatedReference{}, err
	}
	return RelatedReference{Value: subs[0]}, nil
}
