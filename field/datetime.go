package field

import (
	"strings"
	"time"

	"github.com/fractalqb/mtfield"
	"github.com/fractalqb/mtfield/notation"
)

// DateTimeIndicatorTag is the tag of the Date/Time Indicator :13D:
const DateTimeIndicatorTag = "13D"

// DateTimeIndicatorNotation is yyMMdd | HHmm | +/- | zone offset, e.g.
// 1605191047+0100
var DateTimeIndicatorNotation = notation.MustCompile("6!n4!n1x4!n")

const dateTimeLayout = "0601021504-0700"

type DateTimeIndicator struct {
	DateTime time.Time `json:"dateTime" yaml:"dateTime"`
}

func (DateTimeIndicator) Tag() string { return DateTimeIndicatorTag }

func DecodeDateTimeIndicator(f mtfield.Field) (DateTimeIndicator, error) {
	subs, err := subfields(f, DateTimeIndicatorTag, DateTimeIndicatorNotation)
	if err != nil {
		return DateTimeIndicator{}, err
	}
	lit := strings.Join(subs, "")
	t, err := time.Parse(dateTimeLayout, lit)
	if err != nil {
		return DateTimeIndicator{}, &DomainValueError{
			Tag:   f.Tag,
			Value: lit,
			err:   err,
		}
	}
	if t.Year() < 2000 {
		// yy is 2000-2099, not 1969-2068 as with Go's "06"
		t = t.AddDate(100, 0, 0)
	}
	return DateTimeIndicator{DateTime: t}, nil
}
