package field

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal converts a subfield of notation class 'd' into a decimal. The
// decimal comma is mandatory, the fraction may be empty as in "100,".
func ParseDecimal(s string) (decimal.Decimal, error) {
	if strings.Count(s, ",") != 1 {
		return decimal.Decimal{}, fmt.Errorf("decimal '%s' needs exactly one comma", s)
	}
	ip, fp, _ := strings.Cut(s, ",")
	if ip == "" {
		return decimal.Decimal{}, fmt.Errorf("decimal '%s' has no integer part", s)
	}
	if fp == "" {
		fp = "0"
	}
	return decimal.NewFromString(ip + "." + fp)
}
