package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	crore = decimal.NewFromInt(10_000_000)
	lakh  = decimal.NewFromInt(100_000)
)

// FormatPrice renders a rupee amount the way Indian listings usually
// show it: "₹1.5 Cr" from one crore up, "₹15.0 L" from one lakh up,
// and the grouped full amount below that.
func FormatPrice(price float64) string {
	d := decimal.NewFromFloat(price)
	switch {
	case d.GreaterThanOrEqual(crore):
		return "₹" + d.Div(crore).StringFixed(1) + " Cr"
	case d.GreaterThanOrEqual(lakh):
		return "₹" + d.Div(lakh).StringFixed(1) + " L"
	default:
		return "₹" + groupThousands(d.Round(2).String())
	}
}

// groupThousands inserts commas into the integer part of a plain decimal
// string.  Amounts here stay below one lakh, where Indian and western
// grouping agree.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}
