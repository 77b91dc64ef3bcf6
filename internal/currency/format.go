// Package currency renders whole-unit amounts for display.
package currency

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts as a currency symbol followed by the integer
// amount with the locale's digit grouping, e.g. ₹1,200,000.
type Formatter struct {
	printer  *message.Printer
	grouping grouping
	symbol   string
	code     string
}

// grouping is the locale's digit grouping, read back from the printer so
// amounts beyond int64 are grouped the same way as the rest.
type grouping struct {
	sep       string
	primary   int
	secondary int
}

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// NewFormatter builds a Formatter for an ISO 4217 code and a BCP 47 locale.
// Codes unknown to go-money are rendered as the code followed by a space.
func NewFormatter(code, locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	symbol := code + " "
	if cur := money.GetCurrency(code); cur != nil && cur.Grapheme != "" {
		symbol = cur.Grapheme
	}

	printer := message.NewPrinter(tag)
	return &Formatter{
		printer:  printer,
		grouping: detectGrouping(printer),
		symbol:   symbol,
		code:     code,
	}, nil
}

// Code returns the ISO 4217 code the formatter renders.
func (f *Formatter) Code() string {
	return f.code
}

// Format rounds half away from zero to whole units and renders the result.
func (f *Formatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return f.symbol + "0"
	}
	rounded := decimal.NewFromFloat(amount).Round(0)
	if rounded.GreaterThanOrEqual(minInt64) && rounded.LessThanOrEqual(maxInt64) {
		return f.FormatInt(rounded.IntPart())
	}
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + f.symbol + f.grouping.apply(rounded.Abs().BigInt().String())
}

// FormatInt renders a whole-unit amount.
func (f *Formatter) FormatInt(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%d", uint64(-(amount+1))+1)
	}
	return f.symbol + f.printer.Sprintf("%d", amount)
}

func detectGrouping(p *message.Printer) grouping {
	sample := p.Sprintf("%d", int64(1111111111111111111))
	var groups []int
	sep := ""
	run := 0
	for _, r := range sample {
		if unicode.IsDigit(r) {
			run++
			continue
		}
		if sep == "" {
			sep = string(r)
		}
		if run > 0 {
			groups = append(groups, run)
			run = 0
		}
	}
	groups = append(groups, run)

	if sep == "" || len(groups) < 2 {
		return grouping{}
	}
	g := grouping{sep: sep, primary: groups[len(groups)-1], secondary: groups[len(groups)-2]}
	if len(groups) == 2 {
		g.secondary = g.primary
	}
	return g
}

// apply groups a string of ASCII digits.
func (g grouping) apply(digits string) string {
	if g.primary <= 0 || len(digits) <= g.primary {
		return digits
	}
	head, tail := digits[:len(digits)-g.primary], digits[len(digits)-g.primary:]
	parts := []string{tail}
	for len(head) > g.secondary {
		parts = append(parts, head[len(head)-g.secondary:])
		head = head[:len(head)-g.secondary]
	}
	parts = append(parts, head)

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteString(g.sep)
		}
	}
	return b.String()
}
