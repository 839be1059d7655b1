// Package display форматирует суммы вознаграждения для ответов API и бота.
package display

import (
	"card-rewards/internal/domain"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	symbol  string
	printer *message.Printer
}

func NewFormatter(currencySymbol string) *Formatter {
	return &Formatter{
		symbol:  currencySymbol,
		printer: message.NewPrinter(language.English),
	}
}

// Money: символ валюты и два знака после запятой, с разделителями тысяч.
func (f *Formatter) Money(v decimal.Decimal) string {
	fixed := v.Round(2).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + f.symbol + f.group(whole) + "." + frac
}

// Units: баллы и мили: целое число с разделителями тысяч.
func (f *Formatter) Units(v decimal.Decimal, label string) string {
	return f.group(v.Round(0).String()) + " " + label
}

// Reward выбирает формат по типу вознаграждения.
func (f *Formatter) Reward(kind domain.RewardType, v decimal.Decimal) string {
	switch kind {
	case domain.RewardCashback:
		return f.Money(v)
	case domain.RewardPoints:
		return f.Units(v, "points")
	case domain.RewardMiles:
		return f.Units(v, "miles")
	}
	return v.String()
}

// group расставляет разделители в строке целого числа без знака или со знаком.
func (f *Formatter) group(digits string) string {
	d, err := decimal.NewFromString(digits)
	if err != nil || !d.IsInteger() {
		return digits
	}
	if d.Abs().GreaterThan(decimal.NewFromInt(1<<53)) {
		return digits
	}
	return f.printer.Sprintf("%d", d.IntPart())
}
