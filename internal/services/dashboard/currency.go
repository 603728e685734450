package dashboard

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount in cents as a US-locale dollar string,
// e.g. 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	return usd.Sprintf("$%v", number.Decimal(float64(cents)/100,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}
