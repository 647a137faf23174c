// Package locale formats numbers the way the Italian UI shows them
// (dot as thousands separator, comma as decimal separator).
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Italian)

// Int formats n with Italian digit grouping, e.g. 15000 -> "15.000".
func Int(n int) string {
	return printer.Sprintf("%d", n)
}

// Money formats an amount with two decimals, e.g. 1234.5 -> "1.234,50".
func Money(f float64) string {
	return printer.Sprintf("%.2f", f)
}
