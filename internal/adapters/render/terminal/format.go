package terminal

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money renders a monetary value rounded to cents with thousands separators.
func Money(value decimal.Decimal) string {
	rounded := value.Round(2)
	if rounded.IsNegative() {
		return "-$" + printer.Sprintf("%.2f", rounded.Neg().InexactFloat64())
	}
	return "$" + printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// SignedAmount always carries an explicit sign, e.g. "+1,234.50".
func SignedAmount(value decimal.Decimal) string {
	return printer.Sprintf("%+.2f", value.Round(2).InexactFloat64())
}

// SignedPercent always carries an explicit sign, e.g. "-0.64%".
func SignedPercent(value decimal.Decimal) string {
	rounded := value.Round(2)
	if rounded.IsNegative() {
		return rounded.StringFixed(2) + "%"
	}
	return "+" + rounded.StringFixed(2) + "%"
}

func Fixed(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func Count(value int64) string {
	return humanize.Comma(value)
}

func Quantity(value decimal.Decimal) string {
	if value.Equal(value.Truncate(0)) {
		return humanize.Comma(value.IntPart())
	}
	return value.String()
}

// ChangeIndicator is ▲ for non-negative changes and ▼ otherwise.
func ChangeIndicator(change decimal.Decimal) string {
	if change.IsNegative() {
		return "▼"
	}
	return "▲"
}

func ExpiryDate(year int, month int, day int) string {
	return fmt.Sprintf("%02d/%02d/%d", month, day, year)
}

// EpochMillis renders the millisecond timestamps used by the orders API.
func EpochMillis(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04 MST")
}
