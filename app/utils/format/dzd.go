package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// fr-DZ style: space-grouped digits, currency code after the amount.
var dzd = accounting.Accounting{
	Symbol:    "DZD",
	Precision: 0,
	Thousand:  " ",
	Format:    "%v %s",
}

// DZD renders an amount as "12 500 DZD".
func DZD(amount decimal.Decimal) string {
	return dzd.FormatMoney(amount)
}
