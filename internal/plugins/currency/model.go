// Package currency provides the fixed currency table used across the app:
// code, symbol, display name, and a static exchange rate against the USD
// base. Conversion always goes through the base unit. Rates are fixed at
// build time -- there is no live exchange-rate feed.
package currency

// Code identifies a supported currency.
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GHS Code = "GHS"
	NGN Code = "NGN"
)

// Valid reports whether c is one of the supported currency codes.
func (c Code) Valid() bool {
	_, ok := table[c]
	return ok
}

// Info describes a supported currency. Rate is the amount of this currency
// per 1 USD.
type Info struct {
	Code   Code    `json:"code"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

// codes fixes the enumeration order of All.
var codes = []Code{USD, EUR, GHS, NGN}

var table = map[Code]Info{
	USD: {Code: USD, Symbol: "$", Name: "US Dollar", Rate: 1.0},
	EUR: {Code: EUR, Symbol: "€", Name: "Euro", Rate: 0.85},
	GHS: {Code: GHS, Symbol: "₵", Name: "Ghanaian Cedi", Rate: 12.1},
	NGN: {Code: NGN, Symbol: "₦", Name: "Nigerian Naira", Rate: 1605.0},
}
