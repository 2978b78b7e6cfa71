// Package money converts between decimal amounts and the integer cents
// stored in the database.
package money

import "github.com/shopspring/decimal"

const places = 2

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -places)
}

// ToCents rounds half away from zero to the nearest cent.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Round(places).Shift(places).IntPart()
}

func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(places)
}

// Floor drops fractions of a cent.
func Floor(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundFloor(places)
}
