package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/campuspay/internal/constants"
	"github.com/shopspring/decimal"
)

var (
	ErrNotANumber  = errors.New("amount is not a number")
	ErrTooPrecise  = errors.New("amount has more than two decimal places")
	ErrEmptyAmount = errors.New("amount is required")
)

// FormatAmount renders an amount with two decimals and the currency symbol,
// e.g. "$70.00" or "-$3.50".
func FormatAmount(d decimal.Decimal, symbol string) string {
	if d.IsNegative() {
		return "-" + symbol + d.Neg().StringFixed(constants.AmountPlaces)
	}
	return symbol + d.StringFixed(constants.AmountPlaces)
}

// ParseAmount reads user input such as "30", "30.5", "$30.50".
// The sign is not checked here; the ledger rejects non-positive amounts.
func ParseAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, constants.CurrencySymbol)
	s = strings.TrimSpace(s)

	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: '%s'", ErrNotANumber, input)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s'", ErrNotANumber, input)
	}

	if !d.Equal(d.Round(constants.AmountPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: '%s'", ErrTooPrecise, input)
	}

	return d, nil
}
