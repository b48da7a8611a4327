package conversion

import (
	"fmt"
	"math"
	"strconv"

	"fxswap/internal/domain"
	"fxswap/internal/price"
)

// Conversion is a successful conversion: Rate units of "to" per one unit of "from", and the converted Amount.
type Conversion struct {
	Rate   float64
	Amount float64
}

// Compute converts amountText of from into to using the latest prices of index.
//
// Errors:
//   - domain.ErrPricesNotLoaded when the index is missing or empty
//   - domain.ErrRateUnavailable when from or to has no price
//   - domain.ErrInvalidAmount when the amount is not a finite number greater than zero,
//     or when a stored price cannot produce a finite rate
func Compute(index *price.Index, from, to, amountText string) (Conversion, error) {
	if index.Len() == 0 {
		return Conversion{}, domain.ErrPricesNotLoaded
	}
	fromPrice, ok := index.Lookup(from)
	if !ok {
		return Conversion{}, fmt.Errorf("%w: no price for %q", domain.ErrRateUnavailable, from)
	}
	toPrice, ok := index.Lookup(to)
	if !ok {
		return Conversion{}, fmt.Errorf("%w: no price for %q", domain.ErrRateUnavailable, to)
	}

	amount, err := ParseAmount(amountText)
	if err != nil {
		return Conversion{}, err
	}

	rate, err := rateBetween(fromPrice, toPrice)
	if err != nil {
		return Conversion{}, err
	}

	out := amount * rate
	if !finite(out) {
		return Conversion{}, fmt.Errorf("%w: %s %s does not convert to a finite amount", domain.ErrInvalidAmount, amountText, from)
	}
	return Conversion{Rate: rate, Amount: out}, nil
}

// ParseAmount parses a user amount; it must match the amount grammar and be greater than zero.
func ParseAmount(text string) (float64, error) {
	if !WellFormedAmount(text) {
		return 0, fmt.Errorf("%w: %q is not a decimal amount", domain.ErrInvalidAmount, text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, text)
	}
	if !finite(v) || v <= 0 {
		return 0, fmt.Errorf("%w: %q must be greater than zero", domain.ErrInvalidAmount, text)
	}
	return v, nil
}

// rateBetween returns how many units of to one unit of from is worth.
// The same currency is exactly 1 whatever its price.
func rateBetween(from, to domain.LatestPrice) (float64, error) {
	if from.Currency == to.Currency {
		return 1, nil
	}
	for _, p := range []domain.LatestPrice{from, to} {
		if !finite(p.Price) || p.Price <= 0 {
			return 0, fmt.Errorf("%w: price %v of %q is not positive", domain.ErrInvalidAmount, p.Price, p.Currency)
		}
	}
	rate := from.Price / to.Price
	if !finite(rate) || rate <= 0 {
		return 0, fmt.Errorf("%w: rate %s/%s is out of range", domain.ErrInvalidAmount, from.Currency, to.Currency)
	}
	return rate, nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
