package quote

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrAmountOutOfRange is returned when a money amount does not fit in int64 cents.
var ErrAmountOutOfRange = errors.New("amount is too large to price")

// maxDollars is the first dollar amount whose cent value no longer fits in an int64.
const maxDollars = float64(math.MaxInt64 / 100)

// ToCents converts a dollar amount to integer cents, rounding half away from zero.
func ToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) >= maxDollars {
		return 0, fmt.Errorf("%w: %v", ErrAmountOutOfRange, amount)
	}
	return int64(math.Round(amount * 100)), nil
}

// MulCents multiplies a cent amount by a non-negative quantity, failing
// instead of wrapping around.
func MulCents(cents int64, quantity int) (int64, error) {
	if quantity < 0 {
		return 0, fmt.Errorf("%w: negative quantity %d", ErrAmountOutOfRange, quantity)
	}
	if quantity == 0 || cents == 0 {
		return 0, nil
	}
	q := int64(quantity)
	if cents > math.MaxInt64/q || cents < math.MinInt64/q {
		return 0, fmt.Errorf("%w: %d x %d cents", ErrAmountOutOfRange, quantity, cents)
	}
	return cents * q, nil
}

// FromCents converts integer cents back to a dollar amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// FormatCents renders cents as a US dollar string such as "$1,234.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	frac := cents % 100
	pad := ""
	if frac < 10 {
		pad = "0"
	}
	return sign + "$" + b.String() + "." + pad + strconv.FormatInt(frac, 10)
}
