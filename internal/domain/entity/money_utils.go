package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// maxIntegerDigits keeps cent values well inside int64 so sums of balances cannot overflow
const maxIntegerDigits = 13

// BasisPointsScale is the divisor for fee rates expressed in basis points
const BasisPointsScale = 10000

// ValidateAndConvertAmount validates a decimal string and returns it in cents.
// "10" -> 1000, "10.5" -> 1050, "10.55" -> 1055. More than two decimals is rejected.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	whole := parts[0]
	fraction := ""
	if len(parts) == 2 {
		fraction = parts[1]
	}

	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (fraction != "" && !isDigits(fraction)) {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
	}
	if len(fraction) > MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if len(strings.TrimLeft(whole, "0")) > maxIntegerDigits {
		return 0, errs.ErrAmountOverflow
	}

	for len(fraction) < MaxDecimalPlaces {
		fraction += "0"
	}

	value, err := strconv.ParseInt(whole+fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ValidatePositiveAmount is ValidateAndConvertAmount that also rejects zero
func ValidatePositiveAmount(amount string) (int64, error) {
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, errs.ErrZeroAmount
	}
	return cents, nil
}

// ParseSignedAmount accepts an optional leading minus sign, used for admin adjustments
func ParseSignedAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if strings.HasPrefix(amount, "-") {
		cents, err := ValidatePositiveAmount(strings.TrimPrefix(amount, "-"))
		if err != nil {
			return 0, err
		}
		return -cents, nil
	}
	return ValidatePositiveAmount(strings.TrimPrefix(amount, "+"))
}

// AmountInCentsToString converts integer cents to a decimal string.
// 1015 -> "10.15", -5 -> "-0.05"
func AmountInCentsToString(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := strconv.FormatInt(amountInCents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - MaxDecimalPlaces
	result := amountStr[:decimalPos] + "." + amountStr[decimalPos:]
	if isNegative {
		return "-" + result
	}
	return result
}

// EnsureTwoDecimalPlaces normalizes a money string to exactly two decimals.
// Inputs with more than two decimals are rejected rather than rounded.
func EnsureTwoDecimalPlaces(amount string) (string, error) {
	if len(strings.TrimSpace(amount)) == 0 {
		return "0.00", nil
	}

	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return "", err
	}
	return AmountInCentsToString(cents), nil
}

// FeeForAmount returns amount * bps / 10000, truncated to whole cents.
// The product is split on the scale so amounts near the int64 limit do not overflow.
func FeeForAmount(amountInCents int64, basisPoints int64) int64 {
	if amountInCents <= 0 || basisPoints <= 0 {
		return 0
	}
	whole, rest := amountInCents/BasisPointsScale, amountInCents%BasisPointsScale
	return whole*basisPoints + rest*basisPoints/BasisPointsScale
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
