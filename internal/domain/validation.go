package domain

import (
	"slices"
	"time"
)

const (
	cardNumberMinLength = 14
	cardNumberMaxLength = 19
)

// SupportedCurrencies lists the ISO 4217 codes the gateway accepts.
var SupportedCurrencies = []string{"GBP", "USD", "EUR"}

// ValidCardNumber reports whether s is 14 to 19 ASCII digits.
func ValidCardNumber(s string) bool {
	return len(s) >= cardNumberMinLength && len(s) <= cardNumberMaxLength && allDigits(s)
}

// ValidExpiry reports whether a card expiring in month/year is still usable at now.
// A card stays valid until the last instant of its expiry month.
func ValidExpiry(month, year int, now time.Time) bool {
	now = now.UTC()
	if month < 1 || month > 12 || year < now.Year() {
		return false
	}

	firstOfNextMonth := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return now.Before(firstOfNextMonth)
}

// ValidCVV reports whether s is 3 or 4 ASCII digits.
func ValidCVV(s string) bool {
	return (len(s) == 3 || len(s) == 4) && allDigits(s)
}

// ValidCurrency reports whether code is supported. Matching is case-sensitive.
func ValidCurrency(code string) bool {
	return slices.Contains(SupportedCurrencies, code)
}

// Valid reports whether every field of r passes validation at now.
func (r PaymentRequest) Valid(now time.Time) bool {
	return ValidCardNumber(r.CardNumber) &&
		ValidExpiry(r.ExpiryMonth, r.ExpiryYear, now) &&
		ValidCurrency(r.Currency) &&
		ValidCVV(r.CVV)
}

// CardNumberLastFour returns the last four digits of the card number, or ""
// when the card number itself is malformed. It does not depend on the other fields.
func (r PaymentRequest) CardNumberLastFour() string {
	if !ValidCardNumber(r.CardNumber) {
		return ""
	}
	return r.CardNumber[len(r.CardNumber)-4:]
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
