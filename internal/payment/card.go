// Package payment checks card details entered at checkout. No payment is
// taken; a card that passes is enough to submit the cart.
package payment

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"storefront/internal/model"
)

// Card is the checkout form.
type Card struct {
	Number string `json:"cardNumber"`
	Expiry string `json:"expireDate"` // MM/YY
	CVV    string `json:"cvv"`
}

var (
	numberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3}$`)
)

// ValidLuhn reports whether the digit string passes the Luhn checksum.
func ValidLuhn(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidExpiry reports whether a MM/YY date is well formed and not before
// the month containing now.
func ValidExpiry(expiry string, now time.Time) bool {
	if !expiryPattern.MatchString(expiry) {
		return false
	}
	mm, yy, _ := strings.Cut(expiry, "/")
	month, _ := strconv.Atoi(mm)
	year, _ := strconv.Atoi(yy)

	curYear := now.Year() % 100
	curMonth := int(now.Month())

	if month < 1 || month > 12 || year < curYear {
		return false
	}
	return year != curYear || month >= curMonth
}

// Validate checks every field and returns the first failure.
func (c Card) Validate(now time.Time) error {
	switch {
	case !numberPattern.MatchString(c.Number):
		return model.NewDomainError(model.ErrCodeInvalidCard, "Please enter a valid 16-digit card number")
	case !ValidLuhn(c.Number):
		return model.ErrInvalidCard
	case !expiryPattern.MatchString(c.Expiry):
		return model.NewDomainError(model.ErrCodeInvalidCard, "Please enter a valid expire date (MM/YY)")
	case !ValidExpiry(c.Expiry, now):
		return model.ErrCardExpired
	case !cvvPattern.MatchString(c.CVV):
		return model.NewDomainError(model.ErrCodeInvalidCard, "Please enter a valid CVV (3 digits)")
	}
	return nil
}
