// Package validation provides input validation shared by the auth flows.
package validation

import (
	"fmt"
	"unicode"

	apperrors "resourcehub/internal/errors"
)

const minPasswordLength = 8

// ValidatePassword checks the password complexity rule used for
// registration, change-password, and reset flows: minimum 8 characters with
// at least one uppercase letter, one lowercase letter, and one digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return policyError("password must be at least %d characters long", minPasswordLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return policyError("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return policyError("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return policyError("password must contain at least one digit")
	}
	return nil
}

func policyError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", apperrors.ErrPasswordPolicy, fmt.Sprintf(format, args...))
}
