package validator

import (
	"fmt"
	"regexp"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

// PasswordStrengthConfig controls the StrongPassword rule. A zero MaxLength
// means no upper bound is enforced.
type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
}

// DefaultPasswordStrength returns the storefront policy: at least 8
// characters with one lowercase letter, one uppercase letter, one digit and
// one special character. No maximum length.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSpecial:   true,
	}
}

// StrongPassword validates password complexity against the given config.
func StrongPassword(field, value string, config PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < config.MinLength {
				return false
			}
			if config.MaxLength > 0 && len(value) > config.MaxLength {
				return false
			}

			if config.RequireUppercase && !uppercaseRegex.MatchString(value) {
				return false
			}
			if config.RequireLowercase && !lowercaseRegex.MatchString(value) {
				return false
			}
			if config.RequireDigits && !digitRegex.MatchString(value) {
				return false
			}
			if config.RequireSpecial && !specialCharRegex.MatchString(value) {
				return false
			}

			return true
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf(
				"must be at least %d characters and include upper, lower, number, and special character",
				config.MinLength,
			),
		},
	}
}

// PasswordUppercase requires at least one uppercase letter.
func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool { return uppercaseRegex.MatchString(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one uppercase letter",
		},
	}
}

// PasswordLowercase requires at least one lowercase letter.
func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool { return lowercaseRegex.MatchString(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one lowercase letter",
		},
	}
}

// PasswordDigit requires at least one digit.
func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool { return digitRegex.MatchString(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one digit",
		},
	}
}

// PasswordSpecialChar requires at least one special character.
func PasswordSpecialChar(field, value string) Rule {
	return Rule{
		Check: func() bool { return specialCharRegex.MatchString(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one special character",
		},
	}
}
