package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates an email address for typical web use. The address must
// parse per RFC 5322 and additionally carry a dotted domain, which the RFC
// alone does not require.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			local := parts[0]
			domain := parts[1]

			if local == "" {
				return false
			}

			if !strings.Contains(domain, ".") ||
				strings.HasPrefix(domain, ".") ||
				strings.HasSuffix(domain, ".") {
				return false
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}
