package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// personNameRegex matches display names: letters and whitespace, two
// characters minimum. Escaped markup from sanitization fails this check.
var personNameRegex = regexp.MustCompile(`^[A-Za-z\s]{2,}$`)

// Required fails when the value is empty after trimming.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "is required",
		},
	}
}

// MinLen fails when the value is shorter than min bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters", min),
		},
	}
}

// PersonName validates a display name: at least two characters, letters and
// spaces only.
func PersonName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return personNameRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be at least 2 letters and only contain letters and spaces",
		},
	}
}
