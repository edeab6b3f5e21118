package sanitizer

import "strings"

// NormalizeEmail prevents common email input errors but preserves the
// original value for invalid formats. Consecutive dots in the local part are
// consolidated since they cause delivery issues with some providers.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// ExtractEmailDomain returns the lowercased domain part, or "" if the input
// is not shaped like an email address.
func ExtractEmailDomain(email string) string {
	parts := strings.Split(strings.TrimSpace(email), "@")
	if len(parts) != 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// MaskEmail hides the local part while preserving the full domain so users
// can still recognize their own address in notices and logs.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	switch len(local) {
	case 0:
		return email
	case 1:
		return "*@" + domain
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}
