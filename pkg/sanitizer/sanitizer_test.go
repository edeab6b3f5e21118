package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  User@Example.COM  ", "user@example.com"},
		{"consolidates dots in local part", "first..last@example.com", "first.last@example.com"},
		{"strips leading and trailing dots", ".user.@example.com", "user@example.com"},
		{"preserves plus addressing", "User+Tag@Example.com", "user+tag@example.com"},
		{"leaves malformed input as lowered string", "not-an-email", "not-an-email"},
		{"leaves double at untouched", "a@b@c", "a@b@c"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestExtractEmailDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", sanitizer.ExtractEmailDomain("user@Example.Com"))
	assert.Equal(t, "", sanitizer.ExtractEmailDomain("no-at-sign"))
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "j***@example.com", sanitizer.MaskEmail("john@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("j@example.com"))
	assert.Equal(t, "broken", sanitizer.MaskEmail("broken"))
}

func TestRemoveExtraWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "John Doe", sanitizer.RemoveExtraWhitespace("  John \t  Doe \n"))
	assert.Equal(t, "", sanitizer.RemoveExtraWhitespace("   "))
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", sanitizer.StripHTML("<b>hello</b>"))
	assert.Equal(t, "alert(1)", sanitizer.StripHTML("<script>alert(1)</script>"))
}

func TestPersonName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "John Doe", sanitizer.PersonName("  John   Doe "))
	assert.Equal(t, "John Doe", sanitizer.PersonName("<i>John</i> Doe"))
	// Injected characters survive escaped and will fail name validation downstream.
	assert.Equal(t, "John &amp; Doe", sanitizer.PersonName("John & Doe"))
}
