package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"mixed case", "User@Gmail.com", "user@gmail.com"},
		{"surrounding whitespace", "  user@gmail.com  ", "user@gmail.com"},
		{"already normalized", "user@gmail.com", "user@gmail.com"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeEmail(tc.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	emails := []string{"User@Gmail.com", "  a.b+c@GMAIL.COM ", ""}
	for _, raw := range emails {
		once := NormalizeEmail(raw)
		assert.Equal(t, once, NormalizeEmail(once), "email normalization must be idempotent for %q", raw)
	}

	phones := []string{"+1 (415) 555-2671", "415-555-2671", ""}
	for _, raw := range phones {
		once := NormalizePhone(raw)
		assert.Equal(t, once, NormalizePhone(once), "phone normalization must be idempotent for %q", raw)
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{"User@Gmail.com", true},
		{"user@gmail.com", true},
		{"first.last+tag@gmail.com", true},
		{"user@yahoo.com", false},
		{"user@gmailx.com", false},
		{"@gmail.com", false},
		{"usergmail.com", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateEmail(tc.raw))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{"+1 (415) 555-2671", true},
		{"14155552671", true},
		{"415-555-2671", true},
		{"+442071838750", true},
		{"12", false},
		{"+0123456789", false},
		{"+12345678901234567", false},
		{"415x555", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidatePhone(tc.raw))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+14155552671", NormalizePhone("+1 (415) 555-2671"))
	assert.Equal(t, "4155552671", NormalizePhone("415-555-2671"))
}

func TestFormatPhoneForDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"full ten digits", "4155552671", "415 555 2671"},
		{"formatted input", "(415) 555-2671", "415 555 2671"},
		{"short partial", "415", "415"},
		{"medium partial", "41555", "415 55"},
		{"six digits", "415555", "415 555"},
		{"seven digits", "4155552", "415 555 2"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPhoneForDisplay(tc.raw))
		})
	}
}

func TestFlowHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user@gmail.com", Normalize(" User@Gmail.com", FlowEmail))
	assert.Equal(t, "+14155552671", Normalize("+1 (415) 555-2671", FlowPhone))
	assert.True(t, Validate("user@gmail.com", FlowEmail))
	assert.False(t, Validate("user@yahoo.com", FlowEmail))
	assert.True(t, Validate("+14155552671", FlowPhone))
	assert.False(t, Validate("12", FlowPhone))
}
