// internal/domain/checkout/rules_test.go
package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		rules  Rules
		values map[string]string
		want   FieldErrors
	}{
		{
			name:   "valid sign-in form passes",
			rules:  SignInRules,
			values: map[string]string{"email": "user@example.com", "password": "secret1"},
			want:   nil,
		},
		{
			name:  "missing fields report required",
			rules: SignInRules,
			values: map[string]string{
				"email":    "",
				"password": "",
			},
			want: FieldErrors{
				"email":    "Email is required",
				"password": "Password is required",
			},
		},
		{
			name:   "whitespace counts as empty",
			rules:  SignInRules,
			values: map[string]string{"email": "   ", "password": "secret1"},
			want:   FieldErrors{"email": "Email is required"},
		},
		{
			name:   "malformed email",
			rules:  SignInRules,
			values: map[string]string{"email": "not-an-email", "password": "secret1"},
			want:   FieldErrors{"email": "Invalid email address"},
		},
		{
			name:   "short password",
			rules:  SignInRules,
			values: map[string]string{"email": "user@example.com", "password": "abc"},
			want:   FieldErrors{"password": "Password must be at least 6 characters"},
		},
		{
			name:  "postal code pattern message",
			rules: ShippingRules,
			values: map[string]string{
				"fullName":   "Jo Buyer",
				"address":    "1 Main St",
				"city":       "Town",
				"postalCode": "AB123",
				"country":    "US",
			},
			want: FieldErrors{"postalCode": "Postal Code must be numeric"},
		},
		{
			name:  "valid shipping form passes",
			rules: ShippingRules,
			values: map[string]string{
				"fullName":   "Jo Buyer",
				"address":    "1 Main St",
				"city":       "Town",
				"postalCode": "12345",
				"country":    "US",
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rules.Validate(tt.values))
		})
	}
}

func TestFieldErrorsMessageOrder(t *testing.T) {
	errs := FieldErrors{
		"password": "Password is required",
		"email":    "Email is required",
	}

	// Messages are joined in field-name order, so output is deterministic
	assert.Equal(t, "Email is required; Password is required", errs.Error())
}
