// internal/domain/checkout/rules.go
package checkout

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Rule describes the declarative constraints for one form field. Every
// checkout form is validated through the same rule model; there are no
// per-form validation code paths.
type Rule struct {
	Label     string
	Required  bool
	MinLength int
	Pattern   *regexp.Regexp
	// PatternMessage overrides the generic message when Pattern fails
	PatternMessage string
	// Format names a built-in format check; currently only "email"
	Format string
}

// Rules maps field names to their constraints
type Rules map[string]Rule

// FieldErrors maps field names to validation messages. Field errors
// block step submission but never transition checkout state.
type FieldErrors map[string]string

// Error implements the error interface with a stable field order
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, len(fields))
	for i, field := range fields {
		messages[i] = e[field]
	}
	return strings.Join(messages, "; ")
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate applies every rule to the given field values and collects
// all violations. A nil result means the form may be submitted.
func (r Rules) Validate(values map[string]string) FieldErrors {
	errs := FieldErrors{}
	for field, rule := range r {
		value := strings.TrimSpace(values[field])

		if value == "" {
			if rule.Required {
				errs[field] = fmt.Sprintf("%s is required", rule.Label)
			}
			continue
		}

		if rule.MinLength > 0 && len(value) < rule.MinLength {
			errs[field] = fmt.Sprintf("%s must be at least %d characters", rule.Label, rule.MinLength)
			continue
		}

		if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
			if rule.PatternMessage != "" {
				errs[field] = rule.PatternMessage
			} else {
				errs[field] = fmt.Sprintf("%s is invalid", rule.Label)
			}
			continue
		}

		if rule.Format == "email" && !emailPattern.MatchString(value) {
			errs[field] = "Invalid email address"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Form rules for each checkout step

// SignInRules validates the sign-in form
var SignInRules = Rules{
	"email":    {Label: "Email", Required: true, Format: "email"},
	"password": {Label: "Password", Required: true, MinLength: 6},
}

// SignUpRules validates the sign-up form
var SignUpRules = Rules{
	"name":            {Label: "Name", Required: true},
	"email":           {Label: "Email", Required: true, Format: "email"},
	"password":        {Label: "Password", Required: true, MinLength: 6},
	"confirmPassword": {Label: "Confirm Password", Required: true},
}

// ShippingRules validates the shipping address form
var ShippingRules = Rules{
	"fullName":   {Label: "Full Name", Required: true, MinLength: 3},
	"address":    {Label: "Address", Required: true, MinLength: 5},
	"city":       {Label: "City", Required: true, MinLength: 2},
	"postalCode": {Label: "Postal Code", Required: true, Pattern: regexp.MustCompile(`^\d+$`), PatternMessage: "Postal Code must be numeric"},
	"country":    {Label: "Country", Required: true, MinLength: 2},
}
