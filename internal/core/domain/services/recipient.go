package services

import (
	"strings"

	"shipconfirm/internal/pkg/errs"
)

// Environment is the operating mode of the service. Only production mode
// delivers customer mail to real customers.
type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
)

// ParseEnvironment maps a configured mode to an Environment. Anything other
// than "production" (case-insensitive) is treated as development.
func ParseEnvironment(s string) Environment {
	if strings.EqualFold(strings.TrimSpace(s), string(Production)) {
		return Production
	}
	return Development
}

// IsProduction reports whether customer mail goes to real customers.
func (e Environment) IsProduction() bool {
	return e == Production
}

// Recipients is the resolved delivery target of a customer email.
type Recipients struct {
	Primary string
	Bcc     []string
}

// ResolveRecipient decides where a customer email is delivered.
//
// In production the customer receives the email and bcc, when configured, is
// added as blind copy. In any other mode the email goes to testEmail only and
// customerEmail is never used; an empty testEmail is an error.
func ResolveRecipient(env Environment, customerEmail, testEmail, bcc string) (Recipients, error) {
	if !env.IsProduction() {
		testEmail = strings.TrimSpace(testEmail)
		if testEmail == "" {
			return Recipients{}, errs.NewValueIsRequiredError("test recipient")
		}
		return Recipients{Primary: testEmail}, nil
	}

	customerEmail = strings.TrimSpace(customerEmail)
	if customerEmail == "" {
		return Recipients{}, errs.NewValueIsRequiredError("customer email")
	}

	r := Recipients{Primary: customerEmail}
	if bcc = strings.TrimSpace(bcc); bcc != "" {
		r.Bcc = []string{bcc}
	}
	return r, nil
}
