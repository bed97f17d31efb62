// Package email models outgoing mail independently of the transport that delivers it.
package email

import (
	"errors"
	"slices"
	"strings"

	"shipconfirm/internal/pkg/errs"
)

// Message is a fully composed email. Bcc recipients are both listed in the Bcc
// header and added to the transport envelope.
type Message struct {
	To       []string
	Bcc      []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Validate checks the minimum a transport needs to deliver the message.
func (m Message) Validate() error {
	var problems []error
	if len(m.To) == 0 || slices.ContainsFunc(m.To, isBlank) {
		problems = append(problems, errs.NewValueIsRequiredError("recipient"))
	}
	if slices.ContainsFunc(m.Bcc, isBlank) {
		problems = append(problems, errs.NewValueIsInvalidError("bcc recipient"))
	}
	if isBlank(m.Subject) {
		problems = append(problems, errs.NewValueIsRequiredError("subject"))
	}
	if isBlank(m.HTMLBody) && isBlank(m.TextBody) {
		problems = append(problems, errs.NewValueIsRequiredError("body"))
	}
	return errors.Join(problems...)
}

// Envelope returns every transport recipient: To followed by Bcc.
func (m Message) Envelope() []string {
	return slices.Concat(m.To, m.Bcc)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
