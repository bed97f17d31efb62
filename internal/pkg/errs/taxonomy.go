package errs

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnreachable = errors.New("source unreachable")
	ErrMalformedResponse = errors.New("malformed response")
	ErrMissingReference  = errors.New("missing reference")
	ErrEntityFetch       = errors.New("entity fetch failed")
	ErrTemplateRender    = errors.New("template render failed")
	ErrMailSend          = errors.New("mail send failed")
	ErrStateTransition   = errors.New("state transition failed")
)

// SourceUnreachableError is a transport-level failure talking to a remote
// resource: connection errors, timeouts and non-2xx answers.
type SourceUnreachableError struct {
	Resource string
	Cause    error
}

func NewSourceUnreachableError(resource string) *SourceUnreachableError {
	return &SourceUnreachableError{Resource: resource}
}

func NewSourceUnreachableErrorWithCause(resource string, cause error) *SourceUnreachableError {
	return &SourceUnreachableError{Resource: resource, Cause: cause}
}

func (e *SourceUnreachableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrSourceUnreachable, sanitize(e.Resource)), e.Cause)
}

func (e *SourceUnreachableError) Unwrap() []error {
	return unwrapPair(ErrSourceUnreachable, e.Cause)
}

// MalformedResponseError is a remote answer that arrived but could not be parsed.
type MalformedResponseError struct {
	Resource string
	Cause    error
}

func NewMalformedResponseError(resource string) *MalformedResponseError {
	return &MalformedResponseError{Resource: resource}
}

func NewMalformedResponseErrorWithCause(resource string, cause error) *MalformedResponseError {
	return &MalformedResponseError{Resource: resource, Cause: cause}
}

func (e *MalformedResponseError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrMalformedResponse, sanitize(e.Resource)), e.Cause)
}

func (e *MalformedResponseError) Unwrap() []error {
	return unwrapPair(ErrMalformedResponse, e.Cause)
}

// MissingReferenceError is an order that lacks one of the links needed to
// resolve its customer or delivery address.
type MissingReferenceError struct {
	OrderID string
	Field   string
}

func NewMissingReferenceError(orderID, field string) *MissingReferenceError {
	return &MissingReferenceError{OrderID: orderID, Field: field}
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s: order %s has no %s link", ErrMissingReference, sanitize(e.OrderID), sanitize(e.Field))
}

func (e *MissingReferenceError) Unwrap() error {
	return ErrMissingReference
}

// EntityFetchError is a related entity (customer, address) that could not be
// fetched or projected.
type EntityFetchError struct {
	Kind  string
	Link  string
	Cause error
}

func NewEntityFetchError(kind, link string) *EntityFetchError {
	return &EntityFetchError{Kind: kind, Link: link}
}

func NewEntityFetchErrorWithCause(kind, link string, cause error) *EntityFetchError {
	return &EntityFetchError{Kind: kind, Link: link, Cause: cause}
}

func (e *EntityFetchError) Error() string {
	return withCause(fmt.Sprintf("%s: %s at %s", ErrEntityFetch, sanitize(e.Kind), sanitize(e.Link)), e.Cause)
}

func (e *EntityFetchError) Unwrap() []error {
	return unwrapPair(ErrEntityFetch, e.Cause)
}

// TemplateRenderError is a render call that failed or returned no HTML.
type TemplateRenderError struct {
	OrderID string
	Cause   error
}

func NewTemplateRenderError(orderID string) *TemplateRenderError {
	return &TemplateRenderError{OrderID: orderID}
}

func NewTemplateRenderErrorWithCause(orderID string, cause error) *TemplateRenderError {
	return &TemplateRenderError{OrderID: orderID, Cause: cause}
}

func (e *TemplateRenderError) Error() string {
	return withCause(fmt.Sprintf("%s: order %s", ErrTemplateRender, sanitize(e.OrderID)), e.Cause)
}

func (e *TemplateRenderError) Unwrap() []error {
	return unwrapPair(ErrTemplateRender, e.Cause)
}

// MailSendError is a mail that the transport did not accept.
type MailSendError struct {
	Recipient string
	Cause     error
}

func NewMailSendError(recipient string) *MailSendError {
	return &MailSendError{Recipient: recipient}
}

func NewMailSendErrorWithCause(recipient string, cause error) *MailSendError {
	return &MailSendError{Recipient: recipient, Cause: cause}
}

func (e *MailSendError) Error() string {
	return withCause(fmt.Sprintf("%s: to %s", ErrMailSend, sanitize(e.Recipient)), e.Cause)
}

func (e *MailSendError) Unwrap() []error {
	return unwrapPair(ErrMailSend, e.Cause)
}

// StateTransitionError is a rejected or undelivered order state change.
type StateTransitionError struct {
	OrderID string
	State   int
	Cause   error
}

func NewStateTransitionError(orderID string, state int) *StateTransitionError {
	return &StateTransitionError{OrderID: orderID, State: state}
}

func NewStateTransitionErrorWithCause(orderID string, state int, cause error) *StateTransitionError {
	return &StateTransitionError{OrderID: orderID, State: state, Cause: cause}
}

func (e *StateTransitionError) Error() string {
	return withCause(
		fmt.Sprintf("%s: order %s to state %d", ErrStateTransition, sanitize(e.OrderID), e.State),
		e.Cause,
	)
}

func (e *StateTransitionError) Unwrap() []error {
	return unwrapPair(ErrStateTransition, e.Cause)
}

func unwrapPair(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
