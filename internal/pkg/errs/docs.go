// Package errs provides standardized error types for the shipment confirmation service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types:
//   - Validation errors raised by domain constructors: ValueIsRequiredError,
//     ValueIsInvalidError and ObjectNotFoundError
//   - The failure taxonomy of a shipment run: SourceUnreachableError,
//     MalformedResponseError, MissingReferenceError, EntityFetchError,
//     TemplateRenderError, MailSendError and StateTransitionError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrSourceUnreachable)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Taxonomy errors that carry a cause unwrap to both the sentinel and the cause, so
// errors.Is(err, ErrEntityFetch) and errors.Is(err, ErrSourceUnreachable) both hold
// for an entity fetch that failed on transport.
package errs
