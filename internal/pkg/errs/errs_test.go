package errs_test

import (
	"errors"
	"testing"

	"shipconfirm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("resource deleted")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: resource deleted)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("email", errors.New("invalid format"))

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("hello\nworld")
		assert.Equal(t, "value is invalid: hello world", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredErrorWithCause("email", errors.New("empty"))

	assert.Equal(t, "email", err.ParamName)
	assert.Equal(t, "value is required: email (cause: empty)", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestMissingReferenceError(t *testing.T) {
	err := errs.NewMissingReferenceError("10", "id_address_delivery")

	assert.Equal(t, "missing reference: order 10 has no id_address_delivery link", err.Error())
	require.ErrorIs(t, err, errs.ErrMissingReference)
}

func TestEntityFetchError(t *testing.T) {
	t.Run("wraps transport cause", func(t *testing.T) {
		cause := errs.NewSourceUnreachableErrorWithCause("/customers/5", errors.New("timeout"))
		err := errs.NewEntityFetchErrorWithCause("customer", "/customers/5", cause)

		assert.Equal(t,
			"entity fetch failed: customer at /customers/5 (cause: source unreachable: /customers/5 (cause: timeout))",
			err.Error())
		require.ErrorIs(t, err, errs.ErrEntityFetch)
		require.ErrorIs(t, err, errs.ErrSourceUnreachable)
		assert.NotErrorIs(t, err, errs.ErrMalformedResponse)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewEntityFetchError("address", "/addresses/7")

		assert.Equal(t, "entity fetch failed: address at /addresses/7", err.Error())
		assert.Equal(t, []error{errs.ErrEntityFetch}, err.Unwrap())
	})
}

func TestTaxonomyMessages(t *testing.T) {
	cause := errors.New("boom")

	testCases := []struct {
		name     string
		err      error
		sentinel error
		expected string
	}{
		{
			name:     "source unreachable",
			err:      errs.NewSourceUnreachableError("orders"),
			sentinel: errs.ErrSourceUnreachable,
			expected: "source unreachable: orders",
		},
		{
			name:     "malformed response",
			err:      errs.NewMalformedResponseErrorWithCause("orders", cause),
			sentinel: errs.ErrMalformedResponse,
			expected: "malformed response: orders (cause: boom)",
		},
		{
			name:     "template render",
			err:      errs.NewTemplateRenderError("10"),
			sentinel: errs.ErrTemplateRender,
			expected: "template render failed: order 10",
		},
		{
			name:     "mail send",
			err:      errs.NewMailSendErrorWithCause("jane@example.com", cause),
			sentinel: errs.ErrMailSend,
			expected: "mail send failed: to jane@example.com (cause: boom)",
		},
		{
			name:     "state transition",
			err:      errs.NewStateTransitionErrorWithCause("10", 4, cause),
			sentinel: errs.ErrStateTransition,
			expected: "state transition failed: order 10 to state 4 (cause: boom)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}
