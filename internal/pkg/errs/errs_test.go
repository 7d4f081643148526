package errs_test

import (
	"errors"
	"testing"

	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("trackingId", "TRK-123")

		assert.Equal(t, "trackingId", err.ParamName)
		assert.Equal(t, "TRK-123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: TRK-123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("trackingId", "TRK-123", cause)

		assert.Equal(t, "trackingId", err.ParamName)
		assert.Equal(t, "TRK-123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: trackingId, ID is: TRK-123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("order is assigned to a different delivery person")

		require.NoError(t, err.Cause)
		assert.Empty(t, err.Fields)
		assert.Equal(t, "forbidden: order is assigned to a different delivery person", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("NewForbiddenFieldsError names every field", func(t *testing.T) {
		err := errs.NewForbiddenFieldsError(
			"delivery role may only change status and location",
			[]string{"customerName", "instructions"},
		)

		assert.Equal(t, []string{"customerName", "instructions"}, err.Fields)
		assert.Equal(t,
			"forbidden: delivery role may only change status and location: "+
				"disallowed fields: customerName, instructions",
			err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("NewForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("token scope mismatch")
		err := errs.NewForbiddenErrorWithCause("status is protected", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "forbidden: status is protected (cause: token scope mismatch)", err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("archived", "archived orders cannot be modified")

		assert.Equal(t, "archived", err.CurrentState)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"invalid state: archived orders cannot be modified (current state: archived)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("state machine rejected transition")
		err := errs.NewInvalidStateErrorWithCause("completed", "no further transitions", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: no further transitions (current state: completed) "+
				"(cause: state machine rejected transition)",
			err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("code", "in_transit", "status code already exists")

		assert.Equal(t, "code", err.ParamName)
		assert.Equal(t, "in_transit", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: code in_transit: status code already exists", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("3 orders reference this status")
		err := errs.NewConflictErrorWithCause("statusId", "abc", "status is still in use", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"conflict: statusId abc: status is still in use (cause: 3 orders reference this status)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("statusCode")

		assert.Equal(t, "statusCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: statusCode", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown code")
		err := errs.NewValueIsInvalidErrorWithCause("statusCode", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: statusCode (cause: unknown code)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("lat", 120.0, -90.0, 90.0)

		assert.Equal(t, "lat", err.ParamName)
		assert.Equal(t, 120.0, err.Value)
		assert.Equal(t, -90.0, err.Min)
		assert.Equal(t, 90.0, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 120 is lat, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("trackingId")

		assert.Equal(t, "trackingId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: trackingId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("trackingId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: trackingId (cause: missing required field)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("trackingId", "TRK-1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewForbiddenError("nope"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewInvalidStateError("archived", "locked"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewConflictError("code", "x", "duplicate"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewValueIsInvalidError("statusCode"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("lat", 120.0, -90.0, 90.0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("trackingId"), errs.ErrValueIsRequired)
	})
}
