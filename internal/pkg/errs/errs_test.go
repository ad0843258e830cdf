package errs_test

import (
	"errors"
	"testing"

	"steelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("coilTag", "C-1042")

		assert.Equal(t, "coilTag", err.ParamName)
		assert.Equal(t, "C-1042", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: C-1042", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("coilTag", "C-1042", cause)

		assert.Equal(t, "coilTag", err.ParamName)
		assert.Equal(t, "C-1042", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: coilTag, ID is: C-1042 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("pauseReason")

		assert.Equal(t, "pauseReason", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: pauseReason", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("pauseReason", cause)

		assert.Equal(t, "pauseReason", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: pauseReason (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("plannedQuantity", 18, 0, 15)

		assert.Equal(t, "plannedQuantity", err.ParamName)
		assert.Equal(t, 18, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 15, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 18 is plannedQuantity, min value is 0, max value is 15", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("plannedWeight", -5.0, 0.0, 3500.0, cause)

		assert.Equal(t, "plannedWeight", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is plannedWeight, min value is 0, max value is 3500 (cause: validation failed)",
			err.Error())
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
		err := errs.NewValueIsRequiredError("operator")

		assert.Equal(t, "operator", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: operator", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("operator", cause)

		assert.Equal(t, "operator", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: operator (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionConflictError(t *testing.T) {
	t.Run("NewVersionConflictError", func(t *testing.T) {
		err := errs.NewVersionConflictError("workOrder", 7)

		assert.Equal(t, "workOrder", err.ParamName)
		assert.Equal(t, int64(7), err.Expected)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version conflict: workOrder at version 7", err.Error())
		assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
	})

	t.Run("NewVersionConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("row already updated")
		err := errs.NewVersionConflictErrorWithCause("coil", 3, cause)

		assert.Equal(t, "coil", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version conflict: coil at version 3 (cause: row already updated)", err.Error())
		assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionConflict)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version conflict", errs.ErrVersionConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("coilTag", "C-1042")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("pauseReason")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("plannedQuantity", 18, 0, 15)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("operator")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		versionConflictErr := errs.NewVersionConflictError("workOrder", 7)
		require.ErrorIs(t, versionConflictErr, errs.ErrVersionConflict)
	})
}
