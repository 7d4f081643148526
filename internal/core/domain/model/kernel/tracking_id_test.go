package kernel_test

import (
	"strings"
	"testing"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingID(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		id, err := kernel.NewTrackingID("TRK-2024-0001")

		require.NoError(t, err)
		assert.Equal(t, "TRK-2024-0001", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		id, err := kernel.NewTrackingID("  TRK-7  ")

		require.NoError(t, err)
		assert.Equal(t, "TRK-7", id.String())
	})

	t.Run("empty value is rejected", func(t *testing.T) {
		_, err := kernel.NewTrackingID("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("blank value is rejected", func(t *testing.T) {
		_, err := kernel.NewTrackingID("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("overlong value is rejected", func(t *testing.T) {
		_, err := kernel.NewTrackingID(strings.Repeat("x", kernel.TrackingIDMaxLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestTrackingID_Validate_ZeroValue(t *testing.T) {
	var id kernel.TrackingID

	require.Error(t, id.Validate())
}

func TestTrackingID_IsEqual(t *testing.T) {
	a, err := kernel.NewTrackingID("TRK-1")
	require.NoError(t, err)
	b, err := kernel.NewTrackingID("TRK-1")
	require.NoError(t, err)
	c, err := kernel.NewTrackingID("TRK-2")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
