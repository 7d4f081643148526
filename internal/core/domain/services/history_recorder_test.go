package services_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecorder_RecordIfChanged(t *testing.T) {
	recorder := services.NewHistoryRecorder()

	trackingID, err := kernel.NewTrackingID("TRK-HIST")
	require.NoError(t, err)
	statusA := kernel.NewUUID()
	statusB := kernel.NewUUID()
	oldPoint, err := kernel.NewGeoPoint(40.7, -74.0)
	require.NoError(t, err)
	newPoint, err := kernel.NewGeoPoint(41.0, -73.5)
	require.NoError(t, err)
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("no status change and no location leaves no trace", func(t *testing.T) {
		entry, err := recorder.RecordIfChanged(trackingID, statusA, statusA, &oldPoint, nil, now)

		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("status change produces an entry", func(t *testing.T) {
		entry, err := recorder.RecordIfChanged(trackingID, statusA, statusB, nil, nil, now)

		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.True(t, entry.StatusID().IsEqual(statusB))
		assert.Nil(t, entry.Location())
		assert.Equal(t, now, entry.RecordedAt())
	})

	t.Run("location-only update carries the unchanged status", func(t *testing.T) {
		entry, err := recorder.RecordIfChanged(trackingID, statusA, statusA, &oldPoint, &newPoint, now)

		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.True(t, entry.StatusID().IsEqual(statusA))
		require.NotNil(t, entry.Location())
		same, err := entry.Location().IsEqual(newPoint)
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("status change without a new location keeps the prior one", func(t *testing.T) {
		entry, err := recorder.RecordIfChanged(trackingID, statusA, statusB, &oldPoint, nil, now)

		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.True(t, entry.StatusID().IsEqual(statusB))
		require.NotNil(t, entry.Location())
		same, err := entry.Location().IsEqual(oldPoint)
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("each invocation mints a fresh entry id", func(t *testing.T) {
		first, err := recorder.RecordIfChanged(trackingID, statusA, statusB, nil, nil, now)
		require.NoError(t, err)
		second, err := recorder.RecordIfChanged(trackingID, statusA, statusB, nil, nil, now)
		require.NoError(t, err)

		assert.False(t, first.ID().IsEqual(second.ID()))
	})
}
