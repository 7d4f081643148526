package kernel_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "valid point", lat: 40.7128, lng: -74.0060, wantErr: false},
		{name: "boundary minimums", lat: -90, lng: -180, wantErr: false},
		{name: "boundary maximums", lat: 90, lng: 180, wantErr: false},
		{name: "zero zero is valid", lat: 0, lng: 0, wantErr: false},
		{name: "latitude too high", lat: 90.1, lng: 0, wantErr: true},
		{name: "latitude too low", lat: -90.1, lng: 0, wantErr: true},
		{name: "longitude too high", lat: 0, lng: 180.5, wantErr: true},
		{name: "longitude too low", lat: 0, lng: -181, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.lat, tt.lng)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.lat, point.Lat())
			assert.Equal(t, tt.lng, point.Lng())
			require.NoError(t, point.Validate())
		})
	}
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var point kernel.GeoPoint

	require.Error(t, point.Validate())
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(10.0, 20.0)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(10.0, 20.0)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(10.0, 21.0)
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	var zero kernel.GeoPoint
	_, err = a.IsEqual(zero)
	require.Error(t, err)
}

func TestGeoPoint_String(t *testing.T) {
	point, err := kernel.NewGeoPoint(40.5, -74.25)
	require.NoError(t, err)

	assert.Equal(t, "GeoPoint(40.5,-74.25)", point.String())
}
