package commands_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/status"

	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role kernel.Role, companyID kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role, companyID)
	require.NoError(t, err)
	return actor
}

func testStatus(t *testing.T, code string, isSystem bool) *status.Status {
	t.Helper()
	s, err := status.RestoreStatus(kernel.NewUUID(), code, code, "", isSystem, 10)
	require.NoError(t, err)
	return s
}

func testWaypoint(t *testing.T, address string) order.Waypoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(40.7, -74.0)
	require.NoError(t, err)
	wp, err := order.NewWaypoint(address, point)
	require.NoError(t, err)
	return wp
}

func testOrder(t *testing.T, companyID kernel.UUID, statusID kernel.UUID, deliveryPersonID *kernel.UUID) *order.Order {
	t.Helper()
	trackingID, err := kernel.NewTrackingID("TRK-1001")
	require.NoError(t, err)
	ord, err := order.RestoreOrder(
		trackingID, companyID,
		"Ada Lovelace", "ada@example.com", "",
		testWaypoint(t, "1 Pickup St"), testWaypoint(t, "2 Dropoff Ave"), "",
		nil, deliveryPersonID,
		statusID, kernel.NewShareToken(),
		time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return ord
}
