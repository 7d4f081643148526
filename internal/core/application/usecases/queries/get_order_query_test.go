package queries_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin, kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func validTrackingID(t *testing.T) kernel.TrackingID {
	t.Helper()
	tid, err := kernel.NewTrackingID("TRK-1001")
	require.NoError(t, err)
	return tid
}

func TestNewGetOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQuery(validActor(t), validTrackingID(t))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidInputs(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.Actor{}, validTrackingID(t))
	require.Error(t, err)

	_, err = queries.NewGetOrderQuery(validActor(t), kernel.TrackingID{})
	require.Error(t, err)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
