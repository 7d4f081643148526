package queries_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetOrderQueryHandlerTestSuite struct {
	queryHandlerTestSuite
	handler queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	suite.queryHandlerTestSuite.SetupSuite()
	suite.handler = queries.NewGetOrderQueryHandler(suite.db)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ResolvesStatusAndToken() {
	ctx := context.Background()
	companyID := kernel.NewUUID()
	ord := suite.seedOrder("TRK-Q-1", companyID, "ada@example.com", time.Now())

	query, err := queries.NewGetOrderQuery(
		suite.actor(kernel.RoleAdmin, companyID), ord.TrackingID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("TRK-Q-1", result.TrackingID)
	suite.Equal(companyID.String(), result.CompanyID)
	suite.Equal("Ada Lovelace", result.CustomerName)
	suite.Equal(status.CodeCreated, result.StatusCode)
	suite.Equal("Created", result.StatusLabel)
	suite.Equal(ord.ShareToken().String(), result.ShareToken)
	suite.Nil(result.CurrentLat)
	suite.Nil(result.DeliveryPersonID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_WrongCompany_NotFound() {
	ctx := context.Background()
	ord := suite.seedOrder("TRK-Q-2", kernel.NewUUID(), "", time.Now())

	query, err := queries.NewGetOrderQuery(
		suite.actor(kernel.RoleAdmin, kernel.NewUUID()), ord.TrackingID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_SuperAdminCrossCompany() {
	ctx := context.Background()
	ord := suite.seedOrder("TRK-Q-3", kernel.NewUUID(), "", time.Now())

	query, err := queries.NewGetOrderQuery(
		suite.actor(kernel.RoleSuperAdmin, kernel.NewUUID()), ord.TrackingID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("TRK-Q-3", result.TrackingID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_NotFound() {
	ctx := context.Background()
	trackingID, err := kernel.NewTrackingID("TRK-MISSING")
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(
		suite.actor(kernel.RoleAdmin, kernel.NewUUID()), trackingID)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
