package queries_test

import (
	"context"
	"time"

	postgres_adapter "shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/adapters/out/postgres/historyrepo"
	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/adapters/out/postgres/statusrepo"
	"shiptrack/internal/core/domain/model/history"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/status"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding outside a unit of work.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(string, any) {}

// queryHandlerTestSuite is the shared harness for query handler integration
// tests: one PostgreSQL container, migrated schema, system statuses seeded
// once, and repositories for writing fixtures.
type queryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	historyRepo *historyrepo.GormHistoryRepository
	statusRepo  *statusrepo.GormStatusRepository
	statusIDs   map[string]kernel.UUID
}

func (suite *queryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.Require().NoError(postgres_adapter.SeedSystemStatuses(ctx, db))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
	suite.historyRepo = historyrepo.NewGormHistoryRepository(db, mockAggregateTracker{})
	suite.statusRepo = statusrepo.NewGormStatusRepository(db, mockAggregateTracker{})

	statuses, err := suite.statusRepo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.statusIDs = make(map[string]kernel.UUID, len(statuses))
	for _, s := range statuses {
		suite.statusIDs[s.Code()] = s.ID()
	}
}

func (suite *queryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_history").Error
	suite.Require().NoError(err)
}

func (suite *queryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *queryHandlerTestSuite) statusID(code string) kernel.UUID {
	id, ok := suite.statusIDs[code]
	suite.Require().True(ok, "status %q should be seeded", code)
	return id
}

func (suite *queryHandlerTestSuite) actor(role kernel.Role, companyID kernel.UUID) kernel.Actor {
	actor, err := kernel.NewActor(kernel.NewUUID(), role, companyID)
	suite.Require().NoError(err)
	return actor
}

func (suite *queryHandlerTestSuite) seedOrder(
	trackingID string, companyID kernel.UUID, email string, createdAt time.Time,
) *order.Order {
	tid, err := kernel.NewTrackingID(trackingID)
	suite.Require().NoError(err)
	point, err := kernel.NewGeoPoint(40.7, -74.0)
	suite.Require().NoError(err)
	pickup, err := order.NewWaypoint("1 Pickup St", point)
	suite.Require().NoError(err)
	dropoff, err := order.NewWaypoint("2 Dropoff Ave", point)
	suite.Require().NoError(err)

	ord, err := order.NewOrder(tid, companyID,
		"Ada Lovelace", email, "",
		pickup, dropoff, "", suite.statusID(status.CodeCreated), createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), ord))
	return ord
}

func (suite *queryHandlerTestSuite) seedHistory(
	trackingID kernel.TrackingID, statusCode string,
	location *kernel.GeoPoint, recordedAt time.Time,
) *history.Entry {
	entry, err := history.NewEntry(
		kernel.NewUUID(), trackingID, suite.statusID(statusCode), location, recordedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.historyRepo.Add(context.Background(), entry))
	return entry
}
