package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/historyrepo"
	"shiptrack/internal/core/domain/model/history"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// HistoryRepositoryIntegrationTestSuite provides integration tests for
// HistoryRepository using PostgreSQL containers.
type HistoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *historyrepo.GormHistoryRepository
	tracker    *MockAggregateTracker
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&historyrepo.EntryDTO{}))
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_history").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = historyrepo.NewGormHistoryRepository(suite.db, suite.tracker)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HistoryRepositoryIntegrationTestSuite) createTestEntry(
	trackingID string, location *kernel.GeoPoint, recordedAt time.Time,
) *history.Entry {
	tid, err := kernel.NewTrackingID(trackingID)
	suite.Require().NoError(err)
	entry, err := history.NewEntry(kernel.NewUUID(), tid, kernel.NewUUID(), location, recordedAt)
	suite.Require().NoError(err)
	return entry
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestAdd_ThenGetByTrackingID() {
	ctx := context.Background()
	point, err := kernel.NewGeoPoint(40.7, -74.0)
	suite.Require().NoError(err)
	entry := suite.createTestEntry("TRK-H-1", &point, time.Now())

	suite.tracker.On("TrackAggregate", entry.ID().String(), entry).Once()
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	timeline, err := suite.repository.GetByTrackingID(ctx, entry.TrackingID())
	suite.Require().NoError(err)
	suite.Require().Len(timeline, 1)
	suite.True(timeline[0].ID().IsEqual(entry.ID()))
	suite.Require().NotNil(timeline[0].Location())
	same, err := timeline[0].Location().IsEqual(point)
	suite.Require().NoError(err)
	suite.True(same)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetByTrackingID_OldestFirst() {
	ctx := context.Background()
	now := time.Now()
	newest := suite.createTestEntry("TRK-H-2", nil, now)
	oldest := suite.createTestEntry("TRK-H-2", nil, now.Add(-2*time.Hour))
	middle := suite.createTestEntry("TRK-H-2", nil, now.Add(-time.Hour))
	other := suite.createTestEntry("TRK-H-3", nil, now)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(4)
	suite.Require().NoError(suite.repository.Add(ctx, newest))
	suite.Require().NoError(suite.repository.Add(ctx, oldest))
	suite.Require().NoError(suite.repository.Add(ctx, middle))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	timeline, err := suite.repository.GetByTrackingID(ctx, newest.TrackingID())
	suite.Require().NoError(err)
	suite.Require().Len(timeline, 3)
	suite.True(timeline[0].ID().IsEqual(oldest.ID()))
	suite.True(timeline[1].ID().IsEqual(middle.ID()))
	suite.True(timeline[2].ID().IsEqual(newest.ID()))
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetByTrackingID_Empty() {
	ctx := context.Background()
	tid, err := kernel.NewTrackingID("TRK-H-9")
	suite.Require().NoError(err)

	timeline, err := suite.repository.GetByTrackingID(ctx, tid)
	suite.Require().NoError(err)
	suite.Empty(timeline)
}

func TestHistoryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(HistoryRepositoryIntegrationTestSuite))
}
