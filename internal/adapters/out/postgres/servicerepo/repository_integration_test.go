package servicerepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ServiceRepositoryIntegrationTestSuite provides integration tests for
// ServiceRepository using PostgreSQL containers.
type ServiceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *servicerepo.GormServiceRepository
	tracker    *MockAggregateTracker
}

func (suite *ServiceRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&servicerepo.ServiceDTO{}))
}

func (suite *ServiceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE services").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = servicerepo.NewGormServiceRepository(suite.db, suite.tracker)
}

func (suite *ServiceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestAdd_ValidService_Success() {
	ctx := context.Background()

	service := suite.createWeightService("Cuci Kering", "Kiloan", 7000, 6000)
	suite.tracker.On("TrackAggregate", service.ID(), service).Once()

	err := suite.repository.Add(ctx, service)
	suite.Require().NoError(err)

	suite.assertServiceCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestGet_ExistingService_RoundTrips() {
	ctx := context.Background()

	service := suite.createWeightService("Cuci Setrika", "Kiloan", 10000, 8500)
	suite.tracker.On("TrackAggregate", service.ID(), service).Once()
	suite.Require().NoError(suite.repository.Add(ctx, service))

	retrieved, err := suite.repository.Get(ctx, service.ID())
	suite.Require().NoError(err)

	suite.Equal(service.ID(), retrieved.ID())
	suite.Equal("Cuci Setrika", retrieved.Name())
	suite.Equal("Kiloan", retrieved.Category())
	suite.Equal(int64(10000), retrieved.Price().Amount())
	suite.Require().NotNil(retrieved.MemberPrice())
	suite.Equal(int64(8500), retrieved.MemberPrice().Amount())
	suite.True(retrieved.IsWeightBased())
	suite.InDelta(catalog.DefaultMinWeight, retrieved.MinWeight(), 0.001)
	suite.InDelta(catalog.DefaultMaxWeight, retrieved.MaxWeight(), 0.001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestGet_ServiceWithoutMemberPrice_RoundTripsNil() {
	ctx := context.Background()

	service := suite.createItemService("Cuci Sepatu", "Satuan", 25000)
	suite.tracker.On("TrackAggregate", service.ID(), service).Once()
	suite.Require().NoError(suite.repository.Add(ctx, service))

	retrieved, err := suite.repository.Get(ctx, service.ID())
	suite.Require().NoError(err)

	suite.Nil(retrieved.MemberPrice())
	suite.False(retrieved.IsWeightBased())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestGet_NonExistentService_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestUpdate_PersistsPriceChange() {
	ctx := context.Background()

	service := suite.createWeightService("Cuci Kering", "Kiloan", 7000, 6000)
	suite.tracker.On("TrackAggregate", service.ID(), service).Once()
	suite.Require().NoError(suite.repository.Add(ctx, service))

	// Reprice the same service.
	newPrice, err := kernel.NewMoney(8000)
	suite.Require().NoError(err)
	newMemberPrice, err := kernel.NewMoney(7000)
	suite.Require().NoError(err)

	repriced, err := catalog.RestoreService(
		service.ID(), service.Name(), service.Category(),
		newPrice, &newMemberPrice,
		service.IsWeightBased(), service.MinWeight(), service.MaxWeight(),
		service.DurationHours(),
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", repriced.ID(), repriced).Once()
	suite.Require().NoError(suite.repository.Update(ctx, repriced))

	retrieved, err := suite.repository.Get(ctx, service.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(8000), retrieved.Price().Amount())
	suite.Equal(int64(7000), retrieved.MemberPrice().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestUpdate_NonExistentService_ReturnsError() {
	ctx := context.Background()

	nonExistent := suite.createItemService("Tidak Ada", "Satuan", 10000)

	err := suite.repository.Update(ctx, nonExistent)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestGetAll_OrderedByCategoryThenName() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	satuan := suite.createItemService("Setrika Satuan", "Satuan", 3000)
	kiloanB := suite.createWeightService("Cuci Setrika", "Kiloan", 10000, 8500)
	kiloanA := suite.createWeightService("Cuci Kering", "Kiloan", 7000, 6000)

	for _, s := range []*catalog.Service{satuan, kiloanB, kiloanA} {
		suite.Require().NoError(suite.repository.Add(ctx, s))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(all, 3)
	suite.Equal("Cuci Kering", all[0].Name())
	suite.Equal("Cuci Setrika", all[1].Name())
	suite.Equal("Setrika Satuan", all[2].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestGetAll_EmptyCatalog_ReturnsEmptySlice() {
	ctx := context.Background()

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(all)
}

// createWeightService creates a per-kilogram service with a member price.
func (suite *ServiceRepositoryIntegrationTestSuite) createWeightService(
	name, category string, price, memberPrice int64,
) *catalog.Service {
	p, err := kernel.NewMoney(price)
	suite.Require().NoError(err)
	mp, err := kernel.NewMoney(memberPrice)
	suite.Require().NoError(err)

	service, err := catalog.NewService(
		kernel.NewUUID(), name, category, p, &mp,
		true, catalog.DefaultMinWeight, catalog.DefaultMaxWeight, 48,
	)
	suite.Require().NoError(err)
	return service
}

// createItemService creates a per-item service without a member price.
func (suite *ServiceRepositoryIntegrationTestSuite) createItemService(
	name, category string, price int64,
) *catalog.Service {
	p, err := kernel.NewMoney(price)
	suite.Require().NoError(err)

	service, err := catalog.NewService(
		kernel.NewUUID(), name, category, p, nil,
		false, 0, 0, 24,
	)
	suite.Require().NoError(err)
	return service
}

// assertServiceCount verifies the number of services in the database.
func (suite *ServiceRepositoryIntegrationTestSuite) assertServiceCount(expected int) {
	var count int64
	err := suite.db.Model(&servicerepo.ServiceDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestServiceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceRepositoryIntegrationTestSuite))
}
