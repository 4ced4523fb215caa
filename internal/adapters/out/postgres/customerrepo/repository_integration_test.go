package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/core/domain/model/customer"
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

// CustomerRepositoryIntegrationTestSuite provides integration tests for
// CustomerRepository using PostgreSQL containers.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_ValidCustomer_Success() {
	ctx := context.Background()

	testCustomer := suite.createMember("Budi Santoso", "081234567890")
	suite.tracker.On("TrackAggregate", testCustomer.ID(), testCustomer).Once()

	err := suite.repository.Add(ctx, testCustomer)
	suite.Require().NoError(err)

	suite.assertCustomerCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_ExistingCustomer_RoundTrips() {
	ctx := context.Background()

	testCustomer := suite.createMember("Siti Rahma", "081298765432")
	suite.tracker.On("TrackAggregate", testCustomer.ID(), testCustomer).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testCustomer))

	retrieved, err := suite.repository.Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)

	suite.Equal(testCustomer.ID(), retrieved.ID())
	suite.Equal("Siti Rahma", retrieved.Name())
	suite.Equal("081298765432", retrieved.Phone())
	suite.Equal(customer.Member, retrieved.Tier())
	suite.True(retrieved.Balance().IsZero())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NonExistentCustomer_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_PersistsBalanceMovements() {
	ctx := context.Background()

	testCustomer := suite.createMember("Agus Salim", "081233334444")
	suite.tracker.On("TrackAggregate", testCustomer.ID(), testCustomer).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testCustomer))

	amount, err := kernel.NewMoney(50000)
	suite.Require().NoError(err)
	suite.Require().NoError(testCustomer.TopUp(amount))

	suite.tracker.On("TrackAggregate", testCustomer.ID(), testCustomer).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testCustomer))

	retrieved, err := suite.repository.Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(50000), retrieved.Balance().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_NonExistentCustomer_ReturnsError() {
	ctx := context.Background()

	nonExistent := suite.createMember("Tidak Ada", "081200000000")

	err := suite.repository.Update(ctx, nonExistent)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestSearch_MatchesNameAndPhone() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	budi := suite.createMember("Budi Santoso", "081234567890")
	budiman := suite.createRegular("Budiman", "081255556666")
	siti := suite.createRegular("Siti Rahma", "081298765432")

	for _, c := range []*customer.Customer{budi, budiman, siti} {
		suite.Require().NoError(suite.repository.Add(ctx, c))
	}

	// Case-insensitive name match hits both Budi and Budiman.
	byName, err := suite.repository.Search(ctx, "budi")
	suite.Require().NoError(err)
	suite.Len(byName, 2)
	suite.Equal("Budi Santoso", byName[0].Name())
	suite.Equal("Budiman", byName[1].Name())

	// Phone fragment match.
	byPhone, err := suite.repository.Search(ctx, "9876")
	suite.Require().NoError(err)
	suite.Require().Len(byPhone, 1)
	suite.Equal("Siti Rahma", byPhone[0].Name())

	// Empty query returns everyone ordered by name.
	all, err := suite.repository.Search(ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 3)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestSearch_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	results, err := suite.repository.Search(ctx, "nobody")
	suite.Require().NoError(err)
	suite.Empty(results)
}

// createMember creates a member customer with a zero balance.
func (suite *CustomerRepositoryIntegrationTestSuite) createMember(name, phone string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), name, phone, "Jl. Melati 1", customer.Member)
	suite.Require().NoError(err)
	return c
}

// createRegular creates a walk-in customer.
func (suite *CustomerRepositoryIntegrationTestSuite) createRegular(name, phone string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), name, phone, "", customer.Regular)
	suite.Require().NoError(err)
	return c
}

// assertCustomerCount verifies the number of customers in the database.
func (suite *CustomerRepositoryIntegrationTestSuite) assertCustomerCount(expected int) {
	var count int64
	err := suite.db.Model(&customerrepo.CustomerDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
