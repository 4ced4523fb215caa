package queries_test

import (
	"context"
	"time"

	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data through the
// write-side repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// queryTestDB starts a PostgreSQL container, connects, and migrates the
// schema. Each handler suite owns one container for its lifetime.
func queryTestDB(s *suite.Suite) (*postgres.PostgresContainer, *gorm.DB) {
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
	s.Require().NoError(err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&customerrepo.CustomerDTO{},
		&servicerepo.ServiceDTO{},
	)
	s.Require().NoError(err)

	return container, db
}

// seedCustomer registers a customer directly through the write-side repository.
func seedCustomer(s *suite.Suite, db *gorm.DB, name, phone string, tier customer.Type) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), name, phone, "", tier)
	s.Require().NoError(err)

	repo := customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})
	s.Require().NoError(repo.Add(context.Background(), c))
	return c
}

// seedOrder registers an order with a single wash line in the given state.
func seedOrder(
	s *suite.Suite, db *gorm.DB,
	number string, customerID kernel.UUID,
	status order.Status, paymentStatus order.PaymentStatus,
	createdAt time.Time,
) *order.Order {
	price, err := kernel.NewMoney(6000)
	s.Require().NoError(err)

	line, err := order.NewLine(kernel.NewUUID(), "Cuci Kering", true, 1, 2.0, price, "", nil)
	s.Require().NoError(err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), number, customerID,
		[]order.Line{line}, order.Cash, paymentStatus, "",
		status, createdAt.Add(48*time.Hour), "", createdAt,
	)
	s.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	s.Require().NoError(repo.Add(context.Background(), o))
	return o
}
