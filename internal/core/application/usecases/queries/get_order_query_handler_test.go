package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = queryTestDB(&suite.Suite)
	suite.handler = queries.NewGetOrderQueryHandler(suite.db)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines, customers").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsFullDetail() {
	cust := seedCustomer(&suite.Suite, suite.db, "Budi Santoso", "081234567890", customer.Member)
	seeded := suite.seedOrderWithItemizedLine(cust.ID())

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID(), detail.ID)
	suite.Equal(seeded.Number(), detail.Number)
	suite.Equal(cust.ID(), detail.CustomerID)
	suite.Equal("Budi Santoso", detail.CustomerName)
	suite.Equal("081234567890", detail.CustomerPhone)
	suite.Equal(order.Cash.String(), detail.PaymentMethod)
	suite.Equal(seeded.Total().Amount(), detail.Total)

	suite.Require().Len(detail.Lines, 2)

	wash := detail.Lines[0]
	suite.Equal("Cuci Kering", wash.ServiceName)
	suite.True(wash.WeightBased)
	suite.InDelta(2.0, wash.Weight, 0.001)
	suite.Empty(wash.CustomItems)

	iron := detail.Lines[1]
	suite.Equal("Setrika Satuan", iron.ServiceName)
	suite.False(iron.WeightBased)
	suite.Equal(5, iron.Quantity)
	suite.Require().Len(iron.CustomItems, 2)
	suite.Equal("Kemeja", iron.CustomItems[0].Name)
	suite.Equal(3, iron.CustomItems[0].Quantity)
	suite.Equal("Celana", iron.CustomItems[1].Name)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var query queries.GetOrderQuery

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

// seedOrderWithItemizedLine stores an order with a weighed wash line and an
// itemized ironing line.
func (suite *GetOrderQueryHandlerTestSuite) seedOrderWithItemizedLine(customerID kernel.UUID) *order.Order {
	washPrice, err := kernel.NewMoney(6000)
	suite.Require().NoError(err)
	ironPrice, err := kernel.NewMoney(3000)
	suite.Require().NoError(err)

	shirt, err := order.NewCustomItem("itm-1", "Kemeja", 3)
	suite.Require().NoError(err)
	trousers, err := order.NewCustomItem("itm-2", "Celana", 2)
	suite.Require().NoError(err)

	washLine, err := order.NewLine(kernel.NewUUID(), "Cuci Kering", true, 1, 2.0, washPrice, "", nil)
	suite.Require().NoError(err)
	ironLine, err := order.NewLine(
		kernel.NewUUID(), "Setrika Satuan", false, 5, 0, ironPrice, "",
		[]order.CustomItem{shirt, trousers},
	)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-20260110-000001", customerID,
		[]order.Line{washLine, ironLine}, order.Cash,
		time.Now().Add(48*time.Hour), "",
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), o))
	return o
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
