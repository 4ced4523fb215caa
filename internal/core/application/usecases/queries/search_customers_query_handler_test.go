package queries_test

import (
	"context"
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/customer"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type SearchCustomersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.SearchCustomersQueryHandler
}

func (suite *SearchCustomersQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = queryTestDB(&suite.Suite)
	suite.handler = queries.NewSearchCustomersQueryHandler(suite.db)
}

func (suite *SearchCustomersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SearchCustomersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)
}

func (suite *SearchCustomersQueryHandlerTestSuite) TestHandle_EmptyTerm_ReturnsAllSortedByName() {
	seedCustomer(&suite.Suite, suite.db, "Siti Rahma", "081298765432", customer.Regular)
	seedCustomer(&suite.Suite, suite.db, "Budi Santoso", "081234567890", customer.Member)

	result, err := suite.handler.Handle(context.Background(), queries.NewSearchCustomersQuery(""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Budi Santoso", result[0].Name)
	suite.Equal("Siti Rahma", result[1].Name)
}

func (suite *SearchCustomersQueryHandlerTestSuite) TestHandle_NameFragment_MatchesCaseInsensitively() {
	seedCustomer(&suite.Suite, suite.db, "Budi Santoso", "081234567890", customer.Member)
	seedCustomer(&suite.Suite, suite.db, "Budiman", "081255556666", customer.Regular)
	seedCustomer(&suite.Suite, suite.db, "Siti Rahma", "081298765432", customer.Regular)

	result, err := suite.handler.Handle(context.Background(), queries.NewSearchCustomersQuery("BUDI"))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Budi Santoso", result[0].Name)
	suite.Equal("Budiman", result[1].Name)
}

func (suite *SearchCustomersQueryHandlerTestSuite) TestHandle_PhoneFragment_Matches() {
	seedCustomer(&suite.Suite, suite.db, "Budi Santoso", "081234567890", customer.Member)
	seedCustomer(&suite.Suite, suite.db, "Siti Rahma", "081298765432", customer.Regular)

	result, err := suite.handler.Handle(context.Background(), queries.NewSearchCustomersQuery("9876"))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Siti Rahma", result[0].Name)
}

func (suite *SearchCustomersQueryHandlerTestSuite) TestHandle_CarriesTierAndBalance() {
	member := seedCustomer(&suite.Suite, suite.db, "Budi Santoso", "081234567890", customer.Member)

	result, err := suite.handler.Handle(context.Background(), queries.NewSearchCustomersQuery("Budi"))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(member.ID(), result[0].ID)
	suite.Equal(customer.Member.String(), result[0].Tier)
	suite.Equal(int64(0), result[0].Balance)
}

func (suite *SearchCustomersQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmptySlice() {
	seedCustomer(&suite.Suite, suite.db, "Budi Santoso", "081234567890", customer.Member)

	result, err := suite.handler.Handle(context.Background(), queries.NewSearchCustomersQuery("nobody"))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *SearchCustomersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var query queries.SearchCustomersQuery

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrSearchCustomersQueryIsNotConstructed)
}

func TestSearchCustomersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchCustomersQueryHandlerTestSuite))
}
