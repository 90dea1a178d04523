package queries_test

import (
	"context"
	"testing"
	"time"

	"fastorder/internal/adapters/out/postgres/orderrepo"
	"fastorder/internal/core/application/usecases/queries"
	"fastorder/internal/core/domain/model/kernel"
	"fastorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_ReturnsOrdersOldestFirst() {
	base := time.Now().Add(-time.Hour).Truncate(time.Millisecond)
	var seeded []*order.Order
	for i := range 3 {
		seeded = append(seeded, suite.seedOrderAt(base.Add(time.Duration(i)*time.Minute)))
	}

	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	for i, response := range result {
		suite.True(seeded[i].ID().IsEqual(response.ID), "order %d out of creation order", i)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EachOrderCarriesItsItems() {
	first := suite.seedOrderAt(time.Now().Add(-2 * time.Minute))
	second := suite.seedOrderAt(time.Now().Add(-time.Minute))

	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := make(map[string][]queries.OrderItemResponse, 2)
	for _, response := range result {
		byID[response.ID.String()] = response.Items
	}

	for _, seeded := range []*order.Order{first, second} {
		items, ok := byID[seeded.ID().String()]
		suite.Require().True(ok, "order %s missing from results", seeded.ID())
		suite.Require().Len(items, 2)
		suite.Equal("burger", items[0].ItemID)
		suite.Equal("soda", items[1].ItemID)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllOrdersQuery constructor")
}

// seedOrderAt persists a two-line order with a fixed creation time.
func (suite *GetAllOrdersQueryHandlerTestSuite) seedOrderAt(createdAt time.Time) *order.Order {
	burger, err := order.NewOrderItem("burger", 2, kernel.NewMoneyFromFloat(25.0))
	suite.Require().NoError(err)
	soda, err := order.NewOrderItem("soda", 1, kernel.NewMoneyFromFloat(4.25))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		[]*order.OrderItem{burger, soda},
		order.WithCreatedAt(createdAt),
		order.WithUpdatedAt(createdAt),
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	return testOrder
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
