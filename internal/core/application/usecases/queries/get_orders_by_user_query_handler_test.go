package queries_test

import (
	"context"
	"testing"
	"time"

	"homebar/internal/adapters/out/postgres/cocktailrepo"
	"homebar/internal/adapters/out/postgres/orderrepo"
	"homebar/internal/core/application/usecases/queries"
	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/core/domain/model/order"
	"homebar/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	orderRepo    *orderrepo.GormOrderRepository
	cocktailRepo *cocktailrepo.GormCocktailRepository
	negroni      *cocktail.Cocktail
	mojito       *cocktail.Cocktail
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &cocktailrepo.CocktailDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.cocktailRepo = cocktailrepo.NewGormCocktailRepository(db, &mockAggregateTracker{})

	light, err := cocktail.NewStrength(1)
	suite.Require().NoError(err)
	strong, err := cocktail.NewStrength(3)
	suite.Require().NoError(err)

	suite.mojito, err = cocktail.NewCocktail(kernel.NewUUID(), "Мохито", "/photos/mojito.jpg",
		"Освежающий", []cocktail.Ingredient{{Name: "Ром", Amount: "50 мл"}}, "Смешать", light)
	suite.Require().NoError(err)
	suite.negroni, err = cocktail.NewCocktail(kernel.NewUUID(), "Негрони", "/photos/negroni.jpg",
		"Горький", []cocktail.Ingredient{{Name: "Джин", Amount: "30 мл"}}, "Смешать", strong)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.cocktailRepo.Add(ctx, suite.mojito))
	suite.Require().NoError(suite.cocktailRepo.Add(ctx, suite.negroni))
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *QueryHandlersTestSuite) addOrder(userID string, drink *cocktail.Cocktail) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), userID, drink.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) TestGetOrdersByUser_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersByUserQuery("Alice")
	suite.Require().NoError(err)
	handler := queries.NewGetOrdersByUserQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetOrdersByUser_FiltersByUserNewestFirst() {
	older := suite.addOrder("Alice", suite.mojito)
	// created_at ordering needs distinct timestamps
	time.Sleep(10 * time.Millisecond)
	newer := suite.addOrder("Alice", suite.negroni)
	suite.addOrder("Bob", suite.mojito)

	query, err := queries.NewGetOrdersByUserQuery("Alice")
	suite.Require().NoError(err)
	handler := queries.NewGetOrdersByUserQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.True(result[1].ID.IsEqual(older.ID()))
	suite.Equal("Негрони", result[0].CocktailName)
	suite.Equal(3, result[0].Strength)
	suite.Equal("В очереди", result[0].StatusLabel)
	suite.False(result[0].HasMessage)
}

func (suite *QueryHandlersTestSuite) TestGetOrdersByUser_ReportsMessagePresence() {
	o := suite.addOrder("Alice", suite.mojito)
	suite.Require().NoError(o.AttachNotificationMessage(123))
	suite.Require().NoError(suite.orderRepo.UpdateNotificationMessage(context.Background(), o))

	query, err := queries.NewGetOrdersByUserQuery("Alice")
	suite.Require().NoError(err)
	handler := queries.NewGetOrdersByUserQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].HasMessage)
}

func (suite *QueryHandlersTestSuite) TestGetAllCocktails_ReturnsCatalogSortedByName() {
	handler := queries.NewGetAllCocktailsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAllCocktailsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Мохито", result[0].Name)
	suite.Equal("Негрони", result[1].Name)
	suite.Require().Len(result[1].Ingredients, 1)
	suite.Equal("Джин", result[1].Ingredients[0].Name)
}

func (suite *QueryHandlersTestSuite) TestGetCocktail_ReturnsEntry() {
	query, err := queries.NewGetCocktailQuery(suite.negroni.ID())
	suite.Require().NoError(err)
	handler := queries.NewGetCocktailQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Негрони", result.Name)
	suite.Equal(3, result.Strength)
}

func (suite *QueryHandlersTestSuite) TestGetCocktail_UnknownID_ReturnsNotFound() {
	query, err := queries.NewGetCocktailQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	handler := queries.NewGetCocktailQueryHandler(suite.db)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
