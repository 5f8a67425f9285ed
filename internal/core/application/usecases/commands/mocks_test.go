package commands_test

import (
	"context"
	"io"
	"log/slog"

	"homebar/internal/core/application/usecases/commands"
	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/core/domain/model/order"
	"homebar/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateNotificationMessage(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllAwaitingNotification(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCocktailRepository struct{ mock.Mock }

func (m *MockCocktailRepository) Add(ctx context.Context, c *cocktail.Cocktail) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCocktailRepository) Get(ctx context.Context, id kernel.UUID) (*cocktail.Cocktail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cocktail.Cocktail), args.Error(1)
}

type MockNotificationChannel struct{ mock.Mock }

func (m *MockNotificationChannel) Post(ctx context.Context, o *order.Order, c *cocktail.Cocktail) (int64, error) {
	args := m.Called(ctx, o, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationChannel) Update(ctx context.Context, messageID int64, o *order.Order, c *cocktail.Cocktail) error {
	args := m.Called(ctx, messageID, o, c)
	return args.Error(0)
}

func (m *MockNotificationChannel) Remove(ctx context.Context, messageID int64) error {
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

func (m *MockNotificationChannel) NotifyCompletion(ctx context.Context, userID, cocktailName string, status order.Status) error {
	args := m.Called(ctx, userID, cocktailName, status)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CocktailRepository() ports.CocktailRepository {
	args := m.Called()
	return args.Get(0).(ports.CocktailRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// testCocktail builds a valid catalog entry for handler tests.
func testCocktail(id kernel.UUID) *cocktail.Cocktail {
	strength, _ := cocktail.NewStrength(2)
	c, err := cocktail.NewCocktail(id, "Негрони", "/photos/negroni.jpg", "Горький аперитив",
		[]cocktail.Ingredient{
			{Name: "Джин", Amount: "30 мл"},
			{Name: "Кампари", Amount: "30 мл"},
			{Name: "Красный вермут", Amount: "30 мл"},
		},
		"Смешать в стакане со льдом, украсить апельсином", strength)
	if err != nil {
		panic(err)
	}
	return c
}
