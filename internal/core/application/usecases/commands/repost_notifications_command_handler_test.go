package commands_test

import (
	"errors"
	"testing"

	"homebar/internal/core/application/usecases/commands"
	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/core/domain/model/order"
	"homebar/internal/core/ports"
	"homebar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRepostNotificationsCommandHandler_Handle_PostsMissingMessages(t *testing.T) {
	ctx := t.Context()
	cocktailID := kernel.NewUUID()
	drink := testCocktail(cocktailID)

	first := restoredOrder(t, kernel.NewUUID(), cocktailID, order.Queued, nil)
	second := restoredOrder(t, kernel.NewUUID(), cocktailID, order.InProgress, nil)

	orderRepo := new(MockOrderRepository)
	cocktailRepo := new(MockCocktailRepository)
	orderRepo.On("GetAllAwaitingNotification", mock.Anything).
		Return([]*order.Order{first, second}, nil).Once()
	cocktailRepo.On("Get", mock.Anything, cocktailID).Return(drink, nil).Twice()

	channel := new(MockNotificationChannel)
	channel.On("Post", mock.Anything, first, drink).Return(int64(100), nil).Once()
	channel.On("Post", mock.Anything, second, drink).Return(int64(101), nil).Once()
	orderRepo.On("UpdateNotificationMessage", mock.Anything, first).Return(nil).Once()
	orderRepo.On("UpdateNotificationMessage", mock.Anything, second).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CocktailRepository").Return(cocktailRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRepostNotificationsCommandHandler(factory, channel, testLogger())
	err := h.Handle(ctx, commands.NewRepostNotificationsCommand())

	require.NoError(t, err)
	require.NotNil(t, first.NotificationMessageID())
	assert.Equal(t, int64(100), *first.NotificationMessageID())
	require.NotNil(t, second.NotificationMessageID())
	assert.Equal(t, int64(101), *second.NotificationMessageID())

	orderRepo.AssertExpectations(t)
	channel.AssertExpectations(t)
}

func TestRepostNotificationsCommandHandler_Handle_SkipsOrderWithUnknownCocktail(t *testing.T) {
	ctx := t.Context()
	knownCocktailID := kernel.NewUUID()
	lostCocktailID := kernel.NewUUID()
	drink := testCocktail(knownCocktailID)

	broken := restoredOrder(t, kernel.NewUUID(), lostCocktailID, order.Queued, nil)
	healthy := restoredOrder(t, kernel.NewUUID(), knownCocktailID, order.Queued, nil)

	orderRepo := new(MockOrderRepository)
	cocktailRepo := new(MockCocktailRepository)
	orderRepo.On("GetAllAwaitingNotification", mock.Anything).
		Return([]*order.Order{broken, healthy}, nil).Once()
	cocktailRepo.On("Get", mock.Anything, lostCocktailID).
		Return(nil, errs.NewObjectNotFoundError("cocktail", lostCocktailID.String())).Once()
	cocktailRepo.On("Get", mock.Anything, knownCocktailID).Return(drink, nil).Once()

	channel := new(MockNotificationChannel)
	channel.On("Post", mock.Anything, healthy, drink).Return(int64(5), nil).Once()
	orderRepo.On("UpdateNotificationMessage", mock.Anything, healthy).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CocktailRepository").Return(cocktailRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRepostNotificationsCommandHandler(factory, channel, testLogger())
	err := h.Handle(ctx, commands.NewRepostNotificationsCommand())

	require.NoError(t, err)
	assert.Nil(t, broken.NotificationMessageID())
	channel.AssertNotCalled(t, "Post", mock.Anything, broken, mock.Anything)
	orderRepo.AssertExpectations(t)
}

func TestRepostNotificationsCommandHandler_Handle_ChannelStillDown(t *testing.T) {
	// A failing post leaves the order for the next sweep, no error bubbles up.
	ctx := t.Context()
	cocktailID := kernel.NewUUID()
	drink := testCocktail(cocktailID)
	waiting := restoredOrder(t, kernel.NewUUID(), cocktailID, order.Queued, nil)

	orderRepo := new(MockOrderRepository)
	cocktailRepo := new(MockCocktailRepository)
	orderRepo.On("GetAllAwaitingNotification", mock.Anything).
		Return([]*order.Order{waiting}, nil).Once()
	cocktailRepo.On("Get", mock.Anything, cocktailID).Return(drink, nil).Once()

	channel := new(MockNotificationChannel)
	channel.On("Post", mock.Anything, waiting, drink).
		Return(int64(0), ports.ErrChannelUnavailable).Once()

	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CocktailRepository").Return(cocktailRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRepostNotificationsCommandHandler(factory, channel, testLogger())
	err := h.Handle(ctx, commands.NewRepostNotificationsCommand())

	require.NoError(t, err)
	assert.Nil(t, waiting.NotificationMessageID())
	orderRepo.AssertNotCalled(t, "UpdateNotificationMessage", mock.Anything, mock.Anything)
}

func TestRepostNotificationsCommandHandler_Handle_OrderFinishedDuringSweep(t *testing.T) {
	// The sweep read a Queued order, but a concurrent transition finished it
	// before the token write landed. The conditional write rejects the token
	// and the freshly posted message is deleted, so no terminal order ends up
	// owning a live message in the chat.
	ctx := t.Context()
	cocktailID := kernel.NewUUID()
	drink := testCocktail(cocktailID)
	stale := restoredOrder(t, kernel.NewUUID(), cocktailID, order.Queued, nil)

	orderRepo := new(MockOrderRepository)
	cocktailRepo := new(MockCocktailRepository)
	orderRepo.On("GetAllAwaitingNotification", mock.Anything).
		Return([]*order.Order{stale}, nil).Once()
	cocktailRepo.On("Get", mock.Anything, cocktailID).Return(drink, nil).Once()

	channel := new(MockNotificationChannel)
	channel.On("Post", mock.Anything, stale, drink).Return(int64(55), nil).Once()
	orderRepo.On("UpdateNotificationMessage", mock.Anything, stale).
		Return(ports.ErrOrderStatusConflict).Once()
	channel.On("Remove", mock.Anything, int64(55)).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CocktailRepository").Return(cocktailRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRepostNotificationsCommandHandler(factory, channel, testLogger())
	err := h.Handle(ctx, commands.NewRepostNotificationsCommand())

	require.NoError(t, err)
	assert.Nil(t, stale.NotificationMessageID())
	orderRepo.AssertExpectations(t)
	channel.AssertExpectations(t)
}

func TestRepostNotificationsCommandHandler_Handle_SweepQueryFails(t *testing.T) {
	ctx := t.Context()
	queryErr := errors.New("connection refused")

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllAwaitingNotification", mock.Anything).Return(nil, queryErr).Once()

	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRepostNotificationsCommandHandler(factory, new(MockNotificationChannel), testLogger())
	err := h.Handle(ctx, commands.NewRepostNotificationsCommand())

	require.ErrorIs(t, err, queryErr)
}
