package cmd

import (
	"log/slog"

	httpin "homebar/internal/adapters/in/http"
	telegramin "homebar/internal/adapters/in/telegram"
	"homebar/internal/adapters/out/postgres"
	telegramout "homebar/internal/adapters/out/telegram"
	"homebar/internal/core/application/usecases/commands"
	"homebar/internal/core/application/usecases/queries"
	"homebar/internal/core/ports"
	"homebar/internal/jobs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	channel    ports.NotificationChannel
	botAPI     *tgbotapi.BotAPI
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters together. botAPI may be nil when the
// Telegram bot is not configured; the channel then degrades to unavailable
// and the listener stays off.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	botAPI *tgbotapi.BotAPI,
	chatID int64,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		channel:    telegramout.NewChannel(botAPI, chatID, logger),
		botAPI:     botAPI,
		logger:     logger,
	}
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.createUoWFactory(), c.channel, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.createUoWFactory(), c.channel, c.logger)
}

func (c *CompositionRoot) CreateCancelQueuedOrderCommandHandler() commands.CancelQueuedOrderCommandHandler {
	return commands.NewCancelQueuedOrderCommandHandler(c.createUoWFactory(), c.channel, c.logger)
}

func (c *CompositionRoot) CreateRepostNotificationsCommandHandler() commands.RepostNotificationsCommandHandler {
	return commands.NewRepostNotificationsCommandHandler(c.createUoWFactory(), c.channel, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersByUserQueryHandler() queries.GetOrdersByUserQueryHandler {
	return queries.NewGetOrdersByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCocktailsQueryHandler() queries.GetAllCocktailsQueryHandler {
	return queries.NewGetAllCocktailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCocktailQueryHandler() queries.GetCocktailQueryHandler {
	return queries.NewGetCocktailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCancelQueuedOrderCommandHandler(),
		c.CreateGetOrdersByUserQueryHandler(),
		c.CreateGetAllCocktailsQueryHandler(),
		c.CreateGetCocktailQueryHandler(),
	)
}

func (c *CompositionRoot) CreateListener() *telegramin.Listener {
	return telegramin.NewListener(c.botAPI, c.CreateChangeOrderStatusCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRepostNotificationsCommandHandler(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
