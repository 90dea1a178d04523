package cmd

import (
	"log/slog"

	"fastorder/internal/adapters/out/httpclient"
	"fastorder/internal/adapters/out/kafka"
	"fastorder/internal/adapters/out/postgres"
	"fastorder/internal/core/application/usecases/commands"
	"fastorder/internal/core/application/usecases/queries"
	"fastorder/internal/core/ports"
	"fastorder/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	stock      ports.StockGateway
	customers  ports.CustomerProvider
	payments   ports.PaymentGateway
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var publisher ports.OrderEventPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewOrderPublisher([]string{config.KafkaHost}, config.KafkaOrderChangedTopic)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		stock:      httpclient.NewStockClient(config.StockServiceURL),
		customers:  httpclient.NewCustomerClient(config.CustomerServiceURL),
		payments:   httpclient.NewPaymentClient(config.PaymentServiceURL),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.customers, c.stock, c.payments)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.stock, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateStaleOrdersJob() *jobs.StaleOrdersJob {
	return jobs.NewStaleOrdersJob(c.CreateGetAllOrdersQueryHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
