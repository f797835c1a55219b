package cmd

import (
	"fmt"
	"log/slog"

	"workorders/internal/adapters/out/lognotifier"
	"workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/activityrepo"
	"workorders/internal/adapters/out/postgres/materialrepo"
	"workorders/internal/adapters/out/postgres/timetrackingrepo"
	"workorders/internal/adapters/out/rabbitmq"
	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/services"
	"workorders/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	table      order.TransitionTable
	clock      kernel.Clock
	logger     *slog.Logger
	notifier   ports.NotificationSink
	amqpConn   *rabbitmq.Connection
}

// NewCompositionRoot wires the adapters. Notifications go to RabbitMQ when
// AMQPURL is set and to the log otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		table:      order.DefaultTransitionTable(),
		clock:      kernel.NewSystemClock(),
		logger:     logger,
	}

	if config.AMQPURL == "" {
		root.notifier = lognotifier.New(logger)
		return root, nil
	}

	conn, err := rabbitmq.Dial(config.AMQPURL, config.AMQPNotificationsExchange)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	root.amqpConn = conn
	root.notifier = rabbitmq.NewNotificationPublisher(conn.Channel(), conn.Exchange(), root.clock, logger)

	return root, nil
}

// Close releases the message broker connection, if any.
func (c *CompositionRoot) Close() error {
	if c.amqpConn == nil {
		return nil
	}
	return c.amqpConn.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAutoActionDispatcher() *services.AutoActionDispatcher {
	return services.NewAutoActionDispatcher(
		c.table,
		c.notifier,
		c.logger,
		services.WithMaterialAvailability(materialrepo.NewGormMaterialAvailabilitySource(c.gormDB)),
		services.WithTimeTracking(timetrackingrepo.NewGormTimeTrackingSource(c.gormDB)),
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(
		c.orderUoWFactory(),
		c.table,
		c.CreateAutoActionDispatcher(),
		activityrepo.NewGormActivityLog(c.gormDB, c.clock),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetAllowedNextStatusesQueryHandler() queries.GetAllowedNextStatusesQueryHandler {
	return queries.NewGetAllowedNextStatusesQueryHandler(c.gormDB, c.table)
}

func (c *CompositionRoot) CreateGetStatusCountsQueryHandler() queries.GetStatusCountsQueryHandler {
	return queries.NewGetStatusCountsQueryHandler(c.gormDB, c.table)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB, c.table, c.clock)
}

func (c *CompositionRoot) CreateGetRecentActivityQueryHandler() queries.GetRecentActivityQueryHandler {
	return queries.NewGetRecentActivityQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
