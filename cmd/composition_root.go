package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "production/internal/adapters/in/http"
	"production/internal/adapters/out/postgres"
	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"
	"production/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the process-wide singletons: the calendar, the scheduler
// that writes it and the per-order locks shared by every command handler.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	clock     kernel.Clock
	calendar  *services.ResourceCalendar
	scheduler *services.OrderScheduler
	locks     *commands.OrderLocks
	metrics   *services.MetricsCalculator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	location, err := config.Location()
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", config.Timezone, err)
	}

	clock := kernel.NewSystemClock()
	calendar := services.NewResourceCalendar()
	scheduler, err := services.NewOrderScheduler(calendar, order.NewStateMachine(clock))
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
		clock:      clock,
		calendar:   calendar,
		scheduler:  scheduler,
		locks:      commands.NewOrderLocks(),
		metrics:    services.NewMetricsCalculator(clock, location),
	}, nil
}

// Bootstrap migrates the schema, seeds the state table and loads every stored
// reservation into the calendar.
func (c *CompositionRoot) Bootstrap(ctx context.Context) error {
	if err := postgres.Migrate(c.gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := c.uowFactory.Create().OrderStateRepository().Seed(ctx); err != nil {
		return fmt.Errorf("seed order states: %w", err)
	}

	n, err := c.CreateSyncCalendarCommandHandler().Handle(ctx, commands.NewSyncCalendarCommand())
	if err != nil {
		return fmt.Errorf("hydrate calendar: %w", err)
	}
	c.logger.InfoContext(ctx, "Calendar hydrated", "reservations", n)
	return nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workCenterUoW() commands.WorkCenterUoWFactory {
	return FuncWorkCenterUoWFactory(func() commands.WorkCenterUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.scheduler, c.locks)
}

func (c *CompositionRoot) CreateRescheduleOrderCommandHandler() commands.RescheduleOrderCommandHandler {
	return commands.NewRescheduleOrderCommandHandler(c.uow(), c.scheduler, c.locks)
}

func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateCommandHandler {
	return commands.NewChangeOrderStateCommandHandler(c.orderUoW(), c.scheduler, c.locks)
}

func (c *CompositionRoot) CreateUpdateOrderProgressCommandHandler() commands.UpdateOrderProgressCommandHandler {
	return commands.NewUpdateOrderProgressCommandHandler(c.orderUoW(), c.scheduler, c.locks)
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.orderUoW(), c.locks)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoW(), c.scheduler, c.locks)
}

func (c *CompositionRoot) CreateSyncCalendarCommandHandler() commands.SyncCalendarCommandHandler {
	return commands.NewSyncCalendarCommandHandler(c.orderUoW(), c.calendar, c.locks)
}

func (c *CompositionRoot) CreateCreateWorkCenterCommandHandler() commands.CreateWorkCenterCommandHandler {
	return commands.NewCreateWorkCenterCommandHandler(c.workCenterUoW(), c.clock)
}

func (c *CompositionRoot) CreateDeleteWorkCenterCommandHandler() commands.DeleteWorkCenterCommandHandler {
	return commands.NewDeleteWorkCenterCommandHandler(c.workCenterUoW())
}

// Query handlers read outside a transaction.

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.uowFactory.Create().OrderRepository(), services.NewQueryIndex(), c.metrics)
}

func (c *CompositionRoot) CreateGetDashboardMetricsQueryHandler() queries.GetDashboardMetricsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetDashboardMetricsQueryHandler(uow.OrderRepository(), uow.WorkCenterRepository(), c.metrics)
}

func (c *CompositionRoot) CreateGetWorkCentersQueryHandler() queries.GetWorkCentersQueryHandler {
	return queries.NewGetWorkCentersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCenterConflictsQueryHandler() queries.GetCenterConflictsQueryHandler {
	return queries.NewGetCenterConflictsQueryHandler(c.calendar)
}

func (c *CompositionRoot) CreateGetOrderStatesQueryHandler() queries.GetOrderStatesQueryHandler {
	return queries.NewGetOrderStatesQueryHandler(c.uowFactory.Create().OrderStateRepository())
}

// HTTPServer wires every handler into the transport.
func (c *CompositionRoot) HTTPServer(ctx context.Context) (*httpin.Server, error) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		RescheduleOrder:     c.CreateRescheduleOrderCommandHandler(),
		ChangeOrderState:    c.CreateChangeOrderStateCommandHandler(),
		UpdateOrderProgress: c.CreateUpdateOrderProgressCommandHandler(),
		UpdateOrderDetails:  c.CreateUpdateOrderDetailsCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		CreateWorkCenter:    c.CreateCreateWorkCenterCommandHandler(),
		DeleteWorkCenter:    c.CreateDeleteWorkCenterCommandHandler(),
		GetOrders:           c.CreateGetOrdersQueryHandler(),
		GetDashboardMetrics: c.CreateGetDashboardMetricsQueryHandler(),
		GetWorkCenters:      c.CreateGetWorkCentersQueryHandler(),
		GetCenterConflicts:  c.CreateGetCenterConflictsQueryHandler(),
		GetOrderStates:      c.CreateGetOrderStatesQueryHandler(),
	}, c.metrics, doc, c.logger), nil
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSyncCalendarCommandHandler(),
		c.CreateGetDashboardMetricsQueryHandler(),
		jobs.Schedules{
			CalendarResync: c.config.CalendarResyncSpec,
			OverdueReport:  c.config.OverdueReportSpec,
		},
		c.logger,
	)
}

type FuncWorkCenterUoWFactory func() commands.WorkCenterUoW

func (f FuncWorkCenterUoWFactory) Create() commands.WorkCenterUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
