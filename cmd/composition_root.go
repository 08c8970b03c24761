package cmd

import (
	"log/slog"

	httpadapter "storeadmin/internal/adapters/in/http"
	"storeadmin/internal/adapters/out/notifications"
	"storeadmin/internal/adapters/out/postgres"
	"storeadmin/internal/adapters/out/postgres/orderrepo"
	"storeadmin/internal/core/application/usecases/commands"
	"storeadmin/internal/core/application/usecases/queries"
	"storeadmin/internal/core/application/workingset"
	"storeadmin/internal/core/domain/services"
	"storeadmin/internal/core/ports"
	"storeadmin/internal/jobs"

	"gorm.io/gorm"
)

// DashboardCache is the summary cache as seen by both the dashboard query and
// the commands that make it stale.
type DashboardCache interface {
	queries.SummaryCache
	ports.SummaryInvalidator
}

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	orders     *workingset.OrderSet
	feed       *notifications.Feed
	publisher  ports.EventPublisher
	cache      DashboardCache
	projector  services.StatusProjector
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. publisher may be nil to run
// without the event bus.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	cache DashboardCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		orders:     workingset.New(),
		feed:       notifications.NewFeed(config.NotificationCapacity, logger),
		publisher:  publisher,
		cache:      cache,
		projector:  services.NewStatusProjector(),
		logger:     logger,
	}
}

// OrderWorkingSet is the shared in-memory order list.
func (c *CompositionRoot) OrderWorkingSet() *workingset.OrderSet {
	return c.orders
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.orders, c.feed, c.publisher, c.cache, c.logger)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f, c.feed, c.cache, c.logger)
}

func (c *CompositionRoot) CreateRefreshOrdersCommandHandler() commands.RefreshOrdersCommandHandler {
	return commands.NewRefreshOrdersCommandHandler(orderrepo.NewGormOrderRepository(c.gormDB), c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders, c.projector)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.orders, c.projector)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB, c.config.LowStockThreshold)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.gormDB, c.cache, c.config.LowStockThreshold, c.logger)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.feed)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	deleteProduct := c.CreateDeleteProductCommandHandler()
	listOrders := c.CreateListOrdersQueryHandler()
	orderDetails := c.CreateGetOrderDetailsQueryHandler()
	listProducts := c.CreateListProductsQueryHandler()
	listCustomers := c.CreateListCustomersQueryHandler()
	dashboard := c.CreateGetDashboardSummaryQueryHandler()
	listNotifications := c.CreateListNotificationsQueryHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		DeleteProduct:     deleteProduct,
		ListOrders:        listOrders,
		GetOrderDetails:   orderDetails,
		ListProducts:      listProducts,
		ListCustomers:     listCustomers,
		DashboardSummary:  dashboard,
		ListNotifications: listNotifications,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	refresh := c.CreateRefreshOrdersCommandHandler()
	dashboard := c.CreateGetDashboardSummaryQueryHandler()

	return jobs.NewJobManager(refresh, dashboard, jobs.Schedules{
		WorkingSetRefresh: c.config.Jobs.WorkingSetRefresh,
		DashboardSummary:  c.config.Jobs.DashboardSummary,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
