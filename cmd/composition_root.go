package cmd

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
	"storefront/internal/pkg/security"
)

// CompositionRoot wires adapters into use case handlers. Each handler gets
// the narrowest unit of work interface it declares, adapted from the shared
// gorm factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	tokens     *security.TokenIssuer
	config     Config
	logger     *slog.Logger

	kafkaPublisher *kafka.Publisher
}

// NewCompositionRoot builds the object graph. The Kafka publisher is only
// created when a broker host is configured; handlers otherwise receive a
// publisher that drops events.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	tokens *security.TokenIssuer,
	logger *slog.Logger,
) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		config:     config,
		logger:     logger,
	}

	if config.KafkaHost != "" {
		root.kafkaPublisher = kafka.NewPublisher([]string{config.KafkaHost}, config.KafkaOrderEventTopic)
		root.publisher = root.kafkaPublisher
	} else {
		root.publisher = nopOrderEventPublisher{}
	}

	return root
}

// Close releases adapter resources held by the root.
func (c *CompositionRoot) Close() error {
	if c.kafkaPublisher != nil {
		return c.kafkaPublisher.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		productrepo.NewGormProductRepository(c.gormDB),
		c.publisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() commands.DeleteCategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateSettingsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockProductsQueryHandler() queries.GetLowStockProductsQueryHandler {
	return queries.NewGetLowStockProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP adapter over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.Handlers{
			CreateOrder:       c.CreateCreateOrderCommandHandler(),
			UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
			DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
			CreateProduct:     c.CreateCreateProductCommandHandler(),
			UpdateProduct:     c.CreateUpdateProductCommandHandler(),
			DeleteProduct:     c.CreateDeleteProductCommandHandler(),
			CreateCategory:    c.CreateCreateCategoryCommandHandler(),
			UpdateCategory:    c.CreateUpdateCategoryCommandHandler(),
			DeleteCategory:    c.CreateDeleteCategoryCommandHandler(),
			RegisterUser:      c.CreateRegisterUserCommandHandler(),
			UpdateUser:        c.CreateUpdateUserCommandHandler(),
			DeleteUser:        c.CreateDeleteUserCommandHandler(),
			UpdateSettings:    c.CreateUpdateSettingsCommandHandler(),

			GetOrder:          c.CreateGetOrderQueryHandler(),
			ListOrders:        c.CreateListOrdersQueryHandler(),
			GetProduct:        c.CreateGetProductQueryHandler(),
			ListProducts:      c.CreateListProductsQueryHandler(),
			ListCategories:    c.CreateListCategoriesQueryHandler(),
			GetLowStock:       c.CreateGetLowStockProductsQueryHandler(),
			ListUsers:         c.CreateListUsersQueryHandler(),
			GetUser:           c.CreateGetUserQueryHandler(),
			GetSettings:       c.CreateGetSettingsQueryHandler(),
			GetDashboardStats: c.CreateGetDashboardStatsQueryHandler(),
		},
		userrepo.NewGormUserRepository(c.gormDB),
		c.tokens,
		c.config.LowStockThreshold,
		c.logger,
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLowStockProductsQueryHandler(),
		c.gormDB,
		c.config.LowStockThreshold,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

// nopOrderEventPublisher drops events when no broker is configured.
type nopOrderEventPublisher struct{}

func (nopOrderEventPublisher) PublishOrderCreated(context.Context, *order.Order) error {
	return nil
}

func (nopOrderEventPublisher) PublishOrderStatusChanged(context.Context, *order.Order, order.Status) error {
	return nil
}
