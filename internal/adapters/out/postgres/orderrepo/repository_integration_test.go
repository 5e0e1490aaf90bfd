package orderrepo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including the concurrency paths that sqlite or
// mocks cannot exercise.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&orderrepo.OrderCounterDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.repository = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_counters CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) mustMoney(s string) kernel.Money {
	m, err := kernel.NewMoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(seq int) *order.Order {
	customer, err := order.NewCustomer("John Doe", "john@example.com", "+1-555-0100", nil)
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), "Widget", "SKU-1", 2, suite.mustMoney("10.00"))
	suite.Require().NoError(err)

	number, err := order.NewNumber(time.Now().UTC(), seq)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), number, customer,
		[]order.Item{item}, suite.mustMoney("1.00"), suite.mustMoney("2.00"),
		"card", "1 Main St", "1 Main St", "leave at door")
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder(1)

	err := suite.repository.Add(ctx, o)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(o.ID()))
	suite.Equal(o.Number().String(), loaded.Number().String())
	suite.Equal(order.StatusPending, loaded.Status())
	suite.Equal("John Doe", loaded.Customer().Name())
	suite.Len(loaded.Items(), 1)
	suite.Equal(2, loaded.Items()[0].Quantity())
	suite.Equal("23.00", loaded.Total().String()) // 20.00 + 1.00 tax + 2.00 shipping
	suite.False(loaded.StockRestored())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndFlag() {
	ctx := context.Background()
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.ChangeStatus(order.StatusCancelled))
	o.MarkStockRestored()
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusCancelled, loaded.Status())
	suite.True(loaded.StockRestored())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_CascadesToItems() {
	ctx := context.Background()
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))

	_, err := suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var itemCount int64
	err = suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error
	suite.Require().NoError(err)
	suite.Zero(itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_SequentialWithinDay() {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	first, err := suite.repository.NextOrderNumber(ctx, day)
	suite.Require().NoError(err)
	second, err := suite.repository.NextOrderNumber(ctx, day)
	suite.Require().NoError(err)

	suite.Equal("ORD202403150001", first.String())
	suite.Equal("ORD202403150002", second.String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_ResetsPerDay() {
	ctx := context.Background()

	_, err := suite.repository.NextOrderNumber(ctx, time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	next, err := suite.repository.NextOrderNumber(ctx, time.Date(2024, 3, 16, 0, 30, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Equal("ORD202403160001", next.String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_ConcurrentAllocationsAreUnique() {
	const workers = 20
	day := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	results := make(chan string, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each goroutine allocates inside its own transaction, the
			// way order creation does.
			tx := suite.db.Begin()
			repo := orderrepo.NewGormOrderRepository(tx)
			number, err := repo.NextOrderNumber(context.Background(), day)
			if err != nil {
				tx.Rollback()
				results <- fmt.Sprintf("error: %v", err)
				return
			}
			if err := tx.Commit().Error; err != nil {
				results <- fmt.Sprintf("error: %v", err)
				return
			}
			results <- number.String()
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, workers)
	for r := range results {
		suite.NotContains(r, "error")
		suite.False(seen[r], "order number %s allocated twice", r)
		seen[r] = true
	}
	suite.Len(seen, workers)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_RolledBackAllocationIsReleased() {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tx := suite.db.Begin()
	_, err := orderrepo.NewGormOrderRepository(tx).NextOrderNumber(ctx, day)
	suite.Require().NoError(err)
	suite.Require().NoError(tx.Rollback().Error)

	number, err := suite.repository.NextOrderNumber(ctx, day)
	suite.Require().NoError(err)
	suite.Equal("ORD202403150001", number.String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesAccess() {
	ctx := context.Background()
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	tx1 := suite.db.Begin()
	_, err := orderrepo.NewGormOrderRepository(tx1).GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)

	// Second locker must wait until tx1 finishes.
	acquired := make(chan struct{})
	go func() {
		tx2 := suite.db.Begin()
		defer tx2.Rollback()
		_, lockErr := orderrepo.NewGormOrderRepository(tx2).GetForUpdate(ctx, o.ID())
		suite.NoError(lockErr)
		close(acquired)
	}()

	select {
	case <-acquired:
		suite.Fail("second transaction acquired the row lock while the first still held it")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(tx1.Rollback().Error)

	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		suite.Fail("second transaction never acquired the row lock")
	}
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
