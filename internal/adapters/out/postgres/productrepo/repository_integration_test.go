package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// ProductRepositoryIntegrationTestSuite verifies the stock mutations under
// real PostgreSQL concurrency. The oversell guard only means something when
// many connections hit the same row at once.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.repository = productrepo.NewGormProductRepository(db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products").Error
	suite.Require().NoError(err)
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct(stock int) *product.Product {
	price, err := kernel.NewMoneyFromString("10.00")
	suite.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), "Widget", "SKU-"+kernel.NewUUID().String(), price, stock)
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), p)
	suite.Require().NoError(err)
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) stockOf(id kernel.UUID) int {
	loaded, err := suite.repository.Get(context.Background(), id)
	suite.Require().NoError(err)
	return loaded.Stock()
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_Succeeds() {
	p := suite.newProduct(10)

	err := suite.repository.DecrementStock(context.Background(), p.ID(), 4)
	suite.Require().NoError(err)
	suite.Equal(6, suite.stockOf(p.ID()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_ExactlyToZero() {
	p := suite.newProduct(5)

	err := suite.repository.DecrementStock(context.Background(), p.ID(), 5)
	suite.Require().NoError(err)
	suite.Zero(suite.stockOf(p.ID()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_Shortfall() {
	p := suite.newProduct(3)

	err := suite.repository.DecrementStock(context.Background(), p.ID(), 5)
	suite.Require().ErrorIs(err, errs.ErrInsufficientStock)

	var stockErr *errs.InsufficientStockError
	suite.Require().ErrorAs(err, &stockErr)
	suite.Equal(5, stockErr.Requested)
	suite.Equal(3, stockErr.Available)
	suite.Equal("Widget", stockErr.ProductName)

	// The failed decrement must not have touched the row.
	suite.Equal(3, suite.stockOf(p.ID()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_MissingProduct() {
	err := suite.repository.DecrementStock(context.Background(), kernel.NewUUID(), 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_ConcurrentNeverOversells() {
	const workers = 30
	p := suite.newProduct(10) // only 10 units for 30 one-unit buyers

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, failed := 0, 0

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := suite.repository.DecrementStock(context.Background(), p.ID(), 1)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else {
				suite.ErrorIs(err, errs.ErrInsufficientStock)
				failed++
			}
		}()
	}
	wg.Wait()

	suite.Equal(10, succeeded)
	suite.Equal(20, failed)
	suite.Zero(suite.stockOf(p.ID()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRestoreStock_AddsBack() {
	p := suite.newProduct(2)

	err := suite.repository.RestoreStock(context.Background(), p.ID(), 3)
	suite.Require().NoError(err)
	suite.Equal(5, suite.stockOf(p.ID()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRestoreStock_MissingProductIsSilent() {
	err := suite.repository.RestoreStock(context.Background(), kernel.NewUUID(), 3)
	suite.Require().NoError(err)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_RollsBackWithTransaction() {
	p := suite.newProduct(10)

	tx := suite.db.Begin()
	repo := productrepo.NewGormProductRepository(tx)
	err := repo.DecrementStock(context.Background(), p.ID(), 4)
	suite.Require().NoError(err)
	suite.Require().NoError(tx.Rollback().Error)

	suite.Equal(10, suite.stockOf(p.ID()))
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
