package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "storeadmin/internal/adapters/out/postgres"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/ports"
	"storeadmin/internal/pkg/errs"
	"storeadmin/internal/seed"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the Unit of Work, the schema and
// the seed loader against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_items, orders, product_inventory, products, customers",
	).Error)

	seeded, err := postgres_adapter.Seed(context.Background(), suite.db, postgres_adapter.Dataset{
		Products:  seed.Products(),
		Orders:    seed.Orders(),
		Customers: seed.Customers(),
	})
	suite.Require().NoError(err)
	suite.Require().True(seeded)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSeed_IsIdempotent() {
	seeded, err := postgres_adapter.Seed(context.Background(), suite.db, postgres_adapter.Dataset{Orders: seed.Orders()})

	suite.Require().NoError(err)
	suite.False(seeded)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitStatusChange() {
	ctx := context.Background()
	uow := suite.factory.Create()
	id := kernel.MustNewID("ORD-2023-004")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().UpdateStatus(ctx, id, order.Processing, 0))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(order.Processing, suite.findOrder(id).Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackStatusChange() {
	ctx := context.Background()
	uow := suite.factory.Create()
	id := kernel.MustNewID("ORD-2023-004")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().UpdateStatus(ctx, id, order.Cancelled, 0))
	suite.Require().NoError(uow.Rollback(ctx))

	o := suite.findOrder(id)
	suite.Equal(order.Pending, o.Status())
	suite.Equal(int64(0), o.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeleteProductWithInventory() {
	ctx := context.Background()
	uow := suite.factory.Create()
	id := kernel.MustNewID("6")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Delete(ctx, id))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Zero(suite.count("products", "id = ?", "6"))
	suite.Zero(suite.count("product_inventory", "product_id = ?", "6"))
	suite.Equal(int64(5), suite.count("products", "1 = 1"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeleteUnknownProduct() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	err := uow.ProductRepository().Delete(ctx, kernel.MustNewID("404"))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSeed_WritesCatalogueAndCustomers() {
	suite.Equal(int64(6), suite.count("products", "1 = 1"))
	suite.Equal(int64(1), suite.count("products", "id = ? AND in_stock = ?", "5", false))
	suite.Equal(int64(1), suite.count("product_inventory", "product_id = ? AND quantity = ?", "3", 8))
	suite.Equal(int64(5), suite.count("customers", "1 = 1"))
	suite.Equal(int64(1), suite.count("customers", "name = ?", "John Smith"))
}

func (suite *UnitOfWorkIntegrationTestSuite) findOrder(id kernel.ID) *order.Order {
	orders, err := suite.factory.Create().OrderRepository().GetAll(context.Background())
	suite.Require().NoError(err)
	for _, o := range orders {
		if o.ID().IsEqual(id) {
			return o
		}
	}
	suite.FailNow("order not stored", id.String())
	return nil
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table, where string, args ...any) int64 {
	var n int64
	suite.Require().NoError(suite.db.Table(table).Where(where, args...).Count(&n).Error)
	return n
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
