package postgres_test

import (
	"context"
	"testing"
	"time"

	"onboarding/internal/adapters/out/postgres"
	"onboarding/internal/adapters/out/postgres/courierrepo"
	"onboarding/internal/adapters/out/postgres/logisticsrepo"
	"onboarding/internal/adapters/out/postgres/pendingupdaterepo"
	"onboarding/internal/adapters/out/postgres/personrepo"
	"onboarding/internal/core/domain/model/courier"
	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/pendingupdate"
	"onboarding/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction management across the
// onboarding repositories using a real PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&logisticsrepo.ProfileDTO{},
		&personrepo.PersonDTO{},
		&pendingupdaterepo.RequestDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE couriers, logistics_profiles, persons, pending_update_requests").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCourier() *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), "Acme Livraison")
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestRequest(courierID kernel.UUID) *pendingupdate.Request {
	request, err := pendingupdate.NewRequest(
		kernel.NewUUID(),
		courierID,
		[]byte(`{"commercialName":"New Name"}`),
	)
	suite.Require().NoError(err)
	return request
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CourierRepository(), "First instance should provide courier repository")
	suite.NotNil(uow1.PendingUpdateRepository(), "First instance should provide pending update repository")
	suite.NotNil(uow2.LogisticsRepository(), "Second instance should provide logistics repository")
	suite.NotNil(uow2.PersonRepository(), "Second instance should provide person repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_MultiRepositoryTransaction verifies that a decision workflow
// touching the courier and the staged request commits atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCourier := suite.createTestCourier()
	testRequest := suite.createTestRequest(testCourier.ID())

	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.CourierRepository().Add(ctx, testCourier))
	suite.Require().NoError(uow.PendingUpdateRepository().Add(ctx, testRequest))

	suite.Require().NoError(uow.Commit(ctx))

	// Both writes are visible after commit
	retrievedCourier, err := suite.factory.Create().CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(testCourier.ID(), retrievedCourier.ID())

	retrievedRequest, err := suite.factory.Create().PendingUpdateRepository().Get(ctx, testRequest.ID())
	suite.Require().NoError(err)
	suite.Equal(testRequest.ID(), retrievedRequest.ID())
}

// TestUnitOfWork_TransactionRollback verifies that rollback discards every
// write made inside the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCourier := suite.createTestCourier()
	testRequest := suite.createTestRequest(testCourier.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, testCourier))
	suite.Require().NoError(uow.PendingUpdateRepository().Add(ctx, testRequest))
	suite.Require().NoError(uow.Rollback(ctx))

	// Neither write survived
	_, err := suite.factory.Create().CourierRepository().Get(ctx, testCourier.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	_, err = suite.factory.Create().PendingUpdateRepository().Get(ctx, testRequest.ID())
	suite.Require().ErrorAs(err, &notFoundErr)
}

// TestUnitOfWork_WithoutTransaction verifies repositories work on the base
// connection when no transaction is active.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCourier := suite.createTestCourier()

	// No Begin: writes go straight to the base connection
	suite.Require().NoError(uow.CourierRepository().Add(ctx, testCourier))

	retrievedCourier, err := suite.factory.Create().CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(testCourier.ID(), retrievedCourier.ID())
}

// TestUnitOfWork_DecisionWorkflow exercises the full registration decision
// write path: load, transition, conditional update, commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DecisionWorkflow() {
	ctx := context.Background()

	testCourier := suite.createTestCourier()
	suite.Require().NoError(suite.factory.Create().CourierRepository().Add(ctx, testCourier))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.CourierRepository()
	loaded, err := repo.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(loaded.Approve())
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Approved, retrieved.Status())
	suite.Equal(2, retrieved.Version())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
