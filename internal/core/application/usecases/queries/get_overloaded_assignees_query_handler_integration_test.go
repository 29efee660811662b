package queries_test

import (
	"context"
	"testing"
	"time"

	"governance/internal/adapters/out/postgres"
	"governance/internal/adapters/out/postgres/governancerepo"
	"governance/internal/adapters/out/postgres/workorderrepo"
	"governance/internal/core/application/usecases/queries"
	"governance/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOverloadedAssigneesQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOverloadedAssigneesQueryHandler
}

func (suite *GetOverloadedAssigneesQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
	suite.handler = queries.NewGetOverloadedAssigneesQueryHandler(db)
}

func (suite *GetOverloadedAssigneesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE design_jobs, work_orders").Error)
}

func (suite *GetOverloadedAssigneesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOverloadedAssigneesQueryHandlerTestSuite) TestHandle_ReportsOnlyAssigneesAboveLimit() {
	busyDesigner, calmDesigner := kernel.NewUUID(), kernel.NewUUID()
	busyFactory, calmFactory := kernel.NewUUID(), kernel.NewUUID()

	suite.seedDesignJobs(busyDesigner, "in_progress", 3)
	suite.seedDesignJobs(calmDesigner, "review", 2)
	suite.seedDesignJobs(calmDesigner, "completed", 5)
	suite.seedWorkOrders(busyFactory, "in_production", 4)
	suite.seedWorkOrders(busyFactory, "rework", 1)
	suite.seedWorkOrders(calmFactory, "queued", 1)
	suite.seedWorkOrders(calmFactory, "shipped", 6)
	suite.seedWorkOrders(calmFactory, "completed", 6)

	query, err := queries.NewGetOverloadedAssigneesQuery(2, 2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(queries.RoleDesigner, result[0].Role)
	suite.Equal(busyDesigner, result[0].AssigneeID)
	suite.Equal(3, result[0].ActiveCount)
	suite.Equal(queries.RoleManufacturer, result[1].Role)
	suite.Equal(busyFactory, result[1].AssigneeID)
	suite.Equal(5, result[1].ActiveCount)
}

func (suite *GetOverloadedAssigneesQueryHandlerTestSuite) TestHandle_EmptyTables_ReturnsEmptySlice() {
	query, err := queries.NewGetOverloadedAssigneesQuery(0, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOverloadedAssigneesQueryHandlerTestSuite) TestHandle_UnconstructedQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOverloadedAssigneesQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOverloadedAssigneesQueryIsNotConstructed)
}

func (suite *GetOverloadedAssigneesQueryHandlerTestSuite) seedDesignJobs(assignee kernel.UUID, status string, n int) {
	for range n {
		suite.Require().NoError(suite.db.Create(&governancerepo.DesignJobDTO{
			ID:          kernel.NewUUID().Bytes(),
			OrderID:     kernel.NewUUID().Bytes(),
			OrderItemID: kernel.NewUUID().Bytes(),
			AssigneeID:  assignee.Bytes(),
			Status:      status,
		}).Error)
	}
}

func (suite *GetOverloadedAssigneesQueryHandlerTestSuite) seedWorkOrders(manufacturer kernel.UUID, status string, n int) {
	for range n {
		suite.Require().NoError(suite.db.Create(&workorderrepo.WorkOrderDTO{
			ID:             kernel.NewUUID().Bytes(),
			OrderID:        kernel.NewUUID().Bytes(),
			OrderItemID:    kernel.NewUUID().Bytes(),
			ManufacturerID: manufacturer.Bytes(),
			Quantity:       1,
			Status:         status,
		}).Error)
	}
}

func TestGetOverloadedAssigneesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOverloadedAssigneesQueryHandlerTestSuite))
}
