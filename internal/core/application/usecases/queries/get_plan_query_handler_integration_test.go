package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/planrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopAggregateTracker satisfies the repositories' tracker dependency for
// tests that seed data outside a unit of work.
type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

type GetPlanQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPlanQueryHandler
}

func (suite *GetPlanQueryHandlerTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&planrepo.PlanDTO{}))

	suite.handler = queries.NewGetPlanQueryHandler(db)
}

func (suite *GetPlanQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPlanQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE plans").Error)
}

func (suite *GetPlanQueryHandlerTestSuite) seedPlan() *fulfillment.Plan {
	packaging := fulfillment.PackagingOption{
		ID:             "pkg_standard",
		Type:           fulfillment.PackagingStandard,
		Material:       "corrugated_cardboard",
		Dimensions:     fulfillment.Dimensions{Length: 17, Width: 14, Height: 11},
		Weight:         0.5,
		Cost:           3.50,
		Protection:     fulfillment.ProtectionBasic,
		Sustainability: 0.6,
	}
	shipping := fulfillment.ShippingOption{
		ID:                "ship_ups_ground",
		Carrier:           "UPS",
		Service:           "Ground",
		EstimatedDays:     3,
		Cost:              12.50,
		TrackingIncluded:  true,
		InsuranceIncluded: true,
		Sustainability:    fulfillment.ShippingSustainabilityStandard,
		Reliability:       0.95,
	}
	alternative := fulfillment.ShippingOption{
		ID:             "ship_usps_ground",
		Carrier:        "USPS",
		Service:        "Ground Advantage",
		EstimatedDays:  4,
		Cost:           8.50,
		Sustainability: fulfillment.ShippingSustainabilityStandard,
		Reliability:    0.92,
	}

	plan, err := fulfillment.NewPlan(
		kernel.NewUUID(),
		kernel.NewUUID(),
		packaging,
		shipping,
		nil,
		[]fulfillment.ShippingOption{alternative},
		time.Now().UTC().AddDate(0, 0, 3).Truncate(time.Second),
		2.7,
		0.9,
		0.75,
		[]string{"Use corrugated_cardboard packaging with basic protection", "Ship via UPS Ground"},
	)
	suite.Require().NoError(err)

	repository := planrepo.NewGormPlanRepository(suite.db, noopAggregateTracker{})
	suite.Require().NoError(repository.Add(context.Background(), plan))
	return plan
}

func (suite *GetPlanQueryHandlerTestSuite) TestHandle_ExistingPlan_ReturnsReadModel() {
	plan := suite.seedPlan()

	query, err := queries.NewGetPlanQuery(plan.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(plan.ID(), result.ID)
	suite.Equal(plan.OrderID(), result.OrderID)

	suite.Equal("pkg_standard", result.RecommendedPackaging.ID)
	suite.Equal("standard", result.RecommendedPackaging.Type)
	suite.Equal("basic", result.RecommendedPackaging.Protection)
	suite.InDelta(3.50, result.RecommendedPackaging.Cost, 1e-9)
	suite.InDelta(17, result.RecommendedPackaging.Dimensions.Length, 1e-9)

	suite.Equal("ship_ups_ground", result.RecommendedShipping.ID)
	suite.Equal("UPS", result.RecommendedShipping.Carrier)
	suite.Equal(3, result.RecommendedShipping.EstimatedDays)
	suite.True(result.RecommendedShipping.TrackingIncluded)
	suite.InDelta(0.95, result.RecommendedShipping.Reliability, 1e-9)

	suite.Empty(result.PackagingAlternatives)
	suite.Require().Len(result.ShippingAlternatives, 1)
	suite.Equal("ship_usps_ground", result.ShippingAlternatives[0].ID)

	suite.InDelta(16.0, result.TotalCost, 1e-9)
	suite.WithinDuration(plan.EstimatedDelivery(), result.EstimatedDelivery, time.Second)
	suite.InDelta(2.7, result.CarbonFootprint, 1e-9)
	suite.InDelta(0.9, result.Confidence, 1e-9)
	suite.InDelta(0.75, result.OptimizationScore, 1e-9)
	suite.Equal(plan.Instructions(), result.Instructions)
}

func (suite *GetPlanQueryHandlerTestSuite) TestHandle_NonExistentPlan_ReturnsNotFoundError() {
	query, err := queries.NewGetPlanQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetPlanQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPlanQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetPlanQuery constructor")
}

func TestGetPlanQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPlanQueryHandlerTestSuite))
}
