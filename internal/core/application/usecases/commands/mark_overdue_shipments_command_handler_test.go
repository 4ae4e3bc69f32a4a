package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func overdueShipment(t *testing.T, estimatedDelivery time.Time) *shipment.Shipment {
	t.Helper()

	packaging := fulfillment.PackagingOption{
		ID:             "pkg_standard",
		Type:           fulfillment.PackagingStandard,
		Material:       "corrugated cardboard",
		Dimensions:     fulfillment.Dimensions{Length: 24, Width: 20, Height: 16},
		Weight:         0.3,
		Cost:           3.50,
		Protection:     fulfillment.ProtectionBasic,
		Sustainability: 0.6,
	}
	shipping := fulfillment.ShippingOption{
		ID:             "ship_usps_ground",
		Carrier:        "USPS",
		Service:        "Ground Advantage",
		EstimatedDays:  4,
		Cost:           8.50,
		Sustainability: fulfillment.ShippingSustainabilityStandard,
		Reliability:    0.92,
	}

	plan, err := fulfillment.NewPlan(
		kernel.NewUUID(), kernel.NewUUID(), packaging, shipping,
		nil, nil, estimatedDelivery, 0.25, 0.8, 0.6, nil)
	require.NoError(t, err)

	shp, err := shipment.NewShipment(kernel.NewUUID(), plan, estimatedDelivery.AddDate(0, 0, -4))
	require.NoError(t, err)
	return shp
}

func TestMarkOverdueShipmentsCommandHandler_Handle_FlagsOnlyOverdue(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkOverdueShipmentsCommand(48 * time.Hour)

	overdue := overdueShipment(t, time.Now().AddDate(0, 0, -5))
	onTime := overdueShipment(t, time.Now().AddDate(0, 0, 2))

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetAllUndelivered", mock.Anything).Return([]*shipment.Shipment{overdue, onTime}, nil).Once(),
		repo.On("Update", mock.Anything, overdue).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOverdueShipmentsCommandHandler(factory, discardLogger())
	flagged, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, flagged)
	require.Equal(t, shipment.Exception, overdue.Status())
	require.Equal(t, shipment.Preparing, onTime.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkOverdueShipmentsCommandHandler_Handle_SkipsFailedShipments(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkOverdueShipmentsCommand(0)

	first := overdueShipment(t, time.Now().AddDate(0, 0, -3))
	second := overdueShipment(t, time.Now().AddDate(0, 0, -3))

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetAllUndelivered", mock.Anything).Return([]*shipment.Shipment{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(errors.New("update error")).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOverdueShipmentsCommandHandler(factory, discardLogger())
	flagged, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, flagged)
	repo.AssertExpectations(t)
}
