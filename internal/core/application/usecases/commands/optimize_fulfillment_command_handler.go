package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/services"
)

// OptimizeFulfillmentCommandHandler runs the full optimization pipeline:
// candidate generation, pair scoring, and plan assembly. The resulting plan
// is persisted for later shipment creation.
//
// Persistence is best-effort: a storage failure is logged but the computed
// plan is still returned to the caller, so an optimization result is never
// lost to a database hiccup.
//
// Example:
//
//	handler := NewOptimizeFulfillmentCommandHandler(
//	    services.NewShippingCatalog(distances, rates), uowFactory, logger)
//	cmd, _ := NewOptimizeFulfillmentCommand(request)
//
//	plan, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("optimization failed: %w", err)
//	}
type OptimizeFulfillmentCommandHandler struct {
	packagingCatalog services.PackagingCatalog
	shippingCatalog  services.ShippingCatalog
	optimizer        services.Optimizer
	assembler        services.PlanAssembler
	uowFactory       PlanUoWFactory
	logger           *slog.Logger
}

// NewOptimizeFulfillmentCommandHandler creates a handler for fulfillment optimization.
// Requires a shipping catalog wired to distance and rate collaborators,
// a PlanUoWFactory for persistence, and a logger for persistence warnings.
func NewOptimizeFulfillmentCommandHandler(
	shippingCatalog services.ShippingCatalog,
	uowFactory PlanUoWFactory,
	logger *slog.Logger,
) OptimizeFulfillmentCommandHandler {
	return OptimizeFulfillmentCommandHandler{
		packagingCatalog: services.NewPackagingCatalog(),
		shippingCatalog:  shippingCatalog,
		optimizer:        services.NewOptimizer(),
		assembler:        services.NewPlanAssembler(),
		uowFactory:       uowFactory,
		logger:           logger,
	}
}

// Handle processes the optimization command and returns the assembled plan.
// Candidate generation failures and invalid requests abort the pipeline;
// plan persistence failures do not.
func (h *OptimizeFulfillmentCommandHandler) Handle(
	ctx context.Context,
	cmd OptimizeFulfillmentCommand,
) (*fulfillment.Plan, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	request := cmd.Request()

	packagingOptions, err := h.packagingCatalog.Generate(request)
	if err != nil {
		return nil, err
	}

	packageWeight := packagingOptions[0].Weight + request.TotalWeight()
	shippingOptions, err := h.shippingCatalog.Generate(ctx, request, packageWeight)
	if err != nil {
		return nil, err
	}

	selection, err := h.optimizer.Evaluate(request, packagingOptions, shippingOptions)
	if err != nil {
		return nil, err
	}

	plan, err := h.assembler.Assemble(request, selection, packagingOptions, shippingOptions)
	if err != nil {
		return nil, err
	}

	if err := h.persist(ctx, plan); err != nil {
		h.logger.WarnContext(ctx, "plan persistence failed, returning unpersisted plan",
			slog.String("planID", plan.ID().String()),
			slog.String("orderID", plan.OrderID().String()),
			slog.Any("error", err),
		)
	}

	return plan, nil
}

func (h *OptimizeFulfillmentCommandHandler) persist(ctx context.Context, plan *fulfillment.Plan) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PlanRepository().Add(ctx, plan); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
