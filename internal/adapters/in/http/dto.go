package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/shipment"
)

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DimensionsDTO carries box or item dimensions in inches.
type DimensionsDTO struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ItemRequest is one order line in an optimization request.
type ItemRequest struct {
	ProductID  string        `json:"productId"`
	Quantity   int           `json:"quantity"`
	Dimensions DimensionsDTO `json:"dimensions"`
	Weight     float64       `json:"weight"`
	Fragile    bool          `json:"fragile"`
	Value      float64       `json:"value"`
}

// AddressRequest is the destination of an optimization request.
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// PreferencesRequest carries the customer's delivery preferences.
type PreferencesRequest struct {
	Speed          string `json:"speed"`
	Cost           string `json:"cost"`
	Sustainability string `json:"sustainability"`
}

// OptimizeFulfillmentRequest is the body of POST /api/v1/fulfillment/plans.
type OptimizeFulfillmentRequest struct {
	OrderID             string             `json:"orderId"`
	Items               []ItemRequest      `json:"items"`
	Destination         AddressRequest     `json:"destination"`
	Preferences         PreferencesRequest `json:"preferences"`
	SpecialRequirements []string           `json:"specialRequirements,omitempty"`
}

// PackagingOptionDTO is one packaging candidate in plan responses.
type PackagingOptionDTO struct {
	ID             string        `json:"id"`
	Type           string        `json:"type"`
	Material       string        `json:"material"`
	Dimensions     DimensionsDTO `json:"dimensions"`
	Weight         float64       `json:"weight"`
	Cost           float64       `json:"cost"`
	Protection     string        `json:"protectionLevel"`
	Customizations []string      `json:"customizations,omitempty"`
	Sustainability float64       `json:"sustainabilityScore"`
}

// ShippingOptionDTO is one shipping candidate in plan responses.
type ShippingOptionDTO struct {
	ID                string  `json:"id"`
	Carrier           string  `json:"carrier"`
	Service           string  `json:"service"`
	EstimatedDays     int     `json:"estimatedDays"`
	Cost              float64 `json:"cost"`
	TrackingIncluded  bool    `json:"trackingIncluded"`
	InsuranceIncluded bool    `json:"insuranceIncluded"`
	SignatureRequired bool    `json:"signatureRequired"`
	Sustainability    string  `json:"sustainability"`
	Reliability       float64 `json:"reliabilityScore"`
}

// PlanResponse is the representation of a fulfillment plan.
type PlanResponse struct {
	ID                    string               `json:"id"`
	OrderID               string               `json:"orderId"`
	RecommendedPackaging  PackagingOptionDTO   `json:"recommendedPackaging"`
	RecommendedShipping   ShippingOptionDTO    `json:"recommendedShipping"`
	PackagingAlternatives []PackagingOptionDTO `json:"packagingAlternatives"`
	ShippingAlternatives  []ShippingOptionDTO  `json:"shippingAlternatives"`
	TotalCost             float64              `json:"totalCost"`
	EstimatedDelivery     time.Time            `json:"estimatedDelivery"`
	CarbonFootprint       float64              `json:"carbonFootprint"`
	Confidence            float64              `json:"confidence"`
	OptimizationScore     float64              `json:"optimizationScore"`
	Instructions          []string             `json:"instructions"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	PlanID string `json:"planId"`
}

// UpdateShipmentStatusRequest is the body of PATCH /api/v1/shipments/:shipmentID/status.
type UpdateShipmentStatusRequest struct {
	Status        string `json:"status"`
	Location      string `json:"location,omitempty"`
	Description   string `json:"description,omitempty"`
	FailedAttempt bool   `json:"failedAttempt,omitempty"`
}

// TrackingEventDTO is one tracking history entry in shipment responses.
type TrackingEventDTO struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
}

// NotificationEventDTO is one customer notification in shipment responses.
type NotificationEventDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Channel   string    `json:"channel"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
}

// ShipmentResponse is the representation of a shipment.
type ShipmentResponse struct {
	ID                string                 `json:"id"`
	OrderID           string                 `json:"orderId"`
	TrackingNumber    string                 `json:"trackingNumber"`
	Carrier           string                 `json:"carrier"`
	Status            string                 `json:"status"`
	CurrentLocation   string                 `json:"currentLocation,omitempty"`
	EstimatedDelivery time.Time              `json:"estimatedDelivery"`
	ActualDelivery    *time.Time             `json:"actualDelivery,omitempty"`
	Events            []TrackingEventDTO     `json:"events"`
	DeliveryAttempts  int                    `json:"deliveryAttempts"`
	Notifications     []NotificationEventDTO `json:"notifications"`
}

func packagingOptionToDTO(option fulfillment.PackagingOption) PackagingOptionDTO {
	return PackagingOptionDTO{
		ID:       option.ID,
		Type:     string(option.Type),
		Material: option.Material,
		Dimensions: DimensionsDTO{
			Length: option.Dimensions.Length,
			Width:  option.Dimensions.Width,
			Height: option.Dimensions.Height,
		},
		Weight:         option.Weight,
		Cost:           option.Cost,
		Protection:     string(option.Protection),
		Customizations: option.Customizations,
		Sustainability: option.Sustainability,
	}
}

func shippingOptionToDTO(option fulfillment.ShippingOption) ShippingOptionDTO {
	return ShippingOptionDTO{
		ID:                option.ID,
		Carrier:           option.Carrier,
		Service:           option.Service,
		EstimatedDays:     option.EstimatedDays,
		Cost:              option.Cost,
		TrackingIncluded:  option.TrackingIncluded,
		InsuranceIncluded: option.InsuranceIncluded,
		SignatureRequired: option.SignatureRequired,
		Sustainability:    string(option.Sustainability),
		Reliability:       option.Reliability,
	}
}

func planToResponse(plan *fulfillment.Plan) PlanResponse {
	packagingAlternatives := make([]PackagingOptionDTO, 0, len(plan.PackagingAlternatives()))
	for _, option := range plan.PackagingAlternatives() {
		packagingAlternatives = append(packagingAlternatives, packagingOptionToDTO(option))
	}

	shippingAlternatives := make([]ShippingOptionDTO, 0, len(plan.ShippingAlternatives()))
	for _, option := range plan.ShippingAlternatives() {
		shippingAlternatives = append(shippingAlternatives, shippingOptionToDTO(option))
	}

	return PlanResponse{
		ID:                    plan.ID().String(),
		OrderID:               plan.OrderID().String(),
		RecommendedPackaging:  packagingOptionToDTO(plan.RecommendedPackaging()),
		RecommendedShipping:   shippingOptionToDTO(plan.RecommendedShipping()),
		PackagingAlternatives: packagingAlternatives,
		ShippingAlternatives:  shippingAlternatives,
		TotalCost:             plan.TotalCost(),
		EstimatedDelivery:     plan.EstimatedDelivery(),
		CarbonFootprint:       plan.CarbonFootprint(),
		Confidence:            plan.Confidence(),
		OptimizationScore:     plan.OptimizationScore(),
		Instructions:          plan.Instructions(),
	}
}

func packagingResponseToDTO(option queries.PackagingOptionResponse) PackagingOptionDTO {
	return PackagingOptionDTO{
		ID:             option.ID,
		Type:           option.Type,
		Material:       option.Material,
		Dimensions:     DimensionsDTO(option.Dimensions),
		Weight:         option.Weight,
		Cost:           option.Cost,
		Protection:     option.Protection,
		Customizations: option.Customizations,
		Sustainability: option.Sustainability,
	}
}

func planQueryResponseToResponse(plan queries.GetPlanQueryResponse) PlanResponse {
	packagingAlternatives := make([]PackagingOptionDTO, 0, len(plan.PackagingAlternatives))
	for _, option := range plan.PackagingAlternatives {
		packagingAlternatives = append(packagingAlternatives, packagingResponseToDTO(option))
	}

	shippingAlternatives := make([]ShippingOptionDTO, 0, len(plan.ShippingAlternatives))
	for _, option := range plan.ShippingAlternatives {
		shippingAlternatives = append(shippingAlternatives, ShippingOptionDTO(option))
	}

	return PlanResponse{
		ID:                    plan.ID.String(),
		OrderID:               plan.OrderID.String(),
		RecommendedPackaging:  packagingResponseToDTO(plan.RecommendedPackaging),
		RecommendedShipping:   ShippingOptionDTO(plan.RecommendedShipping),
		PackagingAlternatives: packagingAlternatives,
		ShippingAlternatives:  shippingAlternatives,
		TotalCost:             plan.TotalCost,
		EstimatedDelivery:     plan.EstimatedDelivery,
		CarbonFootprint:       plan.CarbonFootprint,
		Confidence:            plan.Confidence,
		OptimizationScore:     plan.OptimizationScore,
		Instructions:          plan.Instructions,
	}
}

func shipmentToResponse(shp *shipment.Shipment) ShipmentResponse {
	events := make([]TrackingEventDTO, 0, len(shp.Events()))
	for _, event := range shp.Events() {
		events = append(events, TrackingEventDTO{
			Timestamp:   event.Timestamp,
			Location:    event.Location,
			Status:      event.Status.String(),
			Description: event.Description,
		})
	}

	notifications := make([]NotificationEventDTO, 0, len(shp.Notifications()))
	for _, notification := range shp.Notifications() {
		notifications = append(notifications, NotificationEventDTO{
			Timestamp: notification.Timestamp,
			Channel:   string(notification.Channel),
			Message:   notification.Message,
			Status:    string(notification.Status),
		})
	}

	return ShipmentResponse{
		ID:                shp.ID().String(),
		OrderID:           shp.OrderID().String(),
		TrackingNumber:    shp.TrackingNumber(),
		Carrier:           shp.Carrier(),
		Status:            shp.Status().String(),
		CurrentLocation:   shp.CurrentLocation(),
		EstimatedDelivery: shp.EstimatedDelivery(),
		ActualDelivery:    shp.ActualDelivery(),
		Events:            events,
		DeliveryAttempts:  shp.DeliveryAttempts(),
		Notifications:     notifications,
	}
}

// ShipmentSummaryResponse is the representation of one in-flight shipment
// in the undelivered shipments listing. Histories are omitted; clients fetch
// a single shipment for the full detail.
type ShipmentSummaryResponse struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"orderId"`
	TrackingNumber    string    `json:"trackingNumber"`
	Carrier           string    `json:"carrier"`
	Status            string    `json:"status"`
	CurrentLocation   string    `json:"currentLocation,omitempty"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

func shipmentSummaryToResponse(shp queries.GetUndeliveredShipmentsQueryResponse) ShipmentSummaryResponse {
	return ShipmentSummaryResponse{
		ID:                shp.ID.String(),
		OrderID:           shp.OrderID.String(),
		TrackingNumber:    shp.TrackingNumber,
		Carrier:           shp.Carrier,
		Status:            shp.Status,
		CurrentLocation:   shp.CurrentLocation,
		EstimatedDelivery: shp.EstimatedDelivery,
	}
}

func shipmentQueryResponseToResponse(shp queries.GetShipmentQueryResponse) ShipmentResponse {
	events := make([]TrackingEventDTO, 0, len(shp.Events))
	for _, event := range shp.Events {
		events = append(events, TrackingEventDTO(event))
	}

	notifications := make([]NotificationEventDTO, 0, len(shp.Notifications))
	for _, notification := range shp.Notifications {
		notifications = append(notifications, NotificationEventDTO(notification))
	}

	return ShipmentResponse{
		ID:                shp.ID.String(),
		OrderID:           shp.OrderID.String(),
		TrackingNumber:    shp.TrackingNumber,
		Carrier:           shp.Carrier,
		Status:            shp.Status,
		CurrentLocation:   shp.CurrentLocation,
		EstimatedDelivery: shp.EstimatedDelivery,
		ActualDelivery:    shp.ActualDelivery,
		Events:            events,
		DeliveryAttempts:  shp.DeliveryAttempts,
		Notifications:     notifications,
	}
}
