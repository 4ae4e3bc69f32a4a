// Package shipmentrepo provides data transfer objects and mapping functions for shipment
// persistence, including the JSONB-encoded tracking and notification histories.
package shipmentrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The event and notification histories are append-only JSONB documents; statuses
// are stored under their wire names so rows stay readable in psql.
type ShipmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber    string    `gorm:"uniqueIndex"`
	Carrier           string
	Status            string `gorm:"index"`
	CurrentLocation   string
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	Events            datatypes.JSON
	DeliveryAttempts  int
	Notifications     datatypes.JSON
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

type trackingEventDoc struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
}

type notificationEventDoc struct {
	Timestamp time.Time `json:"timestamp"`
	Channel   string    `json:"channel"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, error) {
	eventDocs := make([]trackingEventDoc, 0, len(aggregate.Events()))
	for _, event := range aggregate.Events() {
		eventDocs = append(eventDocs, trackingEventDoc{
			Timestamp:   event.Timestamp,
			Location:    event.Location,
			Status:      event.Status.String(),
			Description: event.Description,
		})
	}
	events, err := json.Marshal(eventDocs)
	if err != nil {
		return ShipmentDTO{}, err
	}

	notificationDocs := make([]notificationEventDoc, 0, len(aggregate.Notifications()))
	for _, notification := range aggregate.Notifications() {
		notificationDocs = append(notificationDocs, notificationEventDoc{
			Timestamp: notification.Timestamp,
			Channel:   string(notification.Channel),
			Message:   notification.Message,
			Status:    string(notification.Status),
		})
	}
	notifications, err := json.Marshal(notificationDocs)
	if err != nil {
		return ShipmentDTO{}, err
	}

	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber(),
		Carrier:           aggregate.Carrier(),
		Status:            aggregate.Status().String(),
		CurrentLocation:   aggregate.CurrentLocation(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		Events:            datatypes.JSON(events),
		DeliveryAttempts:  aggregate.DeliveryAttempts(),
		Notifications:     datatypes.JSON(notifications),
	}, nil
}

// toDomain converts a database DTO to a shipment domain aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var eventDocs []trackingEventDoc
	if err := json.Unmarshal(dto.Events, &eventDocs); err != nil {
		return nil, err
	}

	events := make([]shipment.TrackingEvent, 0, len(eventDocs))
	for _, doc := range eventDocs {
		eventStatus, statusErr := shipment.StatusFromString(doc.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		events = append(events, shipment.TrackingEvent{
			Timestamp:   doc.Timestamp,
			Location:    doc.Location,
			Status:      eventStatus,
			Description: doc.Description,
		})
	}

	var notificationDocs []notificationEventDoc
	if err := json.Unmarshal(dto.Notifications, &notificationDocs); err != nil {
		return nil, err
	}

	notifications := make([]shipment.NotificationEvent, 0, len(notificationDocs))
	for _, doc := range notificationDocs {
		notifications = append(notifications, shipment.NotificationEvent{
			Timestamp: doc.Timestamp,
			Channel:   shipment.NotificationChannel(doc.Channel),
			Message:   doc.Message,
			Status:    shipment.NotificationStatus(doc.Status),
		})
	}

	return shipment.RestoreShipment(
		id,
		orderID,
		dto.TrackingNumber,
		dto.Carrier,
		status,
		dto.CurrentLocation,
		dto.EstimatedDelivery,
		dto.ActualDelivery,
		events,
		dto.DeliveryAttempts,
		notifications,
	)
}
