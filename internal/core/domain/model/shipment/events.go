package shipment

import "time"

// TrackingEvent is one entry in a shipment's append-only status history.
type TrackingEvent struct {
	Timestamp   time.Time
	Location    string
	Status      Status
	Description string
}

// NotificationChannel identifies how a customer notification was delivered.
type NotificationChannel string

const (
	NotificationEmail NotificationChannel = "email"
	NotificationSMS   NotificationChannel = "sms"
	NotificationPush  NotificationChannel = "push"
)

// NotificationStatus records the delivery outcome of a customer notification.
type NotificationStatus string

const (
	NotificationSent      NotificationStatus = "sent"
	NotificationDelivered NotificationStatus = "delivered"
	NotificationFailed    NotificationStatus = "failed"
)

// NotificationEvent is one entry in a shipment's append-only customer
// notification history.
type NotificationEvent struct {
	Timestamp time.Time
	Channel   NotificationChannel
	Message   string
	Status    NotificationStatus
}
