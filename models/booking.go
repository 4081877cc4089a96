package models

import "time"

// Booking statuses as reported by the booking backend. This is a flat
// enumeration, not a strict state machine; the backend remains the authority
// on which transitions it actually accepts.
const (
	StatusPending     = "PENDING"
	StatusConfirmed   = "CONFIRMED"
	StatusCancelled   = "CANCELLED"
	StatusCompleted   = "COMPLETED"
	StatusRescheduled = "RESCHEDULED"
)

// Booking is a raw booking record as returned by the backend. Only id,
// serviceId, slotId and status are reliably present; the rest are
// denormalized extras that vary between backend versions.
type Booking struct {
	ID           ID          `json:"id"`
	ServiceID    ID          `json:"serviceId"`
	SlotID       ID          `json:"slotId"`
	Service      *ServiceRef `json:"service,omitempty"`
	Slot         *SlotRef    `json:"slot,omitempty"`
	CustomerName string      `json:"customerName"`
	Status       string      `json:"status"`
	BookedAt     string      `json:"bookedAt,omitempty"`
	CreatedAt    string      `json:"createdAt,omitempty"`
	UpdatedAt    string      `json:"updatedAt,omitempty"`
}

// ServiceRef is the nested service object some backend versions embed.
type ServiceRef struct {
	Name string `json:"name"`
}

// SlotRef is the nested slot object some backend versions embed.
type SlotRef struct {
	StartTime string `json:"startTime"`
}

// DisplayBooking is the normalized, display-ready projection of a booking
// after reference resolution. All formatted fields are rendered in UTC.
type DisplayBooking struct {
	ID           ID        `json:"id"`
	CustomerName string    `json:"customerName"`
	ServiceName  string    `json:"serviceName"`
	Status       string    `json:"status"`
	StartTime    string    `json:"startTime"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	StartAt      time.Time `json:"-"`
}

// BookingStats are the dashboard headline counters.
type BookingStats struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}
