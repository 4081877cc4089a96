package booking

import (
	"context"

	"glowdesk/models"

	"go.uber.org/zap"
)

// BackendAPI is the slice of the backend client the booking service depends
// on. The real implementation is *backend.Client.
type BackendAPI interface {
	ListBookingsByStylist(ctx context.Context, token string, stylistID models.ID) ([]models.Booking, error)
	GetBooking(ctx context.Context, token string, id models.ID) (*models.Booking, error)
	GetService(ctx context.Context, token string, id models.ID) (*models.Service, error)
	GetSlot(ctx context.Context, token string, id models.ID) (*models.Slot, error)
	UpdateBookingStatus(ctx context.Context, token string, id models.ID, status string) error
	RescheduleBooking(ctx context.Context, token string, id, stylistID models.ID, newStartTime, status string) error
	DeleteBooking(ctx context.Context, token string, id models.ID) error
	UpdateSlotBookedStatus(ctx context.Context, token string, id models.ID, booked bool) error
}

// Auditor records structured diagnostic events for fail-soft paths.
type Auditor interface {
	Record(ctx context.Context, event models.AuditEvent) (string, error)
}

// ReconcileResult is one full refresh of a stylist's bookings: the raw
// records, the resolved reference caches, and the normalized projection.
type ReconcileResult struct {
	Bookings     []models.DisplayBooking
	ServiceNames map[models.ID]string
	SlotTimes    map[models.ID]string
}

// BookingService mediates booking state against the backend. Every mutating
// operation re-runs the full reconciliation pass instead of patching local
// state, so the returned result always reflects the backend's view.
type BookingService interface {
	Reconcile(ctx context.Context, token string, stylistID models.ID) (*ReconcileResult, error)
	Confirm(ctx context.Context, token string, stylistID, bookingID models.ID) (*ReconcileResult, error)
	Cancel(ctx context.Context, token string, stylistID, bookingID models.ID) (*ReconcileResult, error)
	Complete(ctx context.Context, token string, stylistID, bookingID models.ID) (*ReconcileResult, error)
	Reschedule(ctx context.Context, token string, stylistID, bookingID models.ID, date, clock string) (*ReconcileResult, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Backend BackendAPI
	Audit   Auditor        // optional; nil disables diagnostic events
	Cache   ReferenceCache // optional; nil resolves every reference fresh
	Logger  *zap.Logger
}
