package handlers

import (
	"glowdesk/services/session"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Sessions backs the auth middleware.
	Sessions session.SessionService

	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Booking endpoints.
	ListBookingsHandler     gin.HandlerFunc
	BookingStatsHandler     gin.HandlerFunc
	UpcomingBookingsHandler gin.HandlerFunc
	CalendarHandler         gin.HandlerFunc
	ConfirmBookingHandler   gin.HandlerFunc
	CancelBookingHandler    gin.HandlerFunc
	CompleteBookingHandler  gin.HandlerFunc
	RescheduleHandler       gin.HandlerFunc

	// Catalog endpoints.
	ListServicesHandler        gin.HandlerFunc
	ListStylistServicesHandler gin.HandlerFunc
	BindServiceHandler         gin.HandlerFunc
	UpdateBindingHandler       gin.HandlerFunc
	UnbindServiceHandler       gin.HandlerFunc

	// Timeslot endpoints.
	ListSlotsHandler        gin.HandlerFunc
	CreateSlotHandler       gin.HandlerFunc
	DeleteSlotHandler       gin.HandlerFunc
	UpdateSlotStatusHandler gin.HandlerFunc

	// Payment endpoints.
	ListPaymentMethodsHandler  gin.HandlerFunc
	AddPaymentMethodHandler    gin.HandlerFunc
	EditPaymentMethodHandler   gin.HandlerFunc
	RemovePaymentMethodHandler gin.HandlerFunc
	GetBookingFeeHandler       gin.HandlerFunc
	SetBookingFeeHandler       gin.HandlerFunc

	// Profile endpoints.
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
}
