package routes

import (
	"net/http"
	"time"

	"glowdesk/handlers"
	"glowdesk/middleware"
	"glowdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, logout and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require an active session).
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterBookingRoutes registers the booking dashboard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.ListBookingsHandler)
		api.GET("/stats", hb.BookingStatsHandler)
		api.GET("/upcoming", hb.UpcomingBookingsHandler)
		api.GET("/calendar", hb.CalendarHandler)
		api.POST("/:id/confirm", hb.ConfirmBookingHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
		api.POST("/:id/complete", hb.CompleteBookingHandler)
		api.POST("/:id/reschedule", hb.RescheduleHandler)
	}
}

// RegisterCatalogRoutes registers service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	services := r.Group("/api/services")
	{
		services.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		services.GET("", hb.ListServicesHandler)
	}

	bindings := r.Group("/api/stylist-services")
	{
		bindings.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		bindings.GET("", hb.ListStylistServicesHandler)
		bindings.POST("", hb.BindServiceHandler)
		bindings.PUT("/:id", hb.UpdateBindingHandler)
		bindings.DELETE("/:id", hb.UnbindServiceHandler)
	}
}

// RegisterTimeslotRoutes registers time slot management endpoints.
func RegisterTimeslotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/timeslots")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.ListSlotsHandler)
		api.POST("", hb.CreateSlotHandler)
		api.DELETE("/:id", hb.DeleteSlotHandler)
		api.PATCH("/:id/status", hb.UpdateSlotStatusHandler)
	}
}

// RegisterPaymentRoutes registers payout method and booking fee endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	methods := r.Group("/api/payment-methods")
	{
		methods.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		methods.GET("", hb.ListPaymentMethodsHandler)
		methods.POST("", hb.AddPaymentMethodHandler)
		methods.PUT("/:id", hb.EditPaymentMethodHandler)
		methods.DELETE("/:id", hb.RemovePaymentMethodHandler)
	}

	fee := r.Group("/api/booking-fee")
	{
		fee.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		fee.GET("", hb.GetBookingFeeHandler)
		fee.PUT("", hb.SetBookingFeeHandler)
	}
}

// RegisterProfileRoutes registers the stylist profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.GetProfileHandler)
		api.PATCH("", hb.UpdateProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterTimeslotRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterHealthRoute(r)
}
