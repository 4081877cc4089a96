package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowdesk/backend"
	"glowdesk/config"
	"glowdesk/cron"
	"glowdesk/database"
	auditRepoPkg "glowdesk/database/repository/audit"
	"glowdesk/handlers"
	"glowdesk/middleware"
	"glowdesk/routes"
	"glowdesk/services/booking"
	"glowdesk/services/catalog"
	"glowdesk/services/notification"
	"glowdesk/services/payment"
	"glowdesk/services/session"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware())

	// Typed client for the booking backend.
	backendClient := backend.New(
		config.AppConfig.BackendBaseURL,
		time.Duration(config.AppConfig.BackendTimeoutMS)*time.Millisecond,
		logger,
	)

	// repositories.
	auditRepo := auditRepoPkg.NewMongoAuditRepo()

	// services.
	sessionService := &session.DefaultSessionService{
		Auth:   backendClient,
		Store:  &session.RedisStore{Client: utils.GetSessionCacheClient()},
		TTL:    time.Duration(config.AppConfig.SessionTTLHours) * time.Hour,
		Logger: logger,
	}
	bookingService := &booking.DefaultBookingService{
		Backend: backendClient,
		Audit:   auditRepo,
		Cache: &booking.RedisReferenceCache{
			Client: utils.GetCacheClient(),
			TTL:    time.Duration(config.AppConfig.ReferenceCacheTTLMin) * time.Minute,
			Logger: logger,
		},
		Logger: logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		Backend: backendClient,
		Logger:  logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Backend: backendClient,
		Logger:  logger,
	}
	notificationService := &notification.DefaultNotificationService{
		Logger: logger,
	}

	// Background reminder worker and its scheduler.
	go cron.InitReminderWorker(notificationService)
	reminderScheduler := cron.NewReminderScheduler(
		time.Duration(config.AppConfig.ReminderHorizonHours) * time.Hour,
	)
	defer reminderScheduler.Close()

	// handlers.
	authHandler := handlers.NewAuthHandler(sessionService)
	bookingHandler := handlers.NewBookingHandler(bookingService, reminderScheduler, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	timeslotHandler := handlers.NewTimeslotHandler(backendClient)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	profileHandler := handlers.NewProfileHandler(backendClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionService,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		LogoutHandler:   authHandler.LogoutHandler,
		MeHandler:       authHandler.MeHandler,

		// Booking endpoints.
		ListBookingsHandler:     bookingHandler.ListHandler,
		BookingStatsHandler:     bookingHandler.StatsHandler,
		UpcomingBookingsHandler: bookingHandler.UpcomingHandler,
		CalendarHandler:         bookingHandler.CalendarHandler,
		ConfirmBookingHandler:   bookingHandler.ConfirmHandler,
		CancelBookingHandler:    bookingHandler.CancelHandler,
		CompleteBookingHandler:  bookingHandler.CompleteHandler,
		RescheduleHandler:       bookingHandler.RescheduleHandler,

		// Catalog endpoints.
		ListServicesHandler:        catalogHandler.ListServicesHandler,
		ListStylistServicesHandler: catalogHandler.ListStylistServicesHandler,
		BindServiceHandler:         catalogHandler.BindServiceHandler,
		UpdateBindingHandler:       catalogHandler.UpdateBindingHandler,
		UnbindServiceHandler:       catalogHandler.UnbindServiceHandler,

		// Timeslot endpoints.
		ListSlotsHandler:        timeslotHandler.ListHandler,
		CreateSlotHandler:       timeslotHandler.CreateHandler,
		DeleteSlotHandler:       timeslotHandler.DeleteHandler,
		UpdateSlotStatusHandler: timeslotHandler.UpdateStatusHandler,

		// Payment endpoints.
		ListPaymentMethodsHandler:  paymentHandler.ListMethodsHandler,
		AddPaymentMethodHandler:    paymentHandler.AddMethodHandler,
		EditPaymentMethodHandler:   paymentHandler.EditMethodHandler,
		RemovePaymentMethodHandler: paymentHandler.RemoveMethodHandler,
		GetBookingFeeHandler:       paymentHandler.GetFeeHandler,
		SetBookingFeeHandler:       paymentHandler.SetFeeHandler,

		// Profile endpoints.
		GetProfileHandler:    profileHandler.GetHandler,
		UpdateProfileHandler: profileHandler.UpdateHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health checks for /health.
	utils.StartHealthMonitor(
		backendClient,
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
