package handlers

import (
	"net/http"
	"strconv"
	"time"

	"glowdesk/cron"
	"glowdesk/models"
	"glowdesk/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the reconciled booking views and dispatches the
// stylist's booking actions.
type BookingHandler struct {
	Bookings  booking.BookingService
	Reminders *cron.ReminderScheduler // optional
	Logger    *zap.Logger
}

func NewBookingHandler(bookings booking.BookingService, reminders *cron.ReminderScheduler, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Reminders: reminders, Logger: logger}
}

// ListHandler returns the reconciled booking list, optionally filtered and
// sorted: ?status=, ?search=, ?sort=bookedAt|customerName.
func (h *BookingHandler) ListHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	result, err := h.Bookings.Reconcile(c.Request.Context(), token, stylistID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}

	filter := booking.ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		SortBy: c.Query("sort"),
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": booking.FilterAndSort(result.Bookings, filter),
	})
}

// StatsHandler returns the dashboard counters.
func (h *BookingHandler) StatsHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	result, err := h.Bookings.Reconcile(c.Request.Context(), token, stylistID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, booking.StatsAt(result.Bookings, time.Now()))
}

// UpcomingHandler returns the next bookings, soonest first: ?limit=.
func (h *BookingHandler) UpcomingHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	limit := 5
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	result, err := h.Bookings.Reconcile(c.Request.Context(), token, stylistID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": booking.Upcoming(result.Bookings, time.Now(), limit),
	})
}

// CalendarHandler returns the month grid: ?offset= months from the current
// month (negative for past months).
func (h *BookingHandler) CalendarHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		offset = v
	}

	result, err := h.Bookings.Reconcile(c.Request.Context(), token, stylistID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	cells := booking.MonthGrid(time.Now(), offset, result.Bookings)
	c.JSON(http.StatusOK, gin.H{"cells": cells})
}

// ConfirmHandler confirms a booking and marks its slot booked.
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)
	bookingID := models.ID(c.Param("id"))

	result, err := h.Bookings.Confirm(c.Request.Context(), token, stylistID, bookingID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	h.scheduleReminder(stylistID, bookingID, result)
	c.JSON(http.StatusOK, gin.H{"bookings": result.Bookings})
}

// CancelHandler cancels a booking.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)
	bookingID := models.ID(c.Param("id"))

	result, err := h.Bookings.Cancel(c.Request.Context(), token, stylistID, bookingID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": result.Bookings})
}

// CompleteHandler marks a booking completed.
func (h *BookingHandler) CompleteHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)
	bookingID := models.ID(c.Param("id"))

	result, err := h.Bookings.Complete(c.Request.Context(), token, stylistID, bookingID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": result.Bookings})
}

// RescheduleHandler moves a booking to a new date and time.
func (h *BookingHandler) RescheduleHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)
	bookingID := models.ID(c.Param("id"))

	var req struct {
		Date string `json:"date" binding:"required"` // "2006-01-02"
		Time string `json:"time" binding:"required"` // "15:04"
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Bookings.Reschedule(c.Request.Context(), token, stylistID, bookingID, req.Date, req.Time)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	h.scheduleReminder(stylistID, bookingID, result)
	c.JSON(http.StatusOK, gin.H{"bookings": result.Bookings})
}

// scheduleReminder enqueues a reminder for the booking's new start time.
// Scheduling failures are logged, never surfaced; reminders are best-effort.
func (h *BookingHandler) scheduleReminder(stylistID, bookingID models.ID, result *booking.ReconcileResult) {
	if h.Reminders == nil {
		return
	}
	for _, b := range result.Bookings {
		if b.ID != bookingID {
			continue
		}
		if err := h.Reminders.ScheduleForBooking(stylistID, b); err != nil && h.Logger != nil {
			h.Logger.Warn("failed to schedule booking reminder",
				zap.String("bookingId", bookingID.String()),
				zap.Error(err))
		}
		return
	}
}
