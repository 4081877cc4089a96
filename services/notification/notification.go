// Package notification delivers stylist-facing notices. Delivery channels
// beyond structured logs (push, SMS) belong to the external platform and are
// not wired here.
package notification

import (
	"context"

	"glowdesk/models"

	"go.uber.org/zap"
)

type NotificationService interface {
	SendBookingReminder(ctx context.Context, stylistID models.ID, booking models.DisplayBooking) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Logger *zap.Logger
}

// SendBookingReminder emits a reminder for one upcoming booking.
func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, stylistID models.ID, booking models.DisplayBooking) error {
	s.Logger.Info("booking reminder",
		zap.String("stylistId", stylistID.String()),
		zap.String("bookingId", booking.ID.String()),
		zap.String("customer", booking.CustomerName),
		zap.String("service", booking.ServiceName),
		zap.String("startTime", booking.StartTime),
	)
	return nil
}
