package booking

import (
	"context"
	"fmt"
	"time"

	"glowdesk/backend"
	"glowdesk/models"

	"go.uber.org/zap"
)

// Action is a stylist-initiated booking operation.
type Action string

const (
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
	ActionComplete   Action = "complete"
)

// allowedActions mirrors the dashboard's button gating. COMPLETED and
// CANCELLED are terminal.
var allowedActions = map[string]map[Action]bool{
	models.StatusPending: {
		ActionConfirm: true,
		ActionCancel:  true,
	},
	models.StatusConfirmed: {
		ActionCancel:     true,
		ActionReschedule: true,
		ActionComplete:   true,
	},
	models.StatusRescheduled: {
		ActionConfirm:  true,
		ActionCancel:   true,
		ActionComplete: true,
	},
	models.StatusCancelled: {},
	models.StatusCompleted: {},
}

// Allowed reports whether the given action may be dispatched for a booking
// in the given status.
func Allowed(status string, action Action) bool {
	return allowedActions[status][action]
}

// RescheduleTime builds the exact timestamp the reschedule endpoint expects
// from a "2006-01-02" date and a "15:04" clock value.
func RescheduleTime(date, clock string) string {
	return fmt.Sprintf("%sT%s:00.000Z", date, clock)
}

// Reconcile runs one full fetch-resolve-normalize pass for a stylist. The
// two reference kinds resolve concurrently; normalization is deterministic
// given their results.
func (s *DefaultBookingService) Reconcile(ctx context.Context, token string, stylistID models.ID) (*ReconcileResult, error) {
	raw, err := s.Backend.ListBookingsByStylist(ctx, token, stylistID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	var serviceIDs, slotIDs []models.ID
	for _, b := range raw {
		if !b.ServiceID.IsZero() {
			serviceIDs = append(serviceIDs, b.ServiceID)
		}
		if !b.SlotID.IsZero() {
			slotIDs = append(slotIDs, b.SlotID)
		}
	}

	var cachedServices, cachedSlots map[models.ID]string
	if s.Cache != nil {
		cachedServices, cachedSlots = s.Cache.Load(ctx, stylistID)
	}

	var serviceNames, slotTimes map[models.ID]string
	done := make(chan struct{})
	go func() {
		defer close(done)
		slotTimes = s.ResolveSlotTimes(ctx, token, stylistID, slotIDs, cachedSlots)
	}()
	serviceNames = s.ResolveServiceNames(ctx, token, stylistID, serviceIDs, cachedServices)
	<-done

	if s.Cache != nil {
		s.Cache.Store(ctx, stylistID, serviceNames, slotTimes)
	}

	return &ReconcileResult{
		Bookings:     NormalizeAll(raw, serviceNames, slotTimes),
		ServiceNames: serviceNames,
		SlotTimes:    slotTimes,
	}, nil
}

// Confirm transitions a booking to CONFIRMED and then marks its slot booked.
// The two backend calls are not transactional: when the slot update fails the
// status change has already committed, and the inconsistency is recorded as
// an audit event rather than rolled back.
func (s *DefaultBookingService) Confirm(ctx context.Context, token string, stylistID, bookingID models.ID) (*ReconcileResult, error) {
	current, err := s.gate(ctx, token, bookingID, ActionConfirm)
	if err != nil {
		return nil, err
	}

	if err := s.Backend.UpdateBookingStatus(ctx, token, bookingID, models.StatusConfirmed); err != nil {
		return nil, err
	}

	if !current.SlotID.IsZero() {
		if err := s.Backend.UpdateSlotBookedStatus(ctx, token, current.SlotID, true); err != nil {
			if s.Logger != nil {
				s.Logger.Error("booking confirmed but slot not marked booked",
					zap.String("bookingId", bookingID.String()),
					zap.String("slotId", current.SlotID.String()),
					zap.Error(err))
			}
			s.recordEvent(models.AuditSlotMarkFailed, stylistID, current.SlotID, err.Error())
		}
	}

	return s.Reconcile(ctx, token, stylistID)
}

// Cancel soft-cancels a booking via a status transition. Older backend
// deployments predate the CANCELLED transition and answer 404/405; for those
// the legacy hard-delete endpoint is used instead, and the downgrade is
// recorded because it erases audit history.
func (s *DefaultBookingService) Cancel(ctx context.Context, token string, stylistID, bookingID models.ID) (*ReconcileResult, error) {
	if _, err := s.gate(ctx, token, bookingID, ActionCancel); err != nil {
		return nil, err
	}

	if err := s.Backend.UpdateBookingStatus(ctx, token, bookingID, models.StatusCancelled); err != nil {
		if !backend.IsMethodUnsupported(err) {
			return nil, err
		}
		if err := s.Backend.DeleteBooking(ctx, token, bookingID); err != nil {
			return nil, err
		}
		s.recordEvent(models.AuditCancelFallbackDelete, stylistID, bookingID, "status endpoint unsupported; record hard-deleted")
	}

	return s.Reconcile(ctx, token, stylistID)
}

// Complete transitions a booking to COMPLETED.
func (s *DefaultBookingService) Complete(ctx context.Context, token string, stylistID, bookingID models.ID) (*ReconcileResult, error) {
	if _, err := s.gate(ctx, token, bookingID, ActionComplete); err != nil {
		return nil, err
	}
	if err := s.Backend.UpdateBookingStatus(ctx, token, bookingID, models.StatusCompleted); err != nil {
		return nil, err
	}
	return s.Reconcile(ctx, token, stylistID)
}

// Reschedule submits a new absolute start time for a booking. The backend
// validates slot availability at the new time.
func (s *DefaultBookingService) Reschedule(ctx context.Context, token string, stylistID, bookingID models.ID, date, clock string) (*ReconcileResult, error) {
	if _, err := s.gate(ctx, token, bookingID, ActionReschedule); err != nil {
		return nil, err
	}
	newStartTime := RescheduleTime(date, clock)
	if err := s.Backend.RescheduleBooking(ctx, token, bookingID, stylistID, newStartTime, models.StatusRescheduled); err != nil {
		return nil, err
	}
	return s.Reconcile(ctx, token, stylistID)
}

// gate fetches the booking's current status and refuses actions the
// dashboard would have greyed out.
func (s *DefaultBookingService) gate(ctx context.Context, token string, bookingID models.ID, action Action) (*models.Booking, error) {
	current, err := s.Backend.GetBooking(ctx, token, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if !Allowed(current.Status, action) {
		return nil, &ActionNotAllowedError{Status: current.Status, Action: action}
	}
	return current, nil
}

func (s *DefaultBookingService) recordEvent(kind string, stylistID, subjectID models.ID, detail string) {
	if s.Audit == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		event := models.AuditEvent{
			Kind:      kind,
			StylistID: stylistID,
			SubjectID: subjectID,
			Detail:    detail,
		}
		if _, err := s.Audit.Record(ctx, event); err != nil && s.Logger != nil {
			s.Logger.Warn("failed to record audit event", zap.Error(err))
		}
	}()
}
