package booking

import (
	"time"

	"glowdesk/models"
)

// UnknownService is the placeholder shown when a booking's service reference
// cannot be resolved at all.
const UnknownService = "Unknown Service"

// Display timestamps are always rendered in UTC, never converted to local
// time, so the stylist sees the same wall-clock times the slots were
// persisted with. Local-time conversion is what caused the old
// off-by-one-timezone display bugs.
const (
	dateLayout  = "01/02/2006"
	clockLayout = "03:04 PM"
)

// Normalize merges one raw booking with the resolved reference caches into a
// display-ready record. It is pure: same inputs, same output, no I/O.
func Normalize(raw models.Booking, serviceNames, slotTimes map[models.ID]string) models.DisplayBooking {
	startTime := startTimeFor(raw, slotTimes)

	display := models.DisplayBooking{
		ID:           raw.ID,
		CustomerName: raw.CustomerName,
		ServiceName:  serviceNameFor(raw, serviceNames),
		Status:       raw.Status,
		StartTime:    startTime,
	}

	if t, ok := ParseTimestamp(startTime); ok {
		display.StartAt = t
		display.Date = t.Format(dateLayout)
		display.Time = t.Format(clockLayout) + " UTC"
	}

	return display
}

// NormalizeAll maps Normalize over a batch.
func NormalizeAll(raw []models.Booking, serviceNames, slotTimes map[models.ID]string) []models.DisplayBooking {
	out := make([]models.DisplayBooking, 0, len(raw))
	for _, b := range raw {
		out = append(out, Normalize(b, serviceNames, slotTimes))
	}
	return out
}

// serviceNameFor resolves the display name: stylist cache hit, then the
// nested service object some payloads embed, then the placeholder.
func serviceNameFor(raw models.Booking, serviceNames map[models.ID]string) string {
	if !raw.ServiceID.IsZero() {
		if name, ok := serviceNames[raw.ServiceID]; ok && name != "" {
			return name
		}
	}
	if raw.Service != nil && raw.Service.Name != "" {
		return raw.Service.Name
	}
	return UnknownService
}

// startTimeFor resolves the start time: slot cache hit, then the nested
// slot object some payloads embed, then the booking's own denormalized
// timestamps in priority order, then empty.
func startTimeFor(raw models.Booking, slotTimes map[models.ID]string) string {
	if !raw.SlotID.IsZero() {
		if t, ok := slotTimes[raw.SlotID]; ok && t != "" {
			return t
		}
	}
	if raw.Slot != nil && raw.Slot.StartTime != "" {
		return raw.Slot.StartTime
	}
	for _, fallback := range []string{raw.BookedAt, raw.CreatedAt, raw.UpdatedAt} {
		if fallback != "" {
			return fallback
		}
	}
	return ""
}

// ParseTimestamp parses the timestamp formats observed across backend
// versions. Values without an offset are taken as UTC.
func ParseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
