package booking

import (
	"sort"
	"strings"
	"time"

	"glowdesk/models"
)

// Sort keys accepted by the list view.
const (
	SortByDate     = "bookedAt"
	SortByCustomer = "customerName"
)

// ListFilter narrows and orders the list view. Empty fields mean "no filter".
type ListFilter struct {
	Status string
	Search string
	SortBy string
}

// FilterAndSort projects bookings into the tabular view. The input slice is
// never mutated. Search matches customer name or service name,
// case-insensitive. Bookings with no resolvable time sort last.
func FilterAndSort(bookings []models.DisplayBooking, filter ListFilter) []models.DisplayBooking {
	out := make([]models.DisplayBooking, 0, len(bookings))
	search := strings.ToLower(filter.Search)
	for _, b := range bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.CustomerName), search) &&
			!strings.Contains(strings.ToLower(b.ServiceName), search) {
			continue
		}
		out = append(out, b)
	}

	switch filter.SortBy {
	case SortByCustomer:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CustomerName < out[j].CustomerName
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].StartAt.IsZero() != out[j].StartAt.IsZero() {
				return !out[i].StartAt.IsZero()
			}
			return out[i].StartAt.Before(out[j].StartAt)
		})
	}
	return out
}

// CalendarCell is one day of the month grid.
type CalendarCell struct {
	Date     time.Time               `json:"date"`
	InMonth  bool                    `json:"inMonth"`
	Bookings []models.DisplayBooking `json:"bookings"`
}

// MonthGrid buckets bookings into a fixed 6-week calendar grid for the month
// `offset` months away from pivot. Day membership is UTC calendar-date
// equality against the booking's resolved start time; bookings with no
// resolvable time appear in no cell. Pure, no I/O.
func MonthGrid(pivot time.Time, offset int, bookings []models.DisplayBooking) []CalendarCell {
	pivot = pivot.UTC()
	first := time.Date(pivot.Year(), pivot.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)

	byDay := make(map[string][]models.DisplayBooking)
	for _, b := range bookings {
		if b.StartAt.IsZero() {
			continue
		}
		key := b.StartAt.Format("2006-01-02")
		byDay[key] = append(byDay[key], b)
	}

	// Grid starts on the Sunday at or before the 1st and always spans six weeks.
	start := first.AddDate(0, 0, -int(first.Weekday()))
	cells := make([]CalendarCell, 0, 42)
	for i := 0; i < 42; i++ {
		day := start.AddDate(0, 0, i)
		cells = append(cells, CalendarCell{
			Date:     day,
			InMonth:  day.Month() == first.Month(),
			Bookings: byDay[day.Format("2006-01-02")],
		})
	}
	return cells
}

// StatsAt computes the dashboard counters as of `now` (UTC date for "today").
func StatsAt(bookings []models.DisplayBooking, now time.Time) models.BookingStats {
	today := now.UTC().Format("2006-01-02")
	stats := models.BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		if !b.StartAt.IsZero() && b.StartAt.Format("2006-01-02") == today {
			stats.Today++
		}
		switch b.Status {
		case models.StatusConfirmed:
			stats.Confirmed++
		case models.StatusPending:
			stats.Pending++
		}
	}
	return stats
}

// Upcoming returns the next `limit` confirmed or rescheduled bookings with a
// start time after `now`, soonest first.
func Upcoming(bookings []models.DisplayBooking, now time.Time, limit int) []models.DisplayBooking {
	var out []models.DisplayBooking
	for _, b := range bookings {
		if b.StartAt.IsZero() || !b.StartAt.After(now.UTC()) {
			continue
		}
		if b.Status != models.StatusConfirmed && b.Status != models.StatusRescheduled {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartAt.Before(out[j].StartAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
