package booking

import (
	"testing"
	"time"

	"glowdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func displayAt(id, customer, service, status, ts string) models.DisplayBooking {
	b := models.DisplayBooking{
		ID:           models.ID(id),
		CustomerName: customer,
		ServiceName:  service,
		Status:       status,
		StartTime:    ts,
	}
	if t, ok := ParseTimestamp(ts); ok {
		b.StartAt = t
	}
	return b
}

func TestFilterAndSortByStatusAndSearch(t *testing.T) {
	bookings := []models.DisplayBooking{
		displayAt("b1", "Amara Osei", "Box Braids", models.StatusConfirmed, "2025-09-18T10:00:00Z"),
		displayAt("b2", "Nia Carter", "Silk Press", models.StatusPending, "2025-09-17T09:00:00Z"),
		displayAt("b3", "Zoe Amara", "Loc Retwist", models.StatusConfirmed, "2025-09-16T08:00:00Z"),
	}

	confirmed := FilterAndSort(bookings, ListFilter{Status: models.StatusConfirmed})
	require.Len(t, confirmed, 2)
	assert.Equal(t, models.ID("b3"), confirmed[0].ID)
	assert.Equal(t, models.ID("b1"), confirmed[1].ID)

	// Search is case-insensitive and matches customer or service name.
	byName := FilterAndSort(bookings, ListFilter{Search: "amara"})
	require.Len(t, byName, 2)

	byService := FilterAndSort(bookings, ListFilter{Search: "silk"})
	require.Len(t, byService, 1)
	assert.Equal(t, models.ID("b2"), byService[0].ID)
}

func TestFilterAndSortUnresolvedTimesSortLast(t *testing.T) {
	bookings := []models.DisplayBooking{
		displayAt("b1", "A", "X", models.StatusPending, ""),
		displayAt("b2", "B", "X", models.StatusPending, "2025-09-18T10:00:00Z"),
		displayAt("b3", "C", "X", models.StatusPending, "2025-09-17T10:00:00Z"),
	}

	got := FilterAndSort(bookings, ListFilter{})
	require.Len(t, got, 3)
	assert.Equal(t, models.ID("b3"), got[0].ID)
	assert.Equal(t, models.ID("b2"), got[1].ID)
	assert.Equal(t, models.ID("b1"), got[2].ID)
}

func TestFilterAndSortByCustomerName(t *testing.T) {
	bookings := []models.DisplayBooking{
		displayAt("b1", "Zoe", "X", models.StatusPending, "2025-09-16T10:00:00Z"),
		displayAt("b2", "Amara", "X", models.StatusPending, "2025-09-18T10:00:00Z"),
	}

	got := FilterAndSort(bookings, ListFilter{SortBy: SortByCustomer})
	require.Len(t, got, 2)
	assert.Equal(t, "Amara", got[0].CustomerName)
}

func TestFilterAndSortNeverMutatesInput(t *testing.T) {
	bookings := []models.DisplayBooking{
		displayAt("b1", "Zoe", "X", models.StatusPending, "2025-09-18T10:00:00Z"),
		displayAt("b2", "Amara", "X", models.StatusPending, "2025-09-16T10:00:00Z"),
	}

	FilterAndSort(bookings, ListFilter{SortBy: SortByCustomer})

	assert.Equal(t, models.ID("b1"), bookings[0].ID)
	assert.Equal(t, models.ID("b2"), bookings[1].ID)
}

func TestMonthGridShape(t *testing.T) {
	pivot := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.DisplayBooking{
		displayAt("b1", "A", "X", models.StatusConfirmed, "2025-09-18T10:00:00Z"),
		displayAt("b2", "B", "X", models.StatusConfirmed, "2025-09-18T15:00:00Z"),
		displayAt("b3", "C", "X", models.StatusConfirmed, "2025-10-01T10:00:00Z"),
		displayAt("b4", "D", "X", models.StatusConfirmed, ""),
	}

	cells := MonthGrid(pivot, 0, bookings)
	require.Len(t, cells, 42)

	// September 2025 starts on a Monday; the grid opens on Sunday Aug 31.
	assert.Equal(t, time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), cells[0].Date)
	assert.False(t, cells[0].InMonth)
	assert.True(t, cells[1].InMonth)

	var sept18 CalendarCell
	for _, cell := range cells {
		if cell.Date.Equal(time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC)) {
			sept18 = cell
		}
	}
	require.Len(t, sept18.Bookings, 2)

	// Out-of-month and time-less bookings never land in a September cell.
	total := 0
	for _, cell := range cells {
		if cell.InMonth {
			total += len(cell.Bookings)
		}
	}
	assert.Equal(t, 2, total)
}

func TestMonthGridOffsetNavigation(t *testing.T) {
	pivot := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	bookings := []models.DisplayBooking{
		displayAt("b1", "A", "X", models.StatusConfirmed, "2025-10-01T10:00:00Z"),
	}

	next := MonthGrid(pivot, 1, bookings)
	require.Len(t, next, 42)

	found := false
	for _, cell := range next {
		if cell.InMonth && len(cell.Bookings) == 1 {
			assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), cell.Date)
			found = true
		}
	}
	assert.True(t, found)

	prev := MonthGrid(pivot, -1, nil)
	assert.Equal(t, time.August, prev[10].Date.Month())
}

func TestStatsAt(t *testing.T) {
	now := time.Date(2025, 9, 18, 12, 0, 0, 0, time.UTC)
	bookings := []models.DisplayBooking{
		displayAt("b1", "A", "X", models.StatusConfirmed, "2025-09-18T10:00:00Z"),
		displayAt("b2", "B", "X", models.StatusPending, "2025-09-18T16:00:00Z"),
		displayAt("b3", "C", "X", models.StatusConfirmed, "2025-09-19T10:00:00Z"),
		displayAt("b4", "D", "X", models.StatusCancelled, ""),
	}

	stats := StatsAt(bookings, now)
	assert.Equal(t, models.BookingStats{Total: 4, Today: 2, Confirmed: 2, Pending: 1}, stats)
}

func TestUpcomingFiltersAndOrders(t *testing.T) {
	now := time.Date(2025, 9, 18, 12, 0, 0, 0, time.UTC)
	bookings := []models.DisplayBooking{
		displayAt("past", "A", "X", models.StatusConfirmed, "2025-09-18T10:00:00Z"),
		displayAt("pending", "B", "X", models.StatusPending, "2025-09-19T10:00:00Z"),
		displayAt("soon", "C", "X", models.StatusRescheduled, "2025-09-18T14:00:00Z"),
		displayAt("later", "D", "X", models.StatusConfirmed, "2025-09-20T10:00:00Z"),
		displayAt("timeless", "E", "X", models.StatusConfirmed, ""),
	}

	got := Upcoming(bookings, now, 5)
	require.Len(t, got, 2)
	assert.Equal(t, models.ID("soon"), got[0].ID)
	assert.Equal(t, models.ID("later"), got[1].ID)

	limited := Upcoming(bookings, now, 1)
	require.Len(t, limited, 1)
	assert.Equal(t, models.ID("soon"), limited[0].ID)
}
