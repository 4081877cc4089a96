package models

// Slot is a bookable time interval for a stylist. Field names differ between
// backend versions, so the start time is exposed through Start().
type Slot struct {
	ID             ID     `json:"id"`
	StylistID      ID     `json:"stylistId"`
	StartTime      string `json:"startTime,omitempty"`
	StartTimeSnake string `json:"start_time,omitempty"`
	BookingTime    string `json:"bookingTime,omitempty"`
	BookingSnake   string `json:"booking_time,omitempty"`
	EndTime        string `json:"endTime,omitempty"`
	Date           string `json:"date,omitempty"`
	IsAvailable    bool   `json:"isAvailable"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Start returns the slot start time under whichever key the backend used.
func (s Slot) Start() string {
	for _, v := range []string{s.StartTime, s.StartTimeSnake, s.BookingTime, s.BookingSnake} {
		if v != "" {
			return v
		}
	}
	return ""
}

// CreateSlotInput is the dashboard-side input for creating a time slot.
type CreateSlotInput struct {
	StylistID ID     `json:"stylistId"`
	Date      string `json:"date" binding:"required"`      // "2006-01-02"
	StartTime string `json:"startTime" binding:"required"` // "15:04"
	EndTime   string `json:"endTime" binding:"required"`   // "15:04"
}
