package backend

import (
	"context"
	"fmt"

	"glowdesk/models"
)

// ListBookingsByStylist returns the raw booking records for one stylist.
func (c *Client) ListBookingsByStylist(ctx context.Context, token string, stylistID models.ID) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.get(ctx, fmt.Sprintf("/bookings/provider/%s", stylistID), token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking returns a single booking by id.
func (c *Client) GetBooking(ctx context.Context, token string, id models.ID) (*models.Booking, error) {
	var booking models.Booking
	if err := c.get(ctx, fmt.Sprintf("/bookings/%s", id), token, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus requests a status transition. The backend is the
// authority and may reject it; its message comes back as an APIError.
func (c *Client) UpdateBookingStatus(ctx context.Context, token string, id models.ID, status string) error {
	return c.patch(ctx, fmt.Sprintf("/bookings/%s/status", id), token, map[string]string{"status": status}, nil)
}

// RescheduleBooking moves a booking to a new absolute start time. The
// newStartTime must be an ISO-8601 UTC datetime string; the backend validates
// availability at the new time.
func (c *Client) RescheduleBooking(ctx context.Context, token string, id, stylistID models.ID, newStartTime, status string) error {
	body := map[string]string{
		"stylistId":    stylistID.String(),
		"newStartTime": newStartTime,
		"status":       status,
	}
	return c.patch(ctx, fmt.Sprintf("/bookings/%s/reschedule", id), token, body, nil)
}

// DeleteBooking is the legacy hard-delete endpoint. Kept only as a fallback
// for backend deployments that predate the CANCELLED status transition.
func (c *Client) DeleteBooking(ctx context.Context, token string, id models.ID) error {
	return c.delete(ctx, fmt.Sprintf("/bookings/%s", id), token, nil)
}
