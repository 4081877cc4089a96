package backend

import (
	"context"
	"fmt"

	"glowdesk/models"
)

// GetSlot returns a time slot by id.
func (c *Client) GetSlot(ctx context.Context, token string, id models.ID) (*models.Slot, error) {
	var slot models.Slot
	if err := c.get(ctx, fmt.Sprintf("/timeslots/%s", id), token, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// ListSlotsByStylist returns all slots created by one stylist.
func (c *Client) ListSlotsByStylist(ctx context.Context, token string, stylistID models.ID) ([]models.Slot, error) {
	var slots []models.Slot
	if err := c.get(ctx, fmt.Sprintf("/timeslots/stylist/%s", stylistID), token, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateSlot creates a time slot. The datetime field is sent without a
// timezone suffix so the backend stores exactly the wall-clock time the
// stylist entered.
func (c *Client) CreateSlot(ctx context.Context, token string, input models.CreateSlotInput) (*models.Slot, error) {
	body := map[string]interface{}{
		"provider_id":  input.StylistID,
		"datetime":     fmt.Sprintf("%sT%s:00", input.Date, input.StartTime),
		"start_time":   input.StartTime,
		"end_time":     input.EndTime,
		"date":         input.Date,
		"is_available": true,
	}
	var slot models.Slot
	if err := c.post(ctx, "/timeslots", token, body, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// DeleteSlot removes a time slot.
func (c *Client) DeleteSlot(ctx context.Context, token string, id models.ID) error {
	return c.delete(ctx, fmt.Sprintf("/timeslots/%s", id), token, nil)
}

// UpdateSlotBookedStatus flips a slot's booked flag. This is the second call
// of the confirm sequence and is not transactional with the status update.
func (c *Client) UpdateSlotBookedStatus(ctx context.Context, token string, id models.ID, booked bool) error {
	return c.patch(ctx, fmt.Sprintf("/timeslots/%s/status", id), token, map[string]bool{"status": booked}, nil)
}
