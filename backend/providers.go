package backend

import (
	"context"
	"fmt"

	"glowdesk/models"
)

// GetProfile returns a stylist's account record.
func (c *Client) GetProfile(ctx context.Context, token string, id models.ID) (*models.Profile, error) {
	var profile models.Profile
	if err := c.get(ctx, fmt.Sprintf("/providers/%s", id), token, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile patches a stylist's account record.
func (c *Client) UpdateProfile(ctx context.Context, token string, id models.ID, updates map[string]interface{}) (*models.Profile, error) {
	var profile models.Profile
	if err := c.put(ctx, fmt.Sprintf("/providers/%s", id), token, updates, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
