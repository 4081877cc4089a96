package backend

import (
	"context"
	"fmt"

	"glowdesk/models"
)

// ListServices returns the global service catalog.
func (c *Client) ListServices(ctx context.Context, token string) ([]models.Service, error) {
	var services []models.Service
	if err := c.get(ctx, "/services", token, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetService returns a catalog service by id.
func (c *Client) GetService(ctx context.Context, token string, id models.ID) (*models.Service, error) {
	var service models.Service
	if err := c.get(ctx, fmt.Sprintf("/services/%s", id), token, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// ListStylistServices returns the service bindings for one stylist.
func (c *Client) ListStylistServices(ctx context.Context, token string, stylistID models.ID) ([]models.StylistService, error) {
	var bindings []models.StylistService
	if err := c.get(ctx, fmt.Sprintf("/stylist-services?stylist_id=%s", stylistID), token, &bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

// AddStylistService binds a catalog service to a stylist.
func (c *Client) AddStylistService(ctx context.Context, token string, binding models.StylistService) (*models.StylistService, error) {
	body := map[string]interface{}{
		"stylistId": binding.StylistID,
		"serviceId": binding.ServiceID,
		"price":     binding.Price,
		"duration":  binding.Duration,
	}
	var created models.StylistService
	if err := c.post(ctx, "/stylist-services", token, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStylistService updates a binding's stylist-specific price/duration.
func (c *Client) UpdateStylistService(ctx context.Context, token string, id models.ID, price float64, duration int) (*models.StylistService, error) {
	body := map[string]interface{}{"price": price, "duration": duration}
	var updated models.StylistService
	if err := c.put(ctx, fmt.Sprintf("/stylist-services/%s", id), token, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteStylistService removes a binding by record id.
func (c *Client) DeleteStylistService(ctx context.Context, token string, id models.ID) error {
	return c.delete(ctx, fmt.Sprintf("/stylist-services/%s", id), token, nil)
}
