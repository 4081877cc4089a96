package backend

import (
	"context"

	"glowdesk/models"
)

// LoginIdentity is the identity block a login response may nest under "user"
// or "stylist".
type LoginIdentity struct {
	ID        models.ID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	StylistID models.ID `json:"stylist_id"`
}

// LoginResponse mirrors the login payload loosely: backend deployments
// disagree on where the identity fields live, so every known location is
// mapped and the session provider flattens them.
type LoginResponse struct {
	Token     string         `json:"token"`
	ID        models.ID      `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	StylistID models.ID      `json:"stylist_id"`
	User      *LoginIdentity `json:"user"`
	Stylist   *LoginIdentity `json:"stylist"`
}

// Login authenticates a stylist against the backend.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.post(ctx, "/auth/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a stylist account on the backend.
func (c *Client) Register(ctx context.Context, input models.RegisterInput) error {
	return c.post(ctx, "/auth/register", "", input, nil)
}
