package session

import (
	"glowdesk/backend"
	"glowdesk/models"
)

// normalizeLogin flattens a login response into the canonical session shape.
// Deployments have returned the identity at the top level, under "user", or
// under "stylist"; the first populated location wins, field by field. A
// response without a token is rejected outright.
func normalizeLogin(resp *backend.LoginResponse, loginEmail string) (*models.Session, error) {
	if resp == nil || resp.Token == "" {
		return nil, ErrNoToken
	}

	sess := &models.Session{
		StylistID:    resp.ID,
		Name:         resp.Name,
		Email:        resp.Email,
		BackendToken: resp.Token,
	}

	for _, identity := range []*backend.LoginIdentity{resp.User, resp.Stylist} {
		if identity == nil {
			continue
		}
		if sess.StylistID.IsZero() {
			sess.StylistID = identity.ID
		}
		if sess.StylistID.IsZero() {
			sess.StylistID = identity.StylistID
		}
		if sess.Name == "" {
			sess.Name = identity.Name
		}
		if sess.Email == "" {
			sess.Email = identity.Email
		}
	}
	if sess.StylistID.IsZero() {
		sess.StylistID = resp.StylistID
	}

	if sess.StylistID.IsZero() {
		return nil, ErrUnauthenticated
	}
	if sess.Email == "" {
		sess.Email = loginEmail
	}
	return sess, nil
}
