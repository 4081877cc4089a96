package session

import (
	"context"
	"fmt"
	"time"

	"glowdesk/models"
	"glowdesk/utils"

	"go.uber.org/zap"
)

// Register forwards a stylist sign-up to the backend.
func (s *DefaultSessionService) Register(ctx context.Context, input models.RegisterInput) error {
	return s.Auth.Register(ctx, input)
}

// Login authenticates against the backend, flattens whichever response shape
// the deployment speaks into the canonical session, and issues a dashboard
// token for it.
func (s *DefaultSessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	resp, err := s.Auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess, err := normalizeLogin(resp, email)
	if err != nil {
		return nil, err
	}
	sess.CreatedAt = time.Now().UTC()

	token, err := utils.GenerateToken(sess.StylistID.String(), sess.Email, s.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.Store.Save(ctx, utils.HashToken(token), *sess, s.TTL); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Info("stylist logged in", zap.String("stylistId", sess.StylistID.String()))
	}
	return &LoginResult{Token: token, Session: *sess}, nil
}

// Current resolves the session behind a dashboard token. Any failure mode
// (bad signature, expired, unknown or corrupt entry) reads as
// ErrUnauthenticated, never a hard error.
func (s *DefaultSessionService) Current(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	parsed, err := utils.ValidateToken(token)
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthenticated
	}
	return s.Store.Get(ctx, utils.HashToken(token))
}

// IsAuthenticated reports whether the token maps to a live session.
func (s *DefaultSessionService) IsAuthenticated(ctx context.Context, token string) bool {
	_, err := s.Current(ctx, token)
	return err == nil
}

// Logout clears the persisted session. No backend round-trip is required.
func (s *DefaultSessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Store.Delete(ctx, utils.HashToken(token))
}
